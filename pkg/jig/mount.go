package jig

import (
	"fmt"
	"strings"
	"sync"

	"github.com/OpenTraceLab/routerjig/pkg/mountlang"
)

var mountParser = sync.OnceValues(mountlang.NewParser)

// ParseScrewHoles reads a "x,y,diam[,diam2];..." list. An empty string
// yields no holes.
func ParseScrewHoles(input string) ([]ScrewHole, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}
	parser, err := mountParser()
	if err != nil {
		return nil, err
	}
	list, err := parser.ParseScrews(input)
	if err != nil {
		return nil, &ConfigError{Field: "screws", Input: input, Reason: "malformed screw list", Err: err}
	}

	holes := make([]ScrewHole, 0, len(list.Holes))
	for i, tuple := range list.Holes {
		n := len(tuple.Fields)
		if n != 3 && n != 4 {
			return nil, &ConfigError{
				Field:  "screws",
				Input:  input,
				Reason: fmt.Sprintf("screw %d at column %d has %d fields, want 3 or 4", i+1, tuple.Pos.Column, n),
			}
		}
		hole := ScrewHole{
			X:        tuple.Fields[0].MM(),
			Y:        tuple.Fields[1].MM(),
			Diameter: tuple.Fields[2].MM(),
		}
		if n == 4 {
			hole.OuterDiameter = tuple.Fields[3].MM()
			if hole.OuterDiameter <= 0 {
				return nil, &ConfigError{
					Field:  "screws",
					Input:  input,
					Reason: fmt.Sprintf("screw %d outer diameter must be positive", i+1),
				}
			}
		}
		holes = append(holes, hole)
	}
	return holes, nil
}

// ParseRails reads an "angle[,angle...]:r1:r2:diam[:diam2]" declaration. An
// empty string yields no rails.
func ParseRails(input string) (*Rail, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}
	parser, err := mountParser()
	if err != nil {
		return nil, err
	}
	decl, err := parser.ParseRails(input)
	if err != nil {
		return nil, &ConfigError{Field: "screw-rails", Input: input, Reason: "malformed rail declaration", Err: err}
	}

	n := len(decl.Fields)
	if n != 3 && n != 4 {
		return nil, &ConfigError{
			Field:  "screw-rails",
			Input:  input,
			Reason: fmt.Sprintf("got %d lengths after the angles, want 3 or 4", n),
		}
	}
	rail := &Rail{
		Angles:      decl.Angles,
		InnerRadius: decl.Fields[0].MM(),
		OuterRadius: decl.Fields[1].MM(),
		Diameter:    decl.Fields[2].MM(),
	}
	if n == 4 {
		rail.AltDiameter = decl.Fields[3].MM()
		if rail.AltDiameter <= 0 {
			return nil, &ConfigError{Field: "screw-rails", Input: input, Reason: "alternate diameter must be positive"}
		}
	}
	return rail, nil
}

func (p Parameters) validateMounts() error {
	for i, s := range p.Screws {
		if !(s.Diameter > 0) {
			return domainErr("router base", fmt.Sprintf("screw %d diameter must be positive", i+1),
				val("diameter", s.Diameter))
		}
		if s.HasOuter() && s.OuterDiameter < s.Diameter {
			return domainErr("router base", fmt.Sprintf("screw %d outer diameter is smaller than its hole", i+1),
				val("diameter", s.Diameter), val("outer", s.OuterDiameter))
		}
	}
	if r := p.Rails; r != nil {
		if !(r.Diameter > 0) {
			return domainErr("router base", "rail diameter must be positive", val("diameter", r.Diameter))
		}
		if r.InnerRadius < 0 || r.InnerRadius >= r.OuterRadius {
			return domainErr("router base", "rail inner radius must be below the outer radius",
				val("r1", r.InnerRadius), val("r2", r.OuterRadius))
		}
		if r.HasAlt() && r.AltDiameter < r.Diameter {
			return domainErr("router base", "rail alternate diameter is smaller than the slot",
				val("diameter", r.Diameter), val("alt", r.AltDiameter))
		}
	}
	return nil
}
