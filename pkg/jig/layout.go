// Package jig computes the router circle-cutting jig: pin holes, guides,
// labels, the outline, the router base and the optional second layer.
//
// Every feature is emitted into a Canvas in a fixed order so the same
// parameters always produce the same document.
package jig

import (
	"strconv"

	"github.com/OpenTraceLab/routerjig/pkg/drawing"
)

// Canvas receives drawing primitives. *drawing.Drawing implements it.
type Canvas interface {
	Line(x0, y0, x1, y1 float64, tag drawing.Tag)
	DashedLine(x0, y0, x1, y1 float64, tag drawing.Tag, dash ...float64)
	Circle(cx, cy, r float64, tag drawing.Tag)
	Arc(cx, cy, r, halfAngle, rotation float64, tag drawing.Tag, reverse bool)
	Cross(x, y, size float64, tag drawing.Tag)
	Text(x, y float64, s string, style drawing.TextStyle)
}

var _ Canvas = (*drawing.Drawing)(nil)

// Generate validates p and draws the complete jig. Nothing is drawn when
// validation fails.
func Generate(c Canvas, p Parameters) error {
	if err := p.Validate(); err != nil {
		return err
	}

	first := p.Origin
	if err := RouterBase(c, p, first, false); err != nil {
		return err
	}
	if err := Pins(c, p, first, false); err != nil {
		return err
	}
	if err := Outline(c, p, first); err != nil {
		return err
	}
	if p.Layers == Single {
		return nil
	}

	second := p.SecondOrigin()
	if err := RouterBase(c, p, second, true); err != nil {
		return err
	}
	if err := GlueGuides(c, p, first); err != nil {
		return err
	}
	if err := GlueGuides(c, p, second); err != nil {
		return err
	}

	switch p.Layers {
	case Double:
		if err := Pins(c, p, second, true); err != nil {
			return err
		}
		return Outline(c, p, second)
	case Support:
		return SupportFeature(c, p, second)
	}
	return nil
}

// Render draws the jig into a fresh drawing and captions it. A nil caption
// falls back to the parameter summary.
func Render(p Parameters, caption []string, opts ...drawing.Option) (*drawing.Drawing, error) {
	d := drawing.New(opts...)
	if err := Generate(d, p); err != nil {
		return nil, err
	}
	if caption == nil {
		caption = p.Summary()
	}
	d.Caption(caption)
	return d, nil
}

// Summary describes p in a few caption lines
func (p Parameters) Summary() []string {
	f := p.Units.Format
	lines := []string{
		"min radius " + f(p.MinRadius) + ", step " + f(p.StepSize) + " x " + strconv.Itoa(p.Steps),
		"bit " + f(2*p.BitRadius) + ", pin " + f(2*p.PinRadius) + ", cut " + f(2*p.CutRadius),
		"shape " + p.Shape.String() + ", sub-steps " + strconv.Itoa(p.SubSteps) + ", layers " + p.Layers.String(),
	}
	if len(p.Screws) > 0 {
		lines = append(lines, "screws "+strconv.Itoa(len(p.Screws)))
	}
	return lines
}
