package jig

import (
	"math"

	"github.com/OpenTraceLab/routerjig/pkg/drawing"
	"github.com/OpenTraceLab/routerjig/pkg/geom"
)

// glue guide angles in degrees
var glueAngles = []float64{60, 210, 285}

// RouterBase draws the bit and cut circles plus the screw holes and rails
// that bolt the jig to the router. On the bottom layer a screw or rail with
// a second diameter is cut at that diameter instead, leaving room for the
// screw head.
func RouterBase(c Canvas, p Parameters, center geom.Position, bottom bool) error {
	if err := p.validateMounts(); err != nil {
		return err
	}
	c.Circle(center.X, center.Y, p.BitRadius, drawing.Cut)
	c.Circle(center.X, center.Y, p.CutRadius, drawing.Cut)

	for _, s := range p.Screws {
		x, y := center.X+s.X, center.Y+s.Y
		c.Cross(x, y, 1, drawing.Mark)
		if !bottom || !s.HasOuter() {
			c.Circle(x, y, s.Diameter/2, drawing.Cut)
			if p.Layers == Single && s.HasOuter() {
				c.Circle(x, y, s.OuterDiameter/2, drawing.Mark)
			}
		} else {
			c.Circle(x, y, s.OuterDiameter/2, drawing.Cut)
		}
	}

	if r := p.Rails; r != nil {
		for _, deg := range r.Angles {
			a := geom.Radians(deg)
			if !bottom || !r.HasAlt() {
				rail(c, center, a, r.InnerRadius, r.OuterRadius, r.Diameter, drawing.Cut)
				if p.Layers == Single && r.HasAlt() {
					rail(c, center, a, r.InnerRadius, r.OuterRadius, r.AltDiameter, drawing.Mark)
				}
			} else {
				rail(c, center, a, r.InnerRadius, r.OuterRadius, r.AltDiameter, drawing.Cut)
			}
		}
	}
	return nil
}

// rail draws a stadium slot of width diam running radially from r1 to r2
func rail(c Canvas, center geom.Position, angle, r1, r2, diam float64, tag drawing.Tag) {
	half := diam / 2
	inner := geom.Polar(center, r1, angle)
	outer := geom.Polar(center, r2, angle)
	c.Arc(inner.X, inner.Y, half, math.Pi/2, angle, tag, false)
	c.Arc(outer.X, outer.Y, half, math.Pi/2, math.Pi+angle, tag, false)
	for _, side := range []float64{math.Pi / 2, -math.Pi / 2} {
		a := geom.Polar(inner, half, angle+side)
		b := geom.Polar(outer, half, angle+side)
		c.Line(a.X, a.Y, b.X, b.Y, tag)
	}
}

func (p Parameters) glueRadius() (float64, error) {
	r := p.BigCircleRadius - 5*p.PinRadius
	if r <= 0 {
		return 0, domainErr("glue guides", "pin radius too large for the outline circle",
			val("big", p.BigCircleRadius), val("pin-radius", p.PinRadius))
	}
	return r, nil
}

// GlueGuides drills alignment holes used to register the two layers while
// they are glued
func GlueGuides(c Canvas, p Parameters, center geom.Position) error {
	r, err := p.glueRadius()
	if err != nil {
		return err
	}
	for _, deg := range glueAngles {
		pos := geom.Polar(center, r, geom.Radians(deg))
		c.Circle(pos.X, pos.Y, p.PinRadius, drawing.Cut)
	}
	return nil
}

// SupportFeature draws the bottom layer of a support jig: the outline circle
// and a detached boss with a pin hole for the far end of the workpiece.
func SupportFeature(c Canvas, p Parameters, center geom.Position) error {
	bigR := p.BigCircleRadius
	c.Circle(center.X, center.Y, bigR, drawing.Cut)

	sr := SupportRadius
	x2 := center.X + bigR + 10 + sr
	y2 := center.Y - bigR + sr
	c.Circle(x2, y2, p.PinRadius, drawing.Cut)
	c.Cross(x2, y2, sr, drawing.Guide)
	c.Circle(x2, y2, sr, drawing.Cut)
	return nil
}
