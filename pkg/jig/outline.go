package jig

import (
	"math"

	"github.com/OpenTraceLab/routerjig/pkg/drawing"
	"github.com/OpenTraceLab/routerjig/pkg/geom"
)

// smallCircleDistance is how far the small outline circle sits from the
// center: one step past the last pin row.
func (p Parameters) smallCircleDistance() float64 {
	return p.CompRadius(p.Steps, 0)
}

// TangentAngle returns the half-angle at which the outer tangent lines leave
// the big and small outline circles. Rectangle and wide outlines are squared
// off and always use a quarter turn.
func (p Parameters) TangentAngle() (float64, error) {
	if p.Shape != Narrow && p.Shape != Line {
		return math.Pi / 2, nil
	}
	scd := p.smallCircleDistance()
	rd := p.BigCircleRadius - p.SmallCircleRadius
	if math.Abs(rd) > scd {
		return 0, domainErr("outline", "circles too far apart in size for a common tangent",
			val("big", p.BigCircleRadius), val("small", p.SmallCircleRadius), val("distance", scd))
	}
	return math.Acos(rd / scd), nil
}

// Outline draws the cut contour of one layer
func Outline(c Canvas, p Parameters, center geom.Position) error {
	ang, err := p.TangentAngle()
	if err != nil {
		return err
	}
	cx, cy := center.X, center.Y
	bigR, smallR := p.BigCircleRadius, p.SmallCircleRadius
	scd := p.smallCircleDistance()

	if p.Shape == Narrow || p.Shape == Line {
		bx, by := math.Cos(ang)*bigR, math.Sin(ang)*bigR
		sx, sy := math.Cos(ang)*smallR, math.Sin(ang)*smallR

		c.Circle(cx+bx, cy+by, 1, drawing.Debug)
		c.Circle(cx+bx, cy-by, 1, drawing.Debug)
		c.Arc(cx, cy, bigR, ang, 0, drawing.Cut, false)

		c.Circle(cx+scd+sx, cy+sy, 1, drawing.Debug)
		c.Circle(cx+scd+sx, cy-sy, 1, drawing.Debug)
		c.Arc(cx+scd, cy, smallR, ang, 0, drawing.Cut, true)

		c.Line(cx+bx, cy+by, cx+scd+sx, cy+sy, drawing.Cut)
		c.Line(cx+bx, cy-by, cx+scd+sx, cy-sy, drawing.Cut)
		return nil
	}

	right := cx + scd + smallR
	c.Arc(cx, cy, bigR, ang, 0, drawing.Cut, false)
	c.Line(cx, cy-bigR, right, cy-bigR, drawing.Cut)
	c.Line(right, cy-bigR, right, cy+bigR, drawing.Cut)
	c.Line(right, cy+bigR, cx, cy+bigR, drawing.Cut)
	return nil
}
