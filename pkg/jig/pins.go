package jig

import (
	"math"

	"github.com/OpenTraceLab/routerjig/pkg/drawing"
	"github.com/OpenTraceLab/routerjig/pkg/geom"
)

// PinOffset returns the pin hole of (step, subStep) relative to the jig
// center. Every shape keeps the hole at CompRadius from the center; the shape
// only decides the direction.
func (p Parameters) PinOffset(step, subStep int) (geom.Position, error) {
	r := p.CompRadius(step, subStep)
	if p.SubSteps == 1 || p.Shape == Line {
		return geom.Pt(r, 0), nil
	}

	switch p.Shape {
	case Rectangle:
		y := float64(p.SubSteps-1)*RectangleSpacing/2 - float64(subStep)*RectangleSpacing
		if r < math.Abs(y) {
			return geom.Position{}, domainErr("pin hole", "radius shorter than the rectangle row offset",
				val("r", r), val("y", y))
		}
		return geom.Pt(math.Sqrt(r*r-y*y), y), nil

	case Wide:
		a := p.SubStepAngle(subStep)
		return geom.Pt(r*math.Cos(a), -r*math.Sin(a)), nil

	case Narrow:
		// Rays from a far vertex F on the x axis at angle B; the hole is
		// where a ray meets the circle of radius r (law of sines).
		far := p.MinRadius + float64(p.Steps-1)*p.StepSize*2
		if r >= far {
			return geom.Position{}, domainErr("pin hole", "radius reaches the far vertex of the narrow fan",
				val("r", r), val("far", far))
		}
		b := p.SubStepAngle(subStep)
		if b == 0 {
			return geom.Pt(r, 0), nil
		}
		s := far * math.Sin(b) / r
		if math.Abs(s) > 1 {
			return geom.Position{}, domainErr("pin hole", "narrow fan ray misses the radius circle",
				val("r", r), val("far", far), val("angle", geom.Degrees(b)))
		}
		c := math.Pi - math.Asin(s)
		a := math.Pi - b - c
		side := r * math.Sin(a) / math.Sin(b)
		return geom.Pt(far-math.Cos(b)*side, -math.Sin(b)*side), nil
	}
	return geom.Position{}, &ConfigError{Field: "shape", Input: p.Shape.String(), Reason: "unknown shape"}
}

// PinHolePosition returns the absolute pin hole of (step, subStep)
func (p Parameters) PinHolePosition(center geom.Position, step, subStep int) (geom.Position, error) {
	off, err := p.PinOffset(step, subStep)
	if err != nil {
		return geom.Position{}, err
	}
	return center.Add(off), nil
}

// pinGrid computes every hole up front so failures happen before drawing
func (p Parameters) pinGrid(center geom.Position) ([][]geom.Position, error) {
	if p.Shape == Rectangle && p.SubSteps > 1 && 2*p.PinRadius >= RectangleSpacing {
		return nil, domainErr("pin hole", "pin holes overlap across rectangle rows",
			val("pin-radius", p.PinRadius), val("spacing", RectangleSpacing))
	}
	grid := make([][]geom.Position, p.Steps)
	for step := range grid {
		grid[step] = make([]geom.Position, p.SubSteps)
		for sub := range grid[step] {
			pos, err := p.PinHolePosition(center, step, sub)
			if err != nil {
				return nil, err
			}
			grid[step][sub] = pos
		}
	}
	return grid, nil
}

// Pins draws one hole per (step, sub-step). The top layer also gets the
// guide lines and length labels.
func Pins(c Canvas, p Parameters, center geom.Position, bottom bool) error {
	grid, err := p.pinGrid(center)
	if err != nil {
		return err
	}
	for _, row := range grid {
		for _, pos := range row {
			c.Circle(pos.X, pos.Y, p.PinRadius, drawing.Cut)
		}
	}
	if bottom {
		return nil
	}
	if p.Shape == Line {
		lineLabels(c, p, grid)
		return nil
	}
	guides(c, p, grid)
	labels(c, p, grid)
	return nil
}

func guides(c Canvas, p Parameters, grid [][]geom.Position) {
	last := p.Steps - 1
	for sub := 0; sub < p.SubSteps; sub++ {
		from, to := grid[0][sub], grid[last][sub]
		c.DashedLine(from.X, from.Y, to.X, to.Y, drawing.Guide, 3, 3)
	}
	for _, row := range grid {
		for sub := 1; sub < len(row); sub++ {
			c.DashedLine(row[sub-1].X, row[sub-1].Y, row[sub].X, row[sub].Y, drawing.Guide, 2, 2)
		}
	}
}

func labels(c Canvas, p Parameters, grid [][]geom.Position) {
	major := drawing.TextStyle{Tag: drawing.Mark, FontSize: 6, Anchor: drawing.AnchorEnd, Rotation: 270}
	minor := drawing.TextStyle{Tag: drawing.Mark, FontSize: 4, Anchor: drawing.AnchorStart, Rotation: 270}
	subLen := p.StepSize / float64(p.SubSteps)

	for step, row := range grid {
		cut := p.MinRadius + float64(step)*p.StepSize
		first := row[0]
		c.Text(first.X+2, first.Y+5, p.Units.Format(cut), major)
		c.Line(first.X, first.Y+1, first.X, first.Y+4, drawing.Mark)

		end := row[p.SubSteps-1]
		c.Text(end.X+2, end.Y-5, p.Units.Format(cut+float64(p.SubSteps-1)*subLen), minor)
		c.Line(end.X, end.Y-1, end.X, end.Y-4, drawing.Mark)
	}

	inner := drawing.TextStyle{Tag: drawing.Mark, FontSize: 4, Anchor: drawing.AnchorEnd}
	outer := drawing.TextStyle{Tag: drawing.Mark, FontSize: 4, Anchor: drawing.AnchorStart}
	for sub := 1; sub < p.SubSteps; sub++ {
		s := "+" + p.Units.Format(float64(sub)*subLen)
		a, b := grid[0][sub], grid[p.Steps-1][sub]
		c.Text(a.X-2, a.Y+1, s, inner)
		c.Text(b.X+2, b.Y+1, s, outer)
	}
}

// lineLabels marks every extra hole of the line shape with its offset from
// the step radius
func lineLabels(c Canvas, p Parameters, grid [][]geom.Position) {
	style := drawing.TextStyle{Tag: drawing.Mark, FontSize: 3, Anchor: drawing.AnchorStart, Rotation: 270}
	major := drawing.TextStyle{Tag: drawing.Mark, FontSize: 6, Anchor: drawing.AnchorEnd, Rotation: 270}
	subLen := p.StepSize / float64(p.SubSteps)
	for step, row := range grid {
		cut := p.MinRadius + float64(step)*p.StepSize
		c.Text(row[0].X+2, row[0].Y+5, p.Units.Format(cut), major)
		c.Line(row[0].X, row[0].Y+1, row[0].X, row[0].Y+4, drawing.Mark)
		for sub := 1; sub < len(row); sub++ {
			c.Text(row[sub].X+1, row[sub].Y-2, "+"+p.Units.Format(float64(sub)*subLen), style)
		}
	}
}
