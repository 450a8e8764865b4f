// Package template draws circle-cutting templates: a fan of quarter or half
// circle arcs at fixed radius steps with angle ticks and an optional fence
// profile along the straight edges.
package template

import (
	"math"
	"strconv"

	"github.com/OpenTraceLab/routerjig/pkg/drawing"
	"github.com/OpenTraceLab/routerjig/pkg/geom"
	"github.com/OpenTraceLab/routerjig/pkg/jig"
	"github.com/OpenTraceLab/routerjig/pkg/units"
)

// Angle ticks in degrees, measured from the base edge
var Marks = []float64{15, 18, 22.5, 30, 36, 45, 60, 67.5, 72, 75}

const (
	// Margin is the gap between the drawing edge and the template
	Margin = 10.0
	// PlateDepth is the depth of the fence base plate
	PlateDepth = 10.0
	// tickLength is the length of inner and outer angle ticks
	tickLength = 2.0
)

// Parameters configure one template. Lengths are millimeters.
type Parameters struct {
	MinRadius float64
	MaxRadius float64
	StepSize  float64
	Angles    int // 90 or 180
	Fence     bool
	Units     units.System
}

// DefaultParameters returns a 1cm to 20cm quarter template in 1cm steps
func DefaultParameters() Parameters {
	return Parameters{
		MinRadius: units.CM,
		MaxRadius: 20 * units.CM,
		StepSize:  units.CM,
		Angles:    90,
		Units:     units.Metric,
	}
}

// Steps returns how many step intervals lie between the min and max radius
func (p Parameters) Steps() int {
	return int(math.Round((p.MaxRadius - p.MinRadius) / p.StepSize))
}

// Origin is the template corner all arcs are centered on
func (p Parameters) Origin() geom.Position {
	return geom.Pt(Margin+p.MaxRadius, Margin+p.MaxRadius)
}

// Validate checks the template parameters
func (p Parameters) Validate() error {
	if p.Angles != 90 && p.Angles != 180 {
		return &jig.ConfigError{Field: "angles", Input: strconv.Itoa(p.Angles), Reason: "want 90 or 180"}
	}
	for _, v := range []jig.Value{
		{Name: "min-radius", Value: p.MinRadius},
		{Name: "max-radius", Value: p.MaxRadius},
		{Name: "step-size", Value: p.StepSize},
	} {
		if !(v.Value > 0) || math.IsInf(v.Value, 0) {
			return &jig.DomainError{Op: "template", Reason: v.Name + " must be a positive finite length", Values: []jig.Value{v}}
		}
	}

	values := []jig.Value{
		{Name: "min-radius", Value: p.MinRadius},
		{Name: "max-radius", Value: p.MaxRadius},
		{Name: "step-size", Value: p.StepSize},
	}
	if p.MaxRadius < p.MinRadius {
		return &jig.DomainError{Op: "template", Reason: "max radius below min radius", Values: values}
	}
	n := (p.MaxRadius - p.MinRadius) / p.StepSize
	if math.Abs(n-math.Round(n)) > 1e-9 {
		return &jig.DomainError{Op: "template", Reason: "radius range is not a whole number of steps", Values: values}
	}
	if p.MinRadius < p.StepSize {
		return &jig.DomainError{Op: "template", Reason: "min radius shorter than one step", Values: values}
	}
	return nil
}

// directions returns the tick angles in degrees
func (p Parameters) directions() []float64 {
	if p.Angles == 90 {
		return Marks
	}
	dirs := append([]float64(nil), Marks...)
	for _, m := range Marks {
		dirs = append(dirs, 180-m)
	}
	return dirs
}

// edges maps the fence profile, drawn along +x with teeth toward -y, onto
// every straight edge of the template
func (p Parameters) edges() []geom.Transform {
	o := p.Origin()
	lower := geom.Transform{TranslateX: o.X, TranslateY: o.Y, ScaleX: 1, ScaleY: 1}
	if p.Angles == 90 {
		left := geom.Transform{TranslateX: o.X, TranslateY: o.Y, Rotate: -90, ScaleX: 1, ScaleY: -1}
		return []geom.Transform{lower, left}
	}
	mirrored := geom.Transform{TranslateX: o.X, TranslateY: o.Y, ScaleX: -1, ScaleY: 1}
	return []geom.Transform{lower, mirrored}
}

// fenceProfile is one step of the fence seen from the side:
//
//	  2---------3
//	   \       /
//	0---1     4---5
func fenceProfile(radius, step float64) []geom.Position {
	x0 := radius - step
	return []geom.Position{
		geom.Pt(x0, 0),
		geom.Pt(x0+step*3/8, 0),
		geom.Pt(x0+step*2/8, -step/8),
		geom.Pt(x0+step*6/8, -step/8),
		geom.Pt(x0+step*5/8, 0),
		geom.Pt(x0+step, 0),
	}
}

func polyline(c jig.Canvas, pts []geom.Position, tag drawing.Tag) {
	for i := 1; i < len(pts); i++ {
		c.Line(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, tag)
	}
}

func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Generate validates p and draws the template
func Generate(c jig.Canvas, p Parameters) error {
	if err := p.Validate(); err != nil {
		return err
	}
	o := p.Origin()
	step := p.StepSize
	half, rot := 45.0, 45.0
	if p.Angles == 180 {
		half, rot = 90, 90
	}
	radiusStyle := drawing.TextStyle{Tag: drawing.Mark, FontSize: 3}
	tickStyle := drawing.TextStyle{Tag: drawing.Guide, FontSize: 2}
	edges := p.edges()

	for i := 0; i <= p.Steps(); i++ {
		r := p.MinRadius + float64(i)*step
		c.Arc(o.X, o.Y, r, geom.Radians(half), geom.Radians(rot), drawing.Cut, true)

		tr := math.Sqrt((r - step/2) * (r - step/2) / 2)
		c.Text(o.X+tr, o.Y-tr, p.Units.Format(r), radiusStyle)

		for _, deg := range p.directions() {
			a := geom.Radians(deg)
			cos, sin := math.Cos(a), math.Sin(a)
			for _, tick := range [][2]float64{{r - step, r - step + tickLength}, {r, r - tickLength}} {
				x0, y0 := o.X+cos*tick[0], o.Y-sin*tick[0]
				x1, y1 := o.X+cos*tick[1], o.Y-sin*tick[1]
				c.Line(x0, y0, x1, y1, drawing.Guide)
				if tick[0] == r {
					c.Text(x1, y1, formatDegrees(deg), tickStyle)
				}
			}
		}

		if p.Fence {
			profile := fenceProfile(r, step)
			for _, t := range edges {
				polyline(c, t.ApplyAll(profile), drawing.Cut)
			}
		}
	}

	if p.Fence {
		plate := []geom.Position{
			geom.Pt(0, 0),
			geom.Pt(0, PlateDepth),
			geom.Pt(p.MaxRadius, PlateDepth),
			geom.Pt(p.MaxRadius, 0),
		}
		for _, t := range edges {
			polyline(c, t.ApplyAll(plate), drawing.Cut)
		}
		return nil
	}
	for _, t := range edges {
		end := t.Apply(geom.Pt(p.MaxRadius, 0))
		c.Line(o.X, o.Y, end.X, end.Y, drawing.Cut)
	}
	return nil
}

// Render draws the template into a fresh drawing with a caption
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

// Summary describes p in caption lines
func (p Parameters) Summary() []string {
	f := p.Units.Format
	s := "radius " + f(p.MinRadius) + " to " + f(p.MaxRadius) + " step " + f(p.StepSize) +
		", " + strconv.Itoa(p.Angles) + " degrees"
	if p.Fence {
		s += ", fence"
	}
	return []string{s}
}
