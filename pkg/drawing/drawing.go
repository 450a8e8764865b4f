// Package drawing accumulates vector primitives for one output document and
// tracks the bounding box of everything drawn.
package drawing

import (
	"github.com/OpenTraceLab/routerjig/pkg/geom"
)

const (
	DefaultMargin      = 10.0
	DefaultStrokeWidth = 0.3
	DefaultFontSize    = 5.0
)

// Drawing is an append-only list of primitives plus their bounding box.
// It is not safe for concurrent use.
type Drawing struct {
	margin      float64
	strokeWidth float64
	prims       []Primitive
	bounds      geom.BoundingBox
}

// Option configures a Drawing
type Option func(*Drawing)

// WithMargin sets the blank border added around the content
func WithMargin(m float64) Option {
	return func(d *Drawing) { d.margin = m }
}

// WithStrokeWidth sets the stroke width of every outline
func WithStrokeWidth(w float64) Option {
	return func(d *Drawing) { d.strokeWidth = w }
}

// New creates an empty drawing
func New(opts ...Option) *Drawing {
	d := &Drawing{
		margin:      DefaultMargin,
		strokeWidth: DefaultStrokeWidth,
		bounds:      geom.NewBoundingBox(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Drawing) add(p Primitive) {
	d.prims = append(d.prims, p)
	d.bounds.ExpandBox(p.Extent())
}

// Line appends a solid segment
func (d *Drawing) Line(x0, y0, x1, y1 float64, tag Tag) {
	d.add(Line{From: geom.Pt(x0, y0), To: geom.Pt(x1, y1), Tag: tag})
}

// DashedLine appends a segment stroked with the given dash pattern
func (d *Drawing) DashedLine(x0, y0, x1, y1 float64, tag Tag, dash ...float64) {
	d.add(Line{
		From: geom.Pt(x0, y0),
		To:   geom.Pt(x1, y1),
		Tag:  tag,
		Dash: append([]float64(nil), dash...),
	})
}

// Circle appends a circle
func (d *Drawing) Circle(cx, cy, r float64, tag Tag) {
	d.add(Circle{Center: geom.Pt(cx, cy), Radius: r, Tag: tag})
}

// Arc appends an arc with halfAngle and rotation in radians
func (d *Drawing) Arc(cx, cy, r, halfAngle, rotation float64, tag Tag, reverse bool) {
	d.add(Arc{
		Center:    geom.Pt(cx, cy),
		Radius:    r,
		HalfAngle: halfAngle,
		Rotation:  rotation,
		Reverse:   reverse,
		Tag:       tag,
	})
}

// ArcDegrees is Arc with halfAngle and rotation in degrees
func (d *Drawing) ArcDegrees(cx, cy, r, halfAngle, rotation float64, tag Tag, reverse bool) {
	d.Arc(cx, cy, r, geom.Radians(halfAngle), geom.Radians(rotation), tag, reverse)
}

// Cross draws two perpendicular segments of half-length size centered at x, y
func (d *Drawing) Cross(x, y, size float64, tag Tag) {
	d.Line(x-size, y, x+size, y, tag)
	d.Line(x, y-size, x, y+size, tag)
}

// Text appends a label anchored at x, y
func (d *Drawing) Text(x, y float64, s string, style TextStyle) {
	if style.FontSize <= 0 {
		style.FontSize = DefaultFontSize
	}
	d.add(Text{At: geom.Pt(x, y), Content: s, Style: style})
}

// Caption writes one small MARK line per entry in the top-left corner
func (d *Drawing) Caption(lines []string) {
	for i, l := range lines {
		d.Text(3, 3+float64(i)*3, l, TextStyle{Tag: Mark, FontSize: 3, Anchor: AnchorStart})
	}
}

// Primitives returns the primitives in insertion order
func (d *Drawing) Primitives() []Primitive {
	return append([]Primitive(nil), d.prims...)
}

// Len returns the number of primitives
func (d *Drawing) Len() int {
	return len(d.prims)
}

// Bounds returns the box covering every primitive drawn so far
func (d *Drawing) Bounds() geom.BoundingBox {
	return d.bounds
}

// Margin returns the border added around the content
func (d *Drawing) Margin() float64 {
	return d.margin
}

// StrokeWidth returns the outline width
func (d *Drawing) StrokeWidth() float64 {
	return d.strokeWidth
}

// Canvas returns the output area: the bounding box grown by the margin.
// An empty drawing yields a square of twice the margin at the origin.
func (d *Drawing) Canvas() geom.BoundingBox {
	bb := d.bounds
	if bb.IsEmpty() {
		bb = geom.BoundingBox{}
	}
	return bb.Inflate(d.margin)
}
