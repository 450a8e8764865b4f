package drawing

import (
	"image/color"
	"math"

	"github.com/OpenTraceLab/routerjig/pkg/geom"
)

// Tag is the semantic color of a primitive
type Tag int

const (
	Cut   Tag = iota // through cuts
	Mark             // reference marks and labels
	Guide            // construction guides
	Debug            // low-opacity annotations
)

// Tags lists every tag in drawing order
var Tags = []Tag{Cut, Mark, Guide, Debug}

func (t Tag) String() string {
	switch t {
	case Cut:
		return "cut"
	case Mark:
		return "mark"
	case Guide:
		return "guide"
	case Debug:
		return "debug"
	}
	return "unknown"
}

// SVGColor returns the stroke/fill color used in the vector document
func (t Tag) SVGColor() string {
	switch t {
	case Cut:
		return "red"
	case Mark:
		return "blue"
	case Guide:
		return "green"
	}
	return "#f0f0f0"
}

// Opacity returns the stroke opacity of the tag
func (t Tag) Opacity() float64 {
	if t == Debug {
		return 0.5
	}
	return 1
}

// NRGBA returns the tag color for raster and PDF backends
func (t Tag) NRGBA() color.NRGBA {
	switch t {
	case Cut:
		return color.NRGBA{R: 255, A: 255}
	case Mark:
		return color.NRGBA{B: 255, A: 255}
	case Guide:
		return color.NRGBA{G: 128, A: 255}
	}
	return color.NRGBA{R: 240, G: 240, B: 240, A: 128}
}

// Anchor controls horizontal text alignment at the anchor point
type Anchor int

const (
	AnchorMiddle Anchor = iota
	AnchorStart
	AnchorEnd
)

func (a Anchor) String() string {
	switch a {
	case AnchorStart:
		return "start"
	case AnchorEnd:
		return "end"
	}
	return "middle"
}

// Primitive is one immutable drawing element
type Primitive interface {
	// Extent is the area the primitive contributes to the bounding box
	Extent() geom.BoundingBox
	// ColorTag is the semantic color of the primitive
	ColorTag() Tag
}

// Line is a straight segment, optionally dashed
type Line struct {
	From geom.Position
	To   geom.Position
	Tag  Tag
	Dash []float64
}

func (l Line) Extent() geom.BoundingBox {
	bb := geom.NewBoundingBox()
	bb.Expand(l.From)
	bb.Expand(l.To)
	return bb
}

func (l Line) ColorTag() Tag { return l.Tag }

// Circle is a full circle outline
type Circle struct {
	Center geom.Position
	Radius float64
	Tag    Tag
}

func (c Circle) Extent() geom.BoundingBox { return geom.CircleBounds(c.Center, c.Radius) }

func (c Circle) ColorTag() Tag { return c.Tag }

// Arc is an open arc of a circle, symmetric around Rotation with HalfAngle on
// each side. Angles are radians. A plain arc covers everything except the
// 2*HalfAngle wedge; a reversed arc is mirrored in Y and covers only the wedge.
type Arc struct {
	Center    geom.Position
	Radius    float64
	HalfAngle float64
	Rotation  float64
	Reverse   bool
	Tag       Tag
}

// Extent covers the full circle even though only part of it is drawn
func (a Arc) Extent() geom.BoundingBox { return geom.CircleBounds(a.Center, a.Radius) }

func (a Arc) ColorTag() Tag { return a.Tag }

func (a Arc) ysign() float64 {
	if a.Reverse {
		return -1
	}
	return 1
}

// Endpoints returns where the arc starts and ends
func (a Arc) Endpoints() (start, end geom.Position) {
	s := a.ysign()
	start = geom.Pt(
		a.Center.X+a.Radius*math.Cos(a.HalfAngle+a.Rotation),
		a.Center.Y+a.Radius*math.Sin(a.HalfAngle+a.Rotation)*s,
	)
	end = geom.Pt(
		a.Center.X+a.Radius*math.Cos(-a.HalfAngle+a.Rotation),
		a.Center.Y+a.Radius*math.Sin(-a.HalfAngle+a.Rotation)*s,
	)
	return start, end
}

// LargeArc is the SVG large-arc flag
func (a Arc) LargeArc() bool { return !a.Reverse }

// Sweep returns the start angle and positive span of the drawn part in screen
// angles (clockwise, Y down), the same direction as the SVG sweep flag.
func (a Arc) Sweep() (start, span float64) {
	if a.Reverse {
		return -(a.HalfAngle + a.Rotation), 2 * a.HalfAngle
	}
	return a.HalfAngle + a.Rotation, 2*math.Pi - 2*a.HalfAngle
}

// TextStyle describes how a label is drawn
type TextStyle struct {
	Tag      Tag
	FontSize float64
	Anchor   Anchor
	Rotation float64 // degrees, clockwise, about the anchor point
}

// Text is a label anchored at At
type Text struct {
	At      geom.Position
	Content string
	Style   TextStyle
}

// Extent is the anchor point only, rotated glyph extents are not modelled
func (t Text) Extent() geom.BoundingBox {
	bb := geom.NewBoundingBox()
	bb.Expand(t.At)
	return bb
}

func (t Text) ColorTag() Tag { return t.Style.Tag }
