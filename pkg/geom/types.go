// Package geom provides the planar types shared by the jig layout, the
// drawing accumulator and the output backends.
// All lengths are millimeters; the Y axis grows downward like SVG user space.
package geom

import "math"

// Position represents a 2D coordinate in millimeters
type Position struct {
	X float64
	Y float64
}

// Pt is shorthand for Position{X: x, Y: y}
func Pt(x, y float64) Position {
	return Position{X: x, Y: y}
}

// Add returns p translated by o
func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the vector from o to p
func (p Position) Sub(o Position) Position {
	return Position{X: p.X - o.X, Y: p.Y - o.Y}
}

// Scale multiplies both coordinates by f
func (p Position) Scale(f float64) Position {
	return Position{X: p.X * f, Y: p.Y * f}
}

// Distance returns the euclidean distance between two positions
func (p Position) Distance(o Position) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// Polar returns the point at radius r and angle rad around center.
// Angles grow clockwise on screen because Y points down.
func Polar(center Position, r, rad float64) Position {
	return Position{
		X: center.X + r*math.Cos(rad),
		Y: center.Y + r*math.Sin(rad),
	}
}

// Radians converts degrees to radians
func Radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Degrees converts radians to degrees
func Degrees(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// BoundingBox represents a rectangular boundary
type BoundingBox struct {
	Min Position // Minimum (top-left) corner
	Max Position // Maximum (bottom-right) corner
}

// NewBoundingBox creates an empty bounding box
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Position{X: math.Inf(1), Y: math.Inf(1)},
		Max: Position{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// CircleBounds returns the box covering a full circle
func CircleBounds(center Position, r float64) BoundingBox {
	r = math.Abs(r)
	return BoundingBox{
		Min: Position{X: center.X - r, Y: center.Y - r},
		Max: Position{X: center.X + r, Y: center.Y + r},
	}
}

// IsEmpty checks if the bounding box is empty
func (bb BoundingBox) IsEmpty() bool {
	return bb.Min.X > bb.Max.X || bb.Min.Y > bb.Max.Y
}

// Expand expands the bounding box to include a position
func (bb *BoundingBox) Expand(pos Position) {
	if pos.X < bb.Min.X {
		bb.Min.X = pos.X
	}
	if pos.Y < bb.Min.Y {
		bb.Min.Y = pos.Y
	}
	if pos.X > bb.Max.X {
		bb.Max.X = pos.X
	}
	if pos.Y > bb.Max.Y {
		bb.Max.Y = pos.Y
	}
}

// ExpandBox expands to include another bounding box
func (bb *BoundingBox) ExpandBox(other BoundingBox) {
	if !other.IsEmpty() {
		bb.Expand(other.Min)
		bb.Expand(other.Max)
	}
}

// Inflate returns the box grown by margin on every side
func (bb BoundingBox) Inflate(margin float64) BoundingBox {
	return BoundingBox{
		Min: Position{X: bb.Min.X - margin, Y: bb.Min.Y - margin},
		Max: Position{X: bb.Max.X + margin, Y: bb.Max.Y + margin},
	}
}

// Width returns the width of the bounding box
func (bb BoundingBox) Width() float64 {
	return bb.Max.X - bb.Min.X
}

// Height returns the height of the bounding box
func (bb BoundingBox) Height() float64 {
	return bb.Max.Y - bb.Min.Y
}

// Center returns the center point of the bounding box
func (bb BoundingBox) Center() Position {
	return Position{
		X: (bb.Min.X + bb.Max.X) / 2.0,
		Y: (bb.Min.Y + bb.Max.Y) / 2.0,
	}
}

// Contains checks if a position is within the bounding box
func (bb BoundingBox) Contains(pos Position) bool {
	return pos.X >= bb.Min.X && pos.X <= bb.Max.X &&
		pos.Y >= bb.Min.Y && pos.Y <= bb.Max.Y
}

// ContainsBox checks if other lies entirely inside the bounding box
func (bb BoundingBox) ContainsBox(other BoundingBox) bool {
	return other.IsEmpty() || (bb.Contains(other.Min) && bb.Contains(other.Max))
}

// Intersects checks if two bounding boxes intersect
func (bb BoundingBox) Intersects(other BoundingBox) bool {
	return bb.Min.X <= other.Max.X && bb.Max.X >= other.Min.X &&
		bb.Min.Y <= other.Max.Y && bb.Max.Y >= other.Min.Y
}
