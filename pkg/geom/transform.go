package geom

import "math"

// Transform represents a 2D transformation (scale, then rotate, then translate)
type Transform struct {
	TranslateX float64 // Translation in X
	TranslateY float64 // Translation in Y
	Rotate     float64 // Rotation in degrees, clockwise on screen
	ScaleX     float64 // Scale factor in X
	ScaleY     float64 // Scale factor in Y
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{
		ScaleX: 1.0,
		ScaleY: 1.0,
	}
}

// Rotation creates a transform rotating by deg degrees around origin
func Rotation(origin Position, deg float64) Transform {
	return Transform{
		TranslateX: origin.X,
		TranslateY: origin.Y,
		Rotate:     deg,
		ScaleX:     1.0,
		ScaleY:     1.0,
	}
}

// Apply applies the transformation to a position
func (t Transform) Apply(pos Position) Position {
	x, y := pos.X*t.ScaleX, pos.Y*t.ScaleY

	if t.Rotate != 0 {
		rad := Radians(t.Rotate)
		cos := math.Cos(rad)
		sin := math.Sin(rad)
		x, y = x*cos-y*sin, x*sin+y*cos
	}

	return Position{X: x + t.TranslateX, Y: y + t.TranslateY}
}

// ApplyInverse applies the inverse transformation
func (t Transform) ApplyInverse(pos Position) Position {
	x := pos.X - t.TranslateX
	y := pos.Y - t.TranslateY

	if t.Rotate != 0 {
		rad := -Radians(t.Rotate)
		cos := math.Cos(rad)
		sin := math.Sin(rad)
		x, y = x*cos-y*sin, x*sin+y*cos
	}

	if t.ScaleX != 0 {
		x /= t.ScaleX
	}
	if t.ScaleY != 0 {
		y /= t.ScaleY
	}

	return Position{X: x, Y: y}
}

// ApplyAll maps every position through the transform
func (t Transform) ApplyAll(pts []Position) []Position {
	out := make([]Position, len(pts))
	for i, p := range pts {
		out[i] = t.Apply(p)
	}
	return out
}
