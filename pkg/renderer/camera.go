package renderer

import (
	"math"

	"github.com/OpenTraceLab/routerjig/pkg/geom"
)

// Camera represents a viewport onto a drawing. World coordinates are
// millimeters with Y pointing down, the same as the screen.
type Camera struct {
	// Center position in world coordinates (mm)
	CenterX float64
	CenterY float64

	// Zoom level (pixels per mm)
	Zoom float64

	// Screen dimensions (pixels)
	ScreenWidth  int
	ScreenHeight int

	// View controls
	FlipView bool    // true = mirrored view, for checking the bottom face of a jig
	Rotation float64 // rotation in degrees (0, 90, 180, 270)

	// View will rotate/flip around this point
	RotationCenterX float64
	RotationCenterY float64
}

const (
	minZoom = 0.1
	maxZoom = 1000.0
)

// NewCamera creates a camera with default settings
func NewCamera(screenWidth, screenHeight int) *Camera {
	return &Camera{
		Zoom:         4.0,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

// WorldToScreen converts world coordinates (mm) to screen coordinates (pixels)
func (c *Camera) WorldToScreen(pos geom.Position) (float64, float64) {
	pos = c.applyViewTransform(pos)

	x := (pos.X-c.CenterX)*c.Zoom + float64(c.ScreenWidth)/2.0
	y := (pos.Y-c.CenterY)*c.Zoom + float64(c.ScreenHeight)/2.0
	return x, y
}

// ScreenToWorld converts screen coordinates (pixels) to world coordinates (mm)
func (c *Camera) ScreenToWorld(screenX, screenY float64) geom.Position {
	x := (screenX-float64(c.ScreenWidth)/2.0)/c.Zoom + c.CenterX
	y := (screenY-float64(c.ScreenHeight)/2.0)/c.Zoom + c.CenterY
	return c.applyInverseViewTransform(geom.Pt(x, y))
}

// Pan moves the camera by screen pixel offsets
func (c *Camera) Pan(deltaX, deltaY float64) {
	c.CenterX -= deltaX / c.Zoom
	c.CenterY -= deltaY / c.Zoom
}

// ZoomAt zooms in/out keeping the world point under the cursor stationary.
// factor > 1 zooms in, factor < 1 zooms out.
func (c *Camera) ZoomAt(screenX, screenY, factor float64) {
	before := c.applyViewTransform(c.ScreenToWorld(screenX, screenY))

	c.Zoom = math.Min(maxZoom, math.Max(minZoom, c.Zoom*factor))

	after := c.applyViewTransform(c.ScreenToWorld(screenX, screenY))
	c.CenterX += before.X - after.X
	c.CenterY += before.Y - after.Y
}

// Fit adjusts camera to fit the entire content in view
func (c *Camera) Fit(bbox geom.BoundingBox) {
	width := bbox.Width()
	height := bbox.Height()
	if bbox.IsEmpty() || width <= 0 || height <= 0 {
		return
	}

	center := bbox.Center()
	c.CenterX, c.CenterY = center.X, center.Y
	c.RotationCenterX, c.RotationCenterY = center.X, center.Y

	// 90% of the screen leaves some padding
	zoomX := float64(c.ScreenWidth) * 0.9 / width
	zoomY := float64(c.ScreenHeight) * 0.9 / height
	c.Zoom = math.Min(zoomX, zoomY)
}

// UpdateScreenSize updates camera when window is resized
func (c *Camera) UpdateScreenSize(width, height int) {
	c.ScreenWidth = width
	c.ScreenHeight = height
}

// Flip toggles the view flip state (mirrored/normal)
func (c *Camera) Flip() {
	c.FlipView = !c.FlipView
}

// Rotate rotates the view by the given degrees
func (c *Camera) Rotate(degrees float64) {
	c.Rotation = math.Mod(c.Rotation+degrees, 360)
	if c.Rotation < 0 {
		c.Rotation += 360
	}
}

func (c *Camera) rotationCenter() geom.Position {
	return geom.Pt(c.RotationCenterX, c.RotationCenterY)
}

// applyViewTransform rotates, then mirrors X, around the rotation center
func (c *Camera) applyViewTransform(pos geom.Position) geom.Position {
	center := c.rotationCenter()
	rel := geom.Rotation(geom.Position{}, c.Rotation).Apply(pos.Sub(center))
	if c.FlipView {
		rel.X = -rel.X
	}
	return rel.Add(center)
}

// applyInverseViewTransform undoes the flip, then the rotation
func (c *Camera) applyInverseViewTransform(pos geom.Position) geom.Position {
	center := c.rotationCenter()
	rel := pos.Sub(center)
	if c.FlipView {
		rel.X = -rel.X
	}
	return geom.Rotation(geom.Position{}, c.Rotation).ApplyInverse(rel).Add(center)
}

// VisibleBounds returns the visible area in world coordinates, used to cull
// off-screen primitives
func (c *Camera) VisibleBounds() geom.BoundingBox {
	w, h := float64(c.ScreenWidth), float64(c.ScreenHeight)
	bb := geom.NewBoundingBox()
	for _, corner := range [][2]float64{{0, 0}, {w, 0}, {0, h}, {w, h}} {
		bb.Expand(c.ScreenToWorld(corner[0], corner[1]))
	}
	return bb
}
