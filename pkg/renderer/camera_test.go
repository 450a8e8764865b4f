package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OpenTraceLab/routerjig/pkg/drawing"
	"github.com/OpenTraceLab/routerjig/pkg/geom"
)

func TestCameraRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		rotation float64
		flip     bool
	}{
		{"plain", 0, false},
		{"rotated", 90, false},
		{"flipped", 0, true},
		{"rotated and flipped", 270, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera(800, 600)
			c.Fit(geom.BoundingBox{Min: geom.Pt(0, 0), Max: geom.Pt(200, 100)})
			c.Rotate(tt.rotation)
			c.FlipView = tt.flip

			world := geom.Pt(37.5, 81.25)
			sx, sy := c.WorldToScreen(world)
			back := c.ScreenToWorld(sx, sy)
			assert.InDelta(t, world.X, back.X, 1e-9)
			assert.InDelta(t, world.Y, back.Y, 1e-9)
		})
	}
}

func TestCameraFit(t *testing.T) {
	c := NewCamera(1000, 500)
	c.Fit(geom.BoundingBox{Min: geom.Pt(-10, -10), Max: geom.Pt(190, 90)})

	assert.InDelta(t, 4.5, c.Zoom, 1e-9)
	x, y := c.WorldToScreen(geom.Pt(90, 40))
	assert.InDelta(t, 500, x, 1e-9)
	assert.InDelta(t, 250, y, 1e-9)

	before := c.Zoom
	c.Fit(geom.NewBoundingBox())
	assert.Equal(t, before, c.Zoom, "empty boxes leave the camera alone")
}

func TestCameraZoomKeepsCursorPoint(t *testing.T) {
	c := NewCamera(800, 600)
	c.Fit(geom.BoundingBox{Min: geom.Pt(0, 0), Max: geom.Pt(100, 100)})
	c.Rotate(90)

	under := c.ScreenToWorld(100, 150)
	c.ZoomAt(100, 150, 1.5)
	after := c.ScreenToWorld(100, 150)
	assert.InDelta(t, under.X, after.X, 1e-9)
	assert.InDelta(t, under.Y, after.Y, 1e-9)

	c.ZoomAt(0, 0, 1e9)
	assert.Equal(t, maxZoom, c.Zoom)
}

func TestCameraRotateNormalizes(t *testing.T) {
	c := NewCamera(10, 10)
	c.Rotate(-90)
	assert.Equal(t, 270.0, c.Rotation)
	c.Rotate(450)
	assert.Equal(t, 0.0, c.Rotation)
}

func TestLayerConfig(t *testing.T) {
	lc := NewLayerConfig()
	for _, tag := range drawing.Tags {
		assert.True(t, lc.IsVisible(tag))
	}

	assert.False(t, lc.Toggle(drawing.Debug))
	assert.False(t, lc.IsVisible(drawing.Debug))
	assert.True(t, lc.Toggle(drawing.Debug))

	lc.ShowCutOnly()
	assert.True(t, lc.IsVisible(drawing.Cut))
	assert.False(t, lc.IsVisible(drawing.Mark))

	lc.ShowAll()
	assert.True(t, lc.IsVisible(drawing.Guide))
}

func TestThemes(t *testing.T) {
	defer SetTheme(ThemePaper)

	assert.Equal(t, drawing.Cut.NRGBA(), TagColor(drawing.Cut))
	assert.Equal(t, ThemeDark, NextTheme())
	assert.NotEqual(t, drawing.Cut.NRGBA(), TagColor(drawing.Cut))
	assert.Equal(t, ThemePaper, NextTheme())
}
