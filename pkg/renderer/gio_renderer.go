package renderer

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"

	"github.com/OpenTraceLab/routerjig/pkg/drawing"
	"github.com/OpenTraceLab/routerjig/pkg/geom"
)

// Smallest and largest on-screen label sizes in pixels
const (
	minTextPx = 6.0
	maxTextPx = 200.0
)

var shaper = text.NewShaper(text.WithCollection(gofont.Collection()))

// RenderDrawing renders every visible primitive of d using Gio operations
func RenderDrawing(gtx layout.Context, camera *Camera, d *drawing.Drawing, config *LayerConfig) {
	if config == nil {
		config = NewLayerConfig()
	}
	paint.Fill(gtx.Ops, Background())

	visible := camera.VisibleBounds()
	width := math.Max(1, d.StrokeWidth()*camera.Zoom)

	// Draw tag by tag so cuts end up on top
	for i := len(drawing.Tags) - 1; i >= 0; i-- {
		tag := drawing.Tags[i]
		if !config.IsVisible(tag) {
			continue
		}
		col := TagColor(tag)
		for _, p := range d.Primitives() {
			if p.ColorTag() != tag || !visible.Intersects(p.Extent()) {
				continue
			}
			renderPrimitive(gtx, camera, p, width, col)
		}
	}
}

func renderPrimitive(gtx layout.Context, camera *Camera, p drawing.Primitive, width float64, col color.NRGBA) {
	switch v := p.(type) {
	case drawing.Line:
		if len(v.Dash) == 0 {
			renderPolyline(gtx, camera, []geom.Position{v.From, v.To}, width, col)
			return
		}
		for _, seg := range geom.DashSegments(v.From, v.To, v.Dash) {
			renderPolyline(gtx, camera, []geom.Position{seg.From, seg.To}, width, col)
		}

	case drawing.Circle:
		renderPolyline(gtx, camera, geom.CirclePoints(v.Center, v.Radius), width, col)

	case drawing.Arc:
		start, span := v.Sweep()
		renderPolyline(gtx, camera, geom.ArcPoints(v.Center, v.Radius, start, span), width, col)

	case drawing.Text:
		renderText(gtx, camera, v, col)
	}
}

// renderPolyline strokes the points through the camera
func renderPolyline(gtx layout.Context, camera *Camera, pts []geom.Position, width float64, lineColor color.NRGBA) {
	if len(pts) < 2 {
		return
	}
	var path clip.Path
	path.Begin(gtx.Ops)
	x, y := camera.WorldToScreen(pts[0])
	path.MoveTo(f32.Pt(float32(x), float32(y)))
	for _, p := range pts[1:] {
		x, y = camera.WorldToScreen(p)
		path.LineTo(f32.Pt(float32(x), float32(y)))
	}

	stroke := clip.Stroke{
		Path:  path.End(),
		Width: float32(width),
	}.Op()

	paint.FillShape(gtx.Ops, lineColor, stroke)
}

// renderText lays out a label in an isolated macro, then places it so its
// baseline anchor lands on the text position
func renderText(gtx layout.Context, camera *Camera, t drawing.Text, textColor color.NRGBA) {
	fontSize := t.Style.FontSize * camera.Zoom
	if fontSize < minTextPx {
		return
	}
	if fontSize > maxTextPx {
		fontSize = maxTextPx
	}
	x, y := camera.WorldToScreen(t.At)

	lgtx := gtx
	lgtx.Constraints = layout.Constraints{Max: image.Pt(1<<16, 1<<16)}

	macro := op.Record(gtx.Ops)
	paint.ColorOp{Color: textColor}.Add(gtx.Ops)
	label := widget.Label{
		Alignment: text.Start,
		MaxLines:  1,
	}
	dims := label.Layout(lgtx, shaper, font.Font{Typeface: "Go Mono"}, unit.Sp(fontSize), t.Content, op.CallOp{})
	call := macro.Stop()

	dx := float32(0)
	switch t.Style.Anchor {
	case drawing.AnchorMiddle:
		dx = -float32(dims.Size.X) / 2
	case drawing.AnchorEnd:
		dx = -float32(dims.Size.X)
	}
	dy := -float32(dims.Size.Y - dims.Baseline)

	angle := t.Style.Rotation + camera.Rotation
	if camera.FlipView {
		angle = -angle
	}
	angleRad := float32(geom.Radians(angle))
	transform := f32.Affine2D{}.
		Offset(f32.Pt(dx, dy)).
		Rotate(f32.Pt(0, 0), angleRad).
		Offset(f32.Pt(float32(x), float32(y)))

	stack := op.Affine(transform).Push(gtx.Ops)
	call.Add(gtx.Ops)
	stack.Pop()
}
