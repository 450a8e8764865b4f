package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/OpenTraceLab/routerjig/pkg/drawing"
	"github.com/OpenTraceLab/routerjig/pkg/geom"
)

// DefaultPixelsPerMM is the default raster resolution
const DefaultPixelsPerMM = 4.0

// maxPixels caps the raster size
const maxPixels = 16384

// raster strokes primitives onto an RGBA image
type raster struct {
	img    *image.RGBA
	dasher *rasterx.Dasher
	origin geom.Position
	scale  float64
	width  fixed.Int26_6
}

// Rasterize draws d onto a white image at ppmm pixels per millimeter.
// Text is drawn unrotated with a bitmap face.
func Rasterize(d *drawing.Drawing, ppmm float64) (*image.RGBA, error) {
	if !(ppmm > 0) {
		return nil, fmt.Errorf("pixels per mm must be positive, got %v", ppmm)
	}
	canvas := d.Canvas()
	w := int(math.Ceil(canvas.Width() * ppmm))
	h := int(math.Ceil(canvas.Height() * ppmm))
	if w > maxPixels || h > maxPixels {
		return nil, fmt.Errorf("raster of %dx%d pixels exceeds the %d pixel limit", w, h, maxPixels)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	r := &raster{
		img:    img,
		dasher: rasterx.NewDasher(w, h, scanner),
		origin: canvas.Min,
		scale:  ppmm,
		width:  fixed.Int26_6(math.Max(1, d.StrokeWidth()*ppmm) * 64),
	}
	for _, p := range d.Primitives() {
		r.draw(p)
	}
	return img, nil
}

// WritePNG rasterizes d and encodes it as PNG
func WritePNG(w io.Writer, d *drawing.Drawing, opts Options) error {
	ppmm := opts.PixelsPerMM
	if ppmm == 0 {
		ppmm = DefaultPixelsPerMM
	}
	img, err := Rasterize(d, ppmm)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

func (r *raster) px(p geom.Position) (float64, float64) {
	return (p.X - r.origin.X) * r.scale, (p.Y - r.origin.Y) * r.scale
}

func (r *raster) pt(p geom.Position) fixed.Point26_6 {
	return rasterx.ToFixedP(r.px(p))
}

func tagColor(tag drawing.Tag) color.NRGBA {
	return tag.NRGBA()
}

func (r *raster) stroke(tag drawing.Tag, dash []float64, build func()) {
	var scaled []float64
	for _, v := range dash {
		scaled = append(scaled, v*r.scale)
	}
	r.dasher.SetStroke(r.width, 4*64, rasterx.ButtCap, nil, rasterx.FlatGap, rasterx.Round, scaled, 0)
	r.dasher.SetColor(tagColor(tag))
	build()
	r.dasher.Draw()
	r.dasher.Clear()
}

func (r *raster) polyline(pts []geom.Position, closed bool) {
	if len(pts) == 0 {
		return
	}
	r.dasher.Start(r.pt(pts[0]))
	for _, p := range pts[1:] {
		r.dasher.Line(r.pt(p))
	}
	r.dasher.Stop(closed)
}

func (r *raster) draw(p drawing.Primitive) {
	switch v := p.(type) {
	case drawing.Line:
		r.stroke(v.Tag, v.Dash, func() {
			r.polyline([]geom.Position{v.From, v.To}, false)
		})
	case drawing.Circle:
		r.stroke(v.Tag, nil, func() {
			x, y := r.px(v.Center)
			rasterx.AddCircle(x, y, v.Radius*r.scale, r.dasher)
		})
	case drawing.Arc:
		start, span := v.Sweep()
		r.stroke(v.Tag, nil, func() {
			r.polyline(geom.ArcPoints(v.Center, v.Radius, start, span), false)
		})
	case drawing.Text:
		r.text(v)
	}
}

func (r *raster) text(t drawing.Text) {
	x, y := r.px(t.At)
	fd := font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(tagColor(t.Style.Tag)),
		Face: basicfont.Face7x13,
	}
	adv := fd.MeasureString(t.Content)
	dot := fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
	switch t.Style.Anchor {
	case drawing.AnchorMiddle:
		dot.X -= adv / 2
	case drawing.AnchorEnd:
		dot.X -= adv
	}
	fd.Dot = dot
	fd.DrawString(t.Content)
}
