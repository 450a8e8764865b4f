package export

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/routerjig/pkg/drawing"
	"github.com/OpenTraceLab/routerjig/pkg/jig"
)

func sample(t *testing.T) *drawing.Drawing {
	t.Helper()
	d := drawing.New()
	d.Circle(20, 20, 10, drawing.Cut)
	d.DashedLine(0, 0, 40, 0, drawing.Guide, 3, 3)
	d.Arc(20, 20, 15, 0.5, 0, drawing.Cut, false)
	d.Circle(5, 5, 1, drawing.Debug)
	d.Text(20, 35, "12mm", drawing.TextStyle{Tag: drawing.Mark, FontSize: 4, Anchor: drawing.AnchorEnd, Rotation: 270})
	return d
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"", SVG},
		{"svg", SVG},
		{"PNG", PNG},
		{".pdf", PDF},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseFormat("dxf")
	assert.Error(t, err)
	assert.Equal(t, "application/pdf", PDF.ContentType())
}

func TestWritePNG(t *testing.T) {
	d := sample(t)
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, d, Options{PixelsPerMM: 2}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)

	canvas := d.Canvas()
	assert.Equal(t, int(math.Ceil(canvas.Width()*2)), img.Bounds().Dx())

	// the canvas corner stays white, the circle rim is stroked
	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b})

	rimX := int((30 - canvas.Min.X) * 2)
	rimY := int((20 - canvas.Min.Y) * 2)
	red := false
	for x := rimX - 2; x <= rimX+2; x++ {
		r, g, b, _ := img.At(x, rimY).RGBA()
		if r > g+0x1000 && r > b+0x1000 {
			red = true
		}
	}
	assert.True(t, red, "no red pixel near the circle rim")
}

func TestRasterizeLimits(t *testing.T) {
	d := drawing.New()
	d.Circle(0, 0, 10000, drawing.Cut)
	_, err := Rasterize(d, 4)
	assert.Error(t, err)

	_, err = Rasterize(sample(t), 0)
	assert.Error(t, err)
}

func TestWritePDF(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, WritePDF(&a, sample(t)))
	require.NoError(t, WritePDF(&b, sample(t)))

	assert.True(t, bytes.HasPrefix(a.Bytes(), []byte("%PDF-")))
	assert.Equal(t, a.Bytes(), b.Bytes(), "PDF output must be deterministic")
}

func TestWriteJigAllFormats(t *testing.T) {
	d, err := jig.Render(jig.DefaultParameters(), nil)
	require.NoError(t, err)

	for _, f := range Formats {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, d, f, DefaultOptions()))
			assert.NotZero(t, buf.Len())
		})
	}
}
