package export

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/OpenTraceLab/routerjig/pkg/drawing"
	"github.com/OpenTraceLab/routerjig/pkg/geom"
)

// creationDate is stamped on every PDF so identical drawings produce
// identical files
var creationDate = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

type pdfWriter struct {
	pdf    *gofpdf.Fpdf
	origin geom.Position
}

// WritePDF writes d as a single-page PDF sized to its canvas in millimeters
func WritePDF(w io.Writer, d *drawing.Drawing) error {
	canvas := d.Canvas()
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: canvas.Width(), Ht: canvas.Height()},
	})
	pdf.SetCreationDate(creationDate)
	pdf.SetModificationDate(creationDate)
	pdf.SetCatalogSort(true)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetFont("Courier", "", 10)
	pdf.SetLineWidth(d.StrokeWidth())
	pdf.SetLineCapStyle("butt")

	pw := &pdfWriter{pdf: pdf, origin: canvas.Min}
	for _, p := range d.Primitives() {
		pw.draw(p)
	}
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	return pdf.Output(w)
}

func (pw *pdfWriter) xy(p geom.Position) (float64, float64) {
	return p.X - pw.origin.X, p.Y - pw.origin.Y
}

func (pw *pdfWriter) setTag(tag drawing.Tag) {
	c := tag.NRGBA()
	pw.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	pw.pdf.SetTextColor(int(c.R), int(c.G), int(c.B))
	pw.pdf.SetAlpha(tag.Opacity(), "Normal")
}

func (pw *pdfWriter) draw(p drawing.Primitive) {
	pw.setTag(p.ColorTag())

	switch v := p.(type) {
	case drawing.Line:
		if len(v.Dash) > 0 {
			pw.pdf.SetDashPattern(v.Dash, 0)
		}
		x0, y0 := pw.xy(v.From)
		x1, y1 := pw.xy(v.To)
		pw.pdf.Line(x0, y0, x1, y1)
		if len(v.Dash) > 0 {
			pw.pdf.SetDashPattern([]float64{}, 0)
		}

	case drawing.Circle:
		x, y := pw.xy(v.Center)
		pw.pdf.Circle(x, y, v.Radius, "D")

	case drawing.Arc:
		// gofpdf angles run counter-clockwise on the page, drawing angles
		// clockwise
		start, span := v.Sweep()
		x, y := pw.xy(v.Center)
		pw.pdf.Arc(x, y, v.Radius, v.Radius, 0, -geom.Degrees(start+span), -geom.Degrees(start), "D")

	case drawing.Text:
		pw.text(v)
	}
}

func (pw *pdfWriter) text(t drawing.Text) {
	x, y := pw.xy(t.At)
	pw.pdf.SetFontUnitSize(t.Style.FontSize)
	width := pw.pdf.GetStringWidth(t.Content)
	dx := 0.0
	switch t.Style.Anchor {
	case drawing.AnchorMiddle:
		dx = -width / 2
	case drawing.AnchorEnd:
		dx = -width
	}

	if t.Style.Rotation != 0 {
		pw.pdf.TransformBegin()
		pw.pdf.TransformRotate(-t.Style.Rotation, x, y)
		pw.pdf.Text(x+dx, y, t.Content)
		pw.pdf.TransformEnd()
		return
	}
	pw.pdf.Text(x+dx, y, t.Content)
}
