package drawing

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo/float"
	"golang.org/x/net/html/charset"
)

// svgDecimals is the coordinate precision of the vector document (micrometers)
const svgDecimals = 3

// MalformedDocumentError reports serialized output that is not well-formed XML
type MalformedDocumentError struct {
	Offset int64
	Err    error
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("malformed document at byte %d: %v", e.Offset, e.Err)
}

func (e *MalformedDocumentError) Unwrap() error { return e.Err }

// Finalize serializes every primitive, in insertion order, into an SVG
// document whose viewBox is the canvas. It does not modify the drawing.
func (d *Drawing) Finalize() ([]byte, error) {
	var buf bytes.Buffer
	canvas := d.Canvas()

	s := svg.New(&buf)
	s.Decimals = svgDecimals
	s.StartviewUnit(canvas.Width(), canvas.Height(), "mm",
		canvas.Min.X, canvas.Min.Y, canvas.Width(), canvas.Height())

	for _, p := range d.prims {
		d.writePrimitive(s, p)
	}
	s.End()

	if err := checkWellFormed(buf.Bytes()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTo writes the finalized document to w
func (d *Drawing) WriteTo(w io.Writer) (int64, error) {
	doc, err := d.Finalize()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(doc)
	return int64(n), err
}

func (d *Drawing) writePrimitive(s *svg.SVG, p Primitive) {
	switch p := p.(type) {
	case Line:
		attrs := d.strokeAttrs(p.Tag)
		if len(p.Dash) > 0 {
			attrs = append(attrs, attr("stroke-dasharray", dashArray(p.Dash)))
		}
		s.Line(p.From.X, p.From.Y, p.To.X, p.To.Y, attrs...)
	case Circle:
		s.Circle(p.Center.X, p.Center.Y, p.Radius, d.strokeAttrs(p.Tag)...)
	case Arc:
		start, end := p.Endpoints()
		s.Arc(start.X, start.Y, p.Radius, p.Radius, 0, p.LargeArc(), true, end.X, end.Y,
			d.strokeAttrs(p.Tag)...)
	case Text:
		attrs := []string{
			attr("font-family", "monospace"),
			attr("fill", p.Style.Tag.SVGColor()),
			attr("font-size", formatFloat(p.Style.FontSize)),
			attr("text-anchor", p.Style.Anchor.String()),
		}
		if p.Style.Tag.Opacity() < 1 {
			attrs = append(attrs, attr("fill-opacity", formatFloat(p.Style.Tag.Opacity())))
		}
		if p.Style.Rotation != 0 {
			s.TranslateRotate(p.At.X, p.At.Y, p.Style.Rotation)
			s.Text(0, 0, p.Content, attrs...)
			s.Gend()
			return
		}
		s.Text(p.At.X, p.At.Y, p.Content, attrs...)
	}
}

func (d *Drawing) strokeAttrs(tag Tag) []string {
	attrs := []string{
		attr("stroke", tag.SVGColor()),
		attr("fill", "none"),
		attr("stroke-width", formatFloat(d.strokeWidth)),
	}
	if tag.Opacity() < 1 {
		attrs = append(attrs, attr("stroke-opacity", formatFloat(tag.Opacity())))
	}
	return attrs
}

func attr(name, value string) string {
	return name + `="` + value + `"`
}

func dashArray(dash []float64) string {
	parts := make([]string, len(dash))
	for i, v := range dash {
		parts[i] = formatFloat(v)
	}
	return strings.Join(parts, ",")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// checkWellFormed re-reads the document with a strict XML decoder
func checkWellFormed(doc []byte) error {
	dec := xml.NewDecoder(bytes.NewReader(doc))
	dec.CharsetReader = charset.NewReaderLabel
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return &MalformedDocumentError{Offset: dec.InputOffset(), Err: err}
		}
	}
}
