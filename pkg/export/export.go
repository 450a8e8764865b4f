// Package export writes a finished drawing as SVG, PNG or PDF.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/OpenTraceLab/routerjig/pkg/drawing"
)

// Format is an output document type
type Format int

const (
	SVG Format = iota
	PNG
	PDF
)

// Formats lists the supported formats
var Formats = []Format{SVG, PNG, PDF}

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case PDF:
		return "pdf"
	}
	return "svg"
}

// ContentType returns the MIME type of f
func (f Format) ContentType() string {
	switch f {
	case PNG:
		return "image/png"
	case PDF:
		return "application/pdf"
	}
	return "image/svg+xml"
}

// ParseFormat accepts a format name or file extension
func ParseFormat(name string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), ".") {
	case "", "svg":
		return SVG, nil
	case "png":
		return PNG, nil
	case "pdf":
		return PDF, nil
	}
	return SVG, fmt.Errorf("unknown output format %q (want svg, png or pdf)", name)
}

// Options tune the raster backend
type Options struct {
	PixelsPerMM float64
}

// DefaultOptions renders PNGs at 4 pixels per millimeter
func DefaultOptions() Options {
	return Options{PixelsPerMM: DefaultPixelsPerMM}
}

// Write renders d to w in format f
func Write(w io.Writer, d *drawing.Drawing, f Format, opts Options) error {
	switch f {
	case PNG:
		return WritePNG(w, d, opts)
	case PDF:
		return WritePDF(w, d)
	}
	_, err := d.WriteTo(w)
	return err
}
