package renderer

import (
	"image/color"

	"github.com/OpenTraceLab/routerjig/pkg/drawing"
)

// ColorTheme selects the viewer palette
type ColorTheme int

const (
	ThemePaper ColorTheme = iota
	ThemeDark
)

// ThemeNames maps theme enum to display name
var ThemeNames = map[ColorTheme]string{
	ThemePaper: "Paper",
	ThemeDark:  "Dark",
}

// CurrentTheme is the active color theme (default: Paper)
var CurrentTheme = ThemePaper

// Paper uses the document colors on white, like the SVG in a browser
var paperColors = map[drawing.Tag]color.NRGBA{
	drawing.Cut:   drawing.Cut.NRGBA(),
	drawing.Mark:  drawing.Mark.NRGBA(),
	drawing.Guide: drawing.Guide.NRGBA(),
	drawing.Debug: {R: 200, G: 200, B: 200, A: 160},
}

var darkColors = map[drawing.Tag]color.NRGBA{
	drawing.Cut:   {R: 255, G: 90, B: 90, A: 255},
	drawing.Mark:  {R: 110, G: 160, B: 255, A: 255},
	drawing.Guide: {R: 90, G: 200, B: 120, A: 255},
	drawing.Debug: {R: 90, G: 90, B: 90, A: 160},
}

// Background returns the canvas color for the current theme
func Background() color.NRGBA {
	if CurrentTheme == ThemeDark {
		return color.NRGBA{R: 0, G: 16, B: 35, A: 255}
	}
	return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
}

// TagColor returns the stroke color of a tag in the current theme
func TagColor(tag drawing.Tag) color.NRGBA {
	colors := paperColors
	if CurrentTheme == ThemeDark {
		colors = darkColors
	}
	if c, ok := colors[tag]; ok {
		return c
	}
	return color.NRGBA{R: 128, G: 128, B: 128, A: 255}
}

// SetTheme changes the active color theme
func SetTheme(theme ColorTheme) {
	CurrentTheme = theme
}

// NextTheme cycles to the following theme
func NextTheme() ColorTheme {
	CurrentTheme = (CurrentTheme + 1) % ColorTheme(len(ThemeNames))
	return CurrentTheme
}
