package renderer

import "github.com/OpenTraceLab/routerjig/pkg/drawing"

// LayerConfig controls which tags are visible during rendering
type LayerConfig struct {
	hidden map[drawing.Tag]bool
}

// NewLayerConfig creates a configuration with every tag visible
func NewLayerConfig() *LayerConfig {
	return &LayerConfig{hidden: make(map[drawing.Tag]bool)}
}

// SetVisible sets the visibility of a tag
func (lc *LayerConfig) SetVisible(tag drawing.Tag, visible bool) {
	lc.hidden[tag] = !visible
}

// IsVisible reports whether a tag is drawn (default: visible)
func (lc *LayerConfig) IsVisible(tag drawing.Tag) bool {
	return !lc.hidden[tag]
}

// Toggle flips a tag's visibility and returns the new state
func (lc *LayerConfig) Toggle(tag drawing.Tag) bool {
	lc.hidden[tag] = !lc.hidden[tag]
	return !lc.hidden[tag]
}

// ShowAll makes every tag visible
func (lc *LayerConfig) ShowAll() {
	lc.hidden = make(map[drawing.Tag]bool)
}

// ShowOnly shows only the given tags
func (lc *LayerConfig) ShowOnly(tags ...drawing.Tag) {
	for _, t := range drawing.Tags {
		lc.hidden[t] = true
	}
	for _, t := range tags {
		lc.hidden[t] = false
	}
}

// ShowCutOnly hides everything that is not machined
func (lc *LayerConfig) ShowCutOnly() {
	lc.ShowOnly(drawing.Cut)
}
