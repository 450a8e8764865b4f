// Package config layers jig and template settings from defaults, an optional
// config file, RJIG_* environment variables and command-line flags.
package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/OpenTraceLab/routerjig/pkg/drawing"
	"github.com/OpenTraceLab/routerjig/pkg/export"
	"github.com/OpenTraceLab/routerjig/pkg/jig"
	"github.com/OpenTraceLab/routerjig/pkg/template"
	"github.com/OpenTraceLab/routerjig/pkg/units"
)

// EnvPrefix is prepended to environment variable names, e.g. RJIG_MIN_RADIUS
const EnvPrefix = "RJIG"

// Jig keys
const (
	KeyMinRadius   = "min-radius"
	KeyBitDiam     = "bit-diam"
	KeyPinDiam     = "pin-diam"
	KeyCutDiam     = "cut-diam"
	KeyStepSize    = "step-size"
	KeySteps       = "steps"
	KeySubSteps    = "sub-steps"
	KeyStepAngle   = "step-angle"
	KeyInches      = "inches"
	KeyShape       = "shape"
	KeyLayers      = "layers"
	KeyScrews      = "screws"
	KeyScrewRails  = "screw-rails"
	KeyBigCircle   = "big-circle"
	KeySmallCircle = "small-circle"
)

// Template keys
const (
	KeyTemplateMinRadius = "template.min-radius"
	KeyTemplateMaxRadius = "template.max-radius"
	KeyTemplateStepSize  = "template.step-size"
	KeyTemplateAngles    = "template.angles"
	KeyTemplateFence     = "template.fence"
)

// Output keys
const (
	KeyMargin      = "margin"
	KeyStrokeWidth = "stroke-width"
	KeyPixelsPerMM = "pixels-per-mm"
)

// NoPreset disables screws or rails
const NoPreset = "none"

// ScrewPresets maps router names to screw-hole lists
var ScrewPresets = map[string]string{
	"dewalt-trim": "-30.5mm,-30.5mm,6mm,10mm;-30.5mm,+30.5mm,6mm,10mm;+30.5mm,-30.5mm,6mm,10mm;+30.5mm,+30.5mm,6mm,10mm",
	"dewalt-625":  "-57.5mm,-15mm,6mm;57.5mm,-15mm,6mm;0mm,75mm,6mm",
}

// RailPresets maps names to rail declarations
var RailPresets = map[string]string{
	"default": "0,90,180,270,120,240:25mm:47mm:6mm:10mm",
}

var defaults = map[string]any{
	KeyMinRadius:   "6in",
	KeyBitDiam:     "0.25in",
	KeyPinDiam:     "2mm",
	KeyCutDiam:     "1in",
	KeyStepSize:    "1in",
	KeySteps:       6,
	KeySubSteps:    4,
	KeyStepAngle:   2.0,
	KeyInches:      false,
	KeyShape:       "rectangle",
	KeyLayers:      "single",
	KeyScrews:      "dewalt-trim",
	KeyScrewRails:  "default",
	KeyBigCircle:   "2.5in",
	KeySmallCircle: "1in",

	KeyTemplateMinRadius: "1cm",
	KeyTemplateMaxRadius: "20cm",
	KeyTemplateStepSize:  "1cm",
	KeyTemplateAngles:    90,
	KeyTemplateFence:     false,

	KeyMargin:      drawing.DefaultMargin,
	KeyStrokeWidth: drawing.DefaultStrokeWidth,
	KeyPixelsPerMM: export.DefaultPixelsPerMM,
}

// Default returns the built-in value of key
func Default(key string) any {
	return defaults[key]
}

// SetDefaults registers every default on v
func SetDefaults(v *viper.Viper) {
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
}

// NewDefaults returns a viper instance holding only the built-in defaults
func NewDefaults() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

// New returns a viper instance with defaults and environment lookup
func New() *viper.Viper {
	v := NewDefaults()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads a config file (YAML, TOML or JSON by extension) into v
func Load(v *viper.Viper, file string) error {
	if file == "" {
		return nil
	}
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config %s: %w", file, err)
	}
	return nil
}

// PresetNames returns the sorted names of a preset table
func PresetNames(presets map[string]string) []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// resolvePreset expands a preset name; "none" and "" mean nothing
func resolvePreset(presets map[string]string, value string) string {
	value = strings.TrimSpace(value)
	if value == NoPreset {
		return ""
	}
	if expanded, ok := presets[value]; ok {
		return expanded
	}
	return value
}

func length(v *viper.Viper, key string) (float64, error) {
	s := v.GetString(key)
	mm, err := units.Parse(s)
	if err != nil {
		return 0, &jig.ConfigError{Field: key, Input: s, Reason: "not a length", Err: err}
	}
	return mm, nil
}

func integer(v *viper.Viper, key string) (int, error) {
	s := strings.TrimSpace(v.GetString(key))
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &jig.ConfigError{Field: key, Input: s, Reason: "not an integer", Err: err}
	}
	return n, nil
}

func number(v *viper.Viper, key string) (float64, error) {
	s := strings.TrimSpace(v.GetString(key))
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &jig.ConfigError{Field: key, Input: s, Reason: "not a number", Err: err}
	}
	return f, nil
}

// lengths parses several length keys in order, stopping at the first error
func lengths(v *viper.Viper, dst map[string]*float64, keys ...string) error {
	for _, k := range keys {
		mm, err := length(v, k)
		if err != nil {
			return err
		}
		*dst[k] = mm
	}
	return nil
}

// JigParameters builds layout parameters from v
func JigParameters(v *viper.Viper) (jig.Parameters, error) {
	p := jig.DefaultParameters()

	var bitDiam, pinDiam, cutDiam float64
	err := lengths(v, map[string]*float64{
		KeyMinRadius:   &p.MinRadius,
		KeyBitDiam:     &bitDiam,
		KeyPinDiam:     &pinDiam,
		KeyCutDiam:     &cutDiam,
		KeyStepSize:    &p.StepSize,
		KeyBigCircle:   &p.BigCircleRadius,
		KeySmallCircle: &p.SmallCircleRadius,
	}, KeyMinRadius, KeyBitDiam, KeyPinDiam, KeyCutDiam, KeyStepSize, KeyBigCircle, KeySmallCircle)
	if err != nil {
		return p, err
	}
	p.BitRadius = bitDiam / 2
	p.PinRadius = pinDiam / 2
	p.CutRadius = cutDiam / 2

	if p.Steps, err = integer(v, KeySteps); err != nil {
		return p, err
	}
	if p.SubSteps, err = integer(v, KeySubSteps); err != nil {
		return p, err
	}
	if p.StepAngle, err = number(v, KeyStepAngle); err != nil {
		return p, err
	}
	if p.Shape, err = jig.ParseShape(v.GetString(KeyShape)); err != nil {
		return p, err
	}
	if p.Layers, err = jig.ParseLayerMode(v.GetString(KeyLayers)); err != nil {
		return p, err
	}
	if p.Screws, err = jig.ParseScrewHoles(resolvePreset(ScrewPresets, v.GetString(KeyScrews))); err != nil {
		return p, err
	}
	if p.Rails, err = jig.ParseRails(resolvePreset(RailPresets, v.GetString(KeyScrewRails))); err != nil {
		return p, err
	}
	p.Units = units.SystemFor(v.GetBool(KeyInches))
	return p, nil
}

// TemplateParameters builds circle template parameters from v
func TemplateParameters(v *viper.Viper) (template.Parameters, error) {
	p := template.DefaultParameters()
	err := lengths(v, map[string]*float64{
		KeyTemplateMinRadius: &p.MinRadius,
		KeyTemplateMaxRadius: &p.MaxRadius,
		KeyTemplateStepSize:  &p.StepSize,
	}, KeyTemplateMinRadius, KeyTemplateMaxRadius, KeyTemplateStepSize)
	if err != nil {
		return p, err
	}
	if p.Angles, err = integer(v, KeyTemplateAngles); err != nil {
		return p, err
	}
	p.Fence = v.GetBool(KeyTemplateFence)
	p.Units = units.SystemFor(v.GetBool(KeyInches))
	return p, nil
}

// DrawingOptions returns the accumulator options configured on v
func DrawingOptions(v *viper.Viper) ([]drawing.Option, error) {
	margin, err := number(v, KeyMargin)
	if err != nil {
		return nil, err
	}
	width, err := number(v, KeyStrokeWidth)
	if err != nil {
		return nil, err
	}
	if margin < 0 || width <= 0 {
		return nil, &jig.ConfigError{
			Field:  KeyStrokeWidth,
			Input:  v.GetString(KeyStrokeWidth),
			Reason: "margin must be non-negative and stroke width positive",
		}
	}
	return []drawing.Option{drawing.WithMargin(margin), drawing.WithStrokeWidth(width)}, nil
}

// ExportOptions returns the raster options configured on v
func ExportOptions(v *viper.Viper) (export.Options, error) {
	ppmm, err := number(v, KeyPixelsPerMM)
	if err != nil {
		return export.Options{}, err
	}
	if ppmm <= 0 {
		return export.Options{}, &jig.ConfigError{Field: KeyPixelsPerMM, Input: v.GetString(KeyPixelsPerMM), Reason: "must be positive"}
	}
	return export.Options{PixelsPerMM: ppmm}, nil
}
