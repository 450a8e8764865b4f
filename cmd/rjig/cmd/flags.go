package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/OpenTraceLab/routerjig/internal/config"
	"github.com/OpenTraceLab/routerjig/pkg/drawing"
	"github.com/OpenTraceLab/routerjig/pkg/export"
	"github.com/OpenTraceLab/routerjig/pkg/jig"
)

// Output flags
var (
	outputPath   string
	outputFormat string
)

func defaultString(key string) string {
	return fmt.Sprint(config.Default(key))
}

func addJigFlags(fs *pflag.FlagSet) {
	presets := strings.Join(config.PresetNames(config.ScrewPresets), ", ")
	shapes := make([]string, len(jig.Shapes))
	for i, s := range jig.Shapes {
		shapes[i] = s.String()
	}

	fs.String(config.KeyMinRadius, defaultString(config.KeyMinRadius), "radius of the first pin step")
	fs.String(config.KeyBitDiam, defaultString(config.KeyBitDiam), "router bit diameter")
	fs.String(config.KeyPinDiam, defaultString(config.KeyPinDiam), "pivot pin diameter")
	fs.String(config.KeyCutDiam, defaultString(config.KeyCutDiam), "diameter of the center cut-out")
	fs.String(config.KeyStepSize, defaultString(config.KeyStepSize), "radius increase per step")
	fs.Int(config.KeySteps, config.Default(config.KeySteps).(int), "number of steps")
	fs.Int(config.KeySubSteps, config.Default(config.KeySubSteps).(int), "pin holes per step")
	fs.Float64(config.KeyStepAngle, config.Default(config.KeyStepAngle).(float64), "angle between sub-step rows in degrees")
	fs.String(config.KeyShape, defaultString(config.KeyShape), "pin pattern: "+strings.Join(shapes, ", "))
	fs.String(config.KeyLayers, defaultString(config.KeyLayers), "single, double or support")
	fs.String(config.KeyScrews, defaultString(config.KeyScrews), "screw holes: x,y,diam[,diam2];... or a preset ("+presets+") or none")
	fs.String(config.KeyScrewRails, defaultString(config.KeyScrewRails), "screw rails: angles:r1:r2:diam[:diam2], a preset or none")
	fs.String(config.KeyBigCircle, defaultString(config.KeyBigCircle), "radius of the router end of the outline")
	fs.String(config.KeySmallCircle, defaultString(config.KeySmallCircle), "radius of the pivot end of the outline")

	fs.VisitAll(func(f *pflag.Flag) {
		bindTo(fs, f.Name, f.Name)
	})
}

// templateKeys maps template flag names to their config keys
var templateKeys = map[string]string{
	"min-radius": config.KeyTemplateMinRadius,
	"max-radius": config.KeyTemplateMaxRadius,
	"step-size":  config.KeyTemplateStepSize,
	"angles":     config.KeyTemplateAngles,
	"fence":      config.KeyTemplateFence,
}

func addTemplateFlags(fs *pflag.FlagSet) {
	fs.String("min-radius", defaultString(config.KeyTemplateMinRadius), "smallest circle radius")
	fs.String("max-radius", defaultString(config.KeyTemplateMaxRadius), "largest circle radius")
	fs.String("step-size", defaultString(config.KeyTemplateStepSize), "radius increase per circle")
	fs.Int("angles", config.Default(config.KeyTemplateAngles).(int), "90 for a quarter or 180 for a half template")
	fs.Bool("fence", false, "add a fence profile along the straight edges")

	for name, key := range templateKeys {
		bindTo(fs, name, key)
	}
}

func addOutputFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&outputPath, "output", "o", "-", "output file, - for stdout")
	fs.StringVar(&outputFormat, "format", "", "svg, png or pdf (default from the output extension)")
}

// writeOutput writes d to the output file in the selected format
func writeOutput(d *drawing.Drawing) (err error) {
	name := outputFormat
	if name == "" && outputPath != "-" {
		name = filepath.Ext(outputPath)
	}
	f, err := export.ParseFormat(name)
	if err != nil {
		return err
	}
	opts, err := config.ExportOptions(cfg)
	if err != nil {
		return err
	}

	if outputPath == "-" || outputPath == "" {
		return export.Write(os.Stdout, d, f, opts)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	if err := export.Write(file, d, f, opts); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	logger.Printf("wrote %s (%s)", outputPath, f)
	return nil
}

func logCanvas(d *drawing.Drawing) {
	c := d.Canvas()
	logger.Printf("%d primitives, canvas %.1f x %.1f mm", d.Len(), c.Width(), c.Height())
}
