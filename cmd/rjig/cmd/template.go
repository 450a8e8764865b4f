package cmd

import (
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/routerjig/internal/config"
	"github.com/OpenTraceLab/routerjig/pkg/drawing"
	"github.com/OpenTraceLab/routerjig/pkg/template"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Generate a circle template",
	Long: `Generate a quarter or half circle template: concentric arcs from
min-radius to max-radius in step-size increments with angle ticks at 15, 18,
22.5, 30, 36, 45, 60, 67.5, 72 and 75 degrees.

Examples:
  rjig template -o quarter.svg
  rjig template --angles 180 --fence --max-radius 10in --step-size 0.5in --min-radius 1in --inches -o half.pdf`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildTemplate()
		if err != nil {
			return err
		}
		return writeOutput(d)
	},
}

func init() {
	rootCmd.AddCommand(templateCmd)
	addTemplateFlags(templateCmd.Flags())
	addOutputFlags(templateCmd.Flags())
}

func buildTemplate() (*drawing.Drawing, error) {
	p, err := config.TemplateParameters(cfg)
	if err != nil {
		return nil, err
	}
	opts, err := config.DrawingOptions(cfg)
	if err != nil {
		return nil, err
	}
	logger.Printf("template %d circles, %d degrees", p.Steps()+1, p.Angles)

	d, err := template.Render(p, caption(), opts...)
	if err != nil {
		return nil, err
	}
	logCanvas(d)
	return d, nil
}
