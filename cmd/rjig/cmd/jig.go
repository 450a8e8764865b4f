package cmd

import (
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/routerjig/internal/config"
	"github.com/OpenTraceLab/routerjig/pkg/drawing"
	"github.com/OpenTraceLab/routerjig/pkg/geom"
	"github.com/OpenTraceLab/routerjig/pkg/jig"
)

var jigCmd = &cobra.Command{
	Use:   "jig",
	Short: "Generate a circle-cutting jig",
	Long: `Generate the cut file for a router circle-cutting jig.

The jig has a grid of pivot pin holes, one row per step of step-size starting
at min-radius, with sub-steps pin holes per step. The outline joins a circle
around the router base and a smaller circle around the pin grid.

Layers:
  single   - one plate with guides and labels
  double   - adds a bottom plate below, glue guides on both
  support  - adds a support plate with a boss for the pivot pin

Examples:
  rjig jig -o jig.svg
  rjig jig --shape line --steps 12 --sub-steps 8 -o line.svg
  rjig jig --screws "-30mm,0,5mm;30mm,0,5mm" --screw-rails none -o custom.pdf`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildJig()
		if err != nil {
			return err
		}
		return writeOutput(d)
	},
}

func init() {
	rootCmd.AddCommand(jigCmd)
	addJigFlags(jigCmd.Flags())
	addOutputFlags(jigCmd.Flags())
}

func buildJig() (*drawing.Drawing, error) {
	p, err := config.JigParameters(cfg)
	if err != nil {
		return nil, err
	}
	opts, err := config.DrawingOptions(cfg)
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	logJig(p)

	d, err := jig.Render(p, caption(), opts...)
	if err != nil {
		return nil, err
	}
	logCanvas(d)
	return d, nil
}

func logJig(p jig.Parameters) {
	f := p.Units.Format
	logger.Printf("shape %s, %d steps x %d sub-steps, layers %s", p.Shape, p.Steps, p.SubSteps, p.Layers)
	logger.Printf("pin radii %s to %s", f(p.CompRadius(0, 0)), f(p.CompRadius(p.Steps-1, p.SubSteps-1)))
	if a, err := p.TangentAngle(); err == nil {
		logger.Printf("outline tangent angle %.2f degrees", geom.Degrees(a))
	}
	logger.Printf("%d screw holes", len(p.Screws))
	if p.Rails != nil {
		logger.Printf("%d rails from %s to %s", len(p.Rails.Angles), f(p.Rails.InnerRadius), f(p.Rails.OuterRadius))
	}
}
