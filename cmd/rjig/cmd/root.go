package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/OpenTraceLab/routerjig/internal/config"
)

var (
	// Global flags
	verbose bool
	cfgFile string

	cfg    = config.New()
	logger = log.New(os.Stderr, "", 0)
)

var rootCmd = &cobra.Command{
	Use:   "rjig",
	Short: "rjig - router circle-cutting jig generator",
	Long: `rjig draws cut files for a router circle-cutting jig: pin holes at
fixed radius steps, the jig outline, the router base mounting holes and
optional glue guides or a support layer. It can also draw circle templates.

Every option can be set by flag, by an RJIG_* environment variable or in a
YAML, TOML or JSON config file passed with --config.

Examples:
  rjig jig -o jig.svg                         # Default 6in jig, DeWalt trim router
  rjig jig --shape narrow --steps 10 -o j.pdf # Narrow jig as PDF
  rjig template --angles 180 --fence -o t.png # Half circle template preview
  rjig view jig --layers double               # Inspect a layout interactively
  rjig serve --addr :8080                     # HTTP API`,
	Version:       "0.9.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !verbose {
			logger.SetOutput(io.Discard)
		}
		if err := config.Load(cfg, cfgFile); err != nil {
			return err
		}
		return bindFlags(cmd.Flags())
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	pf.StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")
	pf.Bool(config.KeyInches, false, "label lengths in inches")
	pf.Float64(config.KeyMargin, config.Default(config.KeyMargin).(float64), "canvas margin in mm")
	pf.Float64(config.KeyStrokeWidth, config.Default(config.KeyStrokeWidth).(float64), "stroke width in mm")
	pf.Float64(config.KeyPixelsPerMM, config.Default(config.KeyPixelsPerMM).(float64), "PNG resolution")
	for _, k := range []string{config.KeyInches, config.KeyMargin, config.KeyStrokeWidth, config.KeyPixelsPerMM} {
		bindTo(pf, k, k)
	}
}

// configKey is the flag annotation naming the config key a flag sets
const configKey = "rjig_config_key"

// bindTo marks flag name as the source of config key
func bindTo(fs *pflag.FlagSet, name, key string) {
	if err := fs.SetAnnotation(name, configKey, []string{key}); err != nil {
		panic(err)
	}
}

// bindFlags binds every annotated flag to its config key
func bindFlags(fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		keys := f.Annotations[configKey]
		if err != nil || len(keys) == 0 {
			return
		}
		err = cfg.BindPFlag(keys[0], f)
	})
	return err
}

// caption echoes the command line onto the drawing
func caption() []string {
	args := append([]string{filepath.Base(os.Args[0])}, os.Args[1:]...)
	return []string{strings.Join(args, " ")}
}
