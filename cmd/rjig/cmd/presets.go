package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/routerjig/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List screw and rail presets",
	Long: `List the named presets accepted by --screws and --screw-rails.
Use "none" to leave out screw holes or rails.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listPresets("Screws", config.ScrewPresets)
		fmt.Println()
		listPresets("Screw rails", config.RailPresets)
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}

func listPresets(title string, presets map[string]string) {
	fmt.Printf("%s:\n", title)
	for _, name := range config.PresetNames(presets) {
		fmt.Printf("  %-14s %s\n", name, presets[name])
	}
}
