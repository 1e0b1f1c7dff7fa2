package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/stardodge/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in YAML configuration. Save it to
~/.stardodge/configs/stars.yaml or pass it with --config to customize
the game.

With --effective the configuration that would actually be used is
printed, after the search path and the --difficulty preset are applied.

Examples:
  stardodge config > ~/.stardodge/configs/stars.yaml
  stardodge config --effective --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the loaded config with the preset applied")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagEffective {
		os.Stdout.Write(config.GetDefaultYAML())
		return
	}

	cfg, err := config.LoadStars(flagConfig)
	if err != nil {
		fail("loading config: %v", err)
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fail("%v", err)
	}
	config.ApplyStarsPreset(&cfg, preset)

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		fail("encoding config: %v", err)
	}
	enc.Close()
}
