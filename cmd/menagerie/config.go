package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/menagerie/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration play would use, after the config search
(--config, ~/.menagerie/menagerie.yaml, ./configs/menagerie.yaml, built-in
defaults) and the --difficulty, --rounds and --fps flags.

Examples:
  menagerie config
  menagerie config --difficulty hard > ~/.menagerie/menagerie.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("Error", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fail("Error", err)
	}
	os.Stdout.Write(data) //nolint:errcheck // Best-effort write to stdout
}
