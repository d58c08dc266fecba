package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/menagerie/internal/menagerie"
	"github.com/vovakirdan/menagerie/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty, then play",
	Long: `Start menagerie in interactive menu mode.

Use arrow keys or j/k to pick a difficulty, Enter to play.
After the last round of a session, Enter returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select difficulty
  Q            - Quit

Examples:
  menagerie menu
  menagerie menu --rounds 5 --fps 20`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("Error", err)
	}

	logger, closer, err := openLog()
	if err != nil {
		fail("Error", err)
	}
	defer closer.Close()

	width, height := terminalSize()
	if err := tui.RunSession(cfg, width, height, menagerie.WithLogger(logger)); err != nil {
		closer.Close()
		fail("Error running menu", err)
	}
}
