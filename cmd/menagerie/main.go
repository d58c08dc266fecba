// menagerie is a terminal arcade: steer a cannon along the bottom of the
// screen and shoot the critters crawling across it.
//
// Usage:
//
//	menagerie play       - Play rounds in the terminal
//	menagerie menu       - Pick a difficulty, then play
//	menagerie serve      - Start SSH server for remote play
//	menagerie critters   - List critter kinds
//	menagerie config     - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Config YAML (default: ~/.menagerie/menagerie.yaml, ./configs/menagerie.yaml)
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--log <path>         - Append a diagnostic log to this file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import critters to register them
	_ "github.com/vovakirdan/menagerie/internal/critters"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagRounds     int
	flagFPS        int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "menagerie",
	Short: "Menagerie - shoot the critters crawling across your terminal",
	Long: `Menagerie is a terminal arcade game. A cannon sits at the bottom of the
screen; inchworms and snakes crawl across it, turning back at the edges.
Shoot them before you run out of cannonballs.

Available commands:
  play      - Play rounds directly
  menu      - Difficulty picker, then play
  serve     - Start SSH server for remote play
  critters  - Show the critter kinds
  config    - Print the effective configuration

Examples:
  menagerie play
  menagerie play --display tcell --sound
  menagerie menu
  menagerie serve --ssh :2222
  menagerie config > my-menagerie.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Append a diagnostic log to this file")
	rootCmd.PersistentFlags().IntVar(&flagRounds, "rounds", 0, "Rounds per session (0 = from config)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Engine cycles per second for the Bubble Tea display (0 = from config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(crittersCmd)
	rootCmd.AddCommand(configCmd)
}
