package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/menagerie/internal/audio"
	"github.com/vovakirdan/menagerie/internal/config"
	"github.com/vovakirdan/menagerie/internal/core"
	"github.com/vovakirdan/menagerie/internal/menagerie"
	"github.com/vovakirdan/menagerie/internal/platform/cell"
	"github.com/vovakirdan/menagerie/internal/platform/tui"
)

var (
	flagDisplay string
	flagSound   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session of rounds",
	Long: `Play a session of menagerie rounds in this terminal.

Controls (defaults, rebindable under keys: in the config):
  i/Space      - Fire a cannonball
  h            - Move the cannon
  g            - Reverse the cannon
  Left/Right   - Face and move
  q            - End the round

A round ends when you press q, when your cannon is hit, or when nothing
on screen has moved for a while.

Displays:
  tui    - Bubble Tea, paced by --fps (default)
  tcell  - direct terminal drawing, paced by the pacer critter

Examples:
  menagerie play
  menagerie play --difficulty hard --rounds 5
  menagerie play --display tcell --sound
  menagerie play --log ./menagerie.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDisplay, "display", "tui", "Display backend: tui or tcell")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("Error", err)
	}

	logger, closer, err := openLog()
	if err != nil {
		fail("Error", err)
	}
	defer closer.Close()

	opts := []menagerie.Option{menagerie.WithLogger(logger)}
	if flagSound {
		player, audioErr := audio.NewPlayer()
		if audioErr != nil {
			// Non-fatal, game can run without sound
			logger.Warn("audio initialization failed", "err", audioErr)
		}
		defer player.Close()
		opts = append(opts, menagerie.WithListener(player.Listener()))
	}

	var results []menagerie.Result
	switch flagDisplay {
	case "tui":
		width, height := terminalSize()
		results, err = tui.Run(cfg, width, height, opts...)
	case "tcell":
		results, err = playCell(cfg, logger, opts)
	default:
		err = fmt.Errorf("unknown display %q (want tui or tcell)", flagDisplay)
	}
	if err != nil {
		closer.Close()
		fail("Error running game", err)
	}

	printResults(results)
}

// playCell plays the rounds on a tcell screen, one blocking Play per round.
func playCell(cfg config.Config, logger *log.Logger, opts []menagerie.Option) ([]menagerie.Result, error) {
	d, err := cell.Open()
	if err != nil {
		return nil, fmt.Errorf("cannot open terminal: %w", err)
	}
	defer d.Close()

	d.SetInterruptKey(quitKey(cfg))

	engine := menagerie.New(d, cfg, opts...)
	difficulty := config.NewDifficultyManager(cfg.Difficulty)

	var results []menagerie.Result
	for round := 0; round < cfg.Engine.Rounds; round++ {
		d.ClearText()
		d.SetText(d.Rows(), 0, fmt.Sprintf("Round %d/%d  Cannonballs %d",
			round+1, cfg.Engine.Rounds, cfg.Engine.Cannonballs))

		engine.SetPacerDelay(difficulty.PacerDelay(cfg.Engine.PacerDelay, round))
		res := engine.Play()
		results = append(results, res)
		logger.Info("round over", "round", round+1, "result", res)

		if d.Interrupted() || round == cfg.Engine.Rounds-1 {
			break
		}

		banner := fmt.Sprintf(" ROUND %d OVER: %s  (any key) ", round+1, res.Reason)
		d.SetText(d.Rows()/2, max(0, (d.Cols()-len(banner))/2), banner)
		d.WaitKey()
		if d.Interrupted() {
			break
		}
	}
	return results, nil
}

// quitKey returns the first key bound to quit.
func quitKey(cfg config.Config) int {
	for _, name := range cfg.Keys.Quit {
		if code, err := core.ParseKey(name); err == nil {
			return code
		}
	}
	return core.DefaultBindings[core.ActionQuit][0]
}

// printResults writes the session summary to stdout.
func printResults(results []menagerie.Result) {
	if len(results) == 0 {
		return
	}

	fmt.Println()
	fmt.Printf("  %-6s  %-12s  %6s  %5s  %5s\n", "Round", "Ended by", "Cycles", "Kills", "Shots")
	fmt.Printf("  %-6s  %-12s  %6s  %5s  %5s\n", "-----", "--------", "------", "-----", "-----")

	var kills, shots int
	for i, r := range results {
		fmt.Printf("  %-6d  %-12s  %6d  %5d  %5d\n", i+1, r.Reason, r.Cycles, r.Kills, r.Shots)
		kills += r.Kills
		shots += r.Shots
	}

	fmt.Println()
	fmt.Printf("  %d critters shot with %d cannonballs.\n", kills, shots)
	fmt.Println()
	os.Stdout.Sync() //nolint:errcheck // Best-effort flush
}
