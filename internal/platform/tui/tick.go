// Package tui runs the menagerie inside Bubble Tea: a display adapter fed by
// key messages, a tick-driven round loop, the difficulty menu and the SSH
// server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one engine cycle.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after one frame at tickRate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 1
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
