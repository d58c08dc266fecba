package menagerie

import (
	"fmt"

	"github.com/vovakirdan/menagerie/internal/core"
)

// EndReason tells why a round stopped.
type EndReason string

const (
	// EndNone is the reason of a round still running.
	EndNone EndReason = ""
	// EndQuit means the user pressed the quit key.
	EndQuit EndReason = "quit"
	// EndStillness means the scene stopped changing for too many cycles.
	EndStillness EndReason = "stillness"
	// EndCannonLost means the cannon was hit.
	EndCannonLost EndReason = "cannon lost"
)

// Result summarizes a round.
type Result struct {
	Reason EndReason
	Cycles int // completed engine cycles
	Kills  int // critters shot down
	Shots  int // cannonballs fired
}

func (r Result) String() string {
	return fmt.Sprintf("%s after %d cycles: %d kills, %d shots", r.Reason, r.Cycles, r.Kills, r.Shots)
}

// Listener is notified of notable round events. Callbacks run on the engine's
// goroutine and must not block for long.
type Listener interface {
	OnFire()
	OnKill(c core.Critter)
	OnRoundOver(r Result)
}

type nopListener struct{}

func (nopListener) OnFire() {}
func (nopListener) OnKill(core.Critter) {}
func (nopListener) OnRoundOver(Result) {}
