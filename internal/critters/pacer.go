package critters

import (
	"fmt"
	"time"

	"github.com/vovakirdan/menagerie/internal/core"
	"github.com/vovakirdan/menagerie/internal/registry"
)

// Pacer is the time keeper of the menagerie. It sits as one blue cell in the
// lower-left corner and never moves, but its Move blocks until delay has
// passed since the previous Move returned. It slows the whole loop down.
type Pacer struct {
	delay time.Duration
	last  time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewPacer creates a pacer with the given delay. A delay around 5ms is a
// comfortable pace; zero disables the wait.
func NewPacer(delay time.Duration) *Pacer {
	return &Pacer{
		delay: delay,
		last:  time.Now(),
		now:   time.Now,
		sleep: time.Sleep,
	}
}

func init() {
	registry.Register(KindPacer, "frame-rate limiter, one blue cell", func(s registry.Spawn) core.Critter {
		return NewPacer(s.Delay)
	})
}

// Move sleeps for whatever is left of the delay.
func (p *Pacer) Move() {
	if wait := p.delay - p.now().Sub(p.last); wait > 0 {
		p.sleep(wait)
	}
	p.last = p.now()
}

// Reverse does nothing.
func (p *Pacer) Reverse() {}

// Rotate does nothing.
func (p *Pacer) Rotate() {}

// Render paints the bottom-left cell blue.
func (p *Pacer) Render(dst *core.Frame) {
	dst.Paint(dst.Rows()-1, 0, core.Blue)
}

// Heading is always East.
func (p *Pacer) Heading() core.Direction {
	return core.East
}

// Column is always 0.
func (p *Pacer) Column() int {
	return 0
}

// SetDelay changes the pacing delay.
func (p *Pacer) SetDelay(d time.Duration) {
	p.delay = d
}

func (p *Pacer) String() string {
	return fmt.Sprintf("Pacer(%v)", p.delay)
}
