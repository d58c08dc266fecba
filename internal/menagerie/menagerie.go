// Package menagerie is the simulation engine: it schedules critter moves and
// keystroke commands, composites every critter's rendering into one scene,
// resolves collisions and steers critters back from the display edges.
package menagerie

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/menagerie/internal/config"
	"github.com/vovakirdan/menagerie/internal/core"
	"github.com/vovakirdan/menagerie/internal/critters"
	"github.com/vovakirdan/menagerie/internal/registry"
)

// Menagerie runs rounds of the game on a display.
// It is single-threaded: Start, Step and Play must be called from one goroutine.
type Menagerie struct {
	display  core.Display
	engine   config.EngineConfig
	cast     []config.CritterConfig
	keys     *core.KeyMap
	log      *log.Logger
	listener Listener

	roster  roster
	buffers []*core.Frame // per-slot renderings of the current cycle, nil when dead
	events  Queue
	scene   *core.Frame
	still   int
	rows    int // display size the cannon was placed for
	cols    int

	alive  bool
	result Result
}

// Option configures a Menagerie.
type Option func(*Menagerie)

// WithLogger sets the diagnostic logger.
func WithLogger(l *log.Logger) Option {
	return func(m *Menagerie) {
		if l != nil {
			m.log = l
		}
	}
}

// WithListener sets the round event listener.
func WithListener(l Listener) Option {
	return func(m *Menagerie) {
		if l != nil {
			m.listener = l
		}
	}
}

// WithKeyMap overrides the key bindings taken from the configuration.
func WithKeyMap(km *core.KeyMap) Option {
	return func(m *Menagerie) {
		if km != nil {
			m.keys = km
		}
	}
}

// New creates an engine for display. The round starts with Start or Play.
func New(display core.Display, cfg config.Config, opts ...Option) *Menagerie {
	m := &Menagerie{
		display:  display,
		engine:   cfg.Engine,
		cast:     cfg.Critters,
		log:      log.New(io.Discard),
		listener: nopListener{},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.keys == nil {
		km, err := cfg.Keys.KeyMap()
		if err != nil {
			m.log.Warn("bad key bindings, using defaults", "err", err)
			km = core.DefaultKeyMap()
		}
		m.keys = km
	}
	return m
}

// SetPacerDelay changes the pacing delay of live pacers and of those spawned
// by the next Start.
func (m *Menagerie) SetPacerDelay(d time.Duration) {
	m.engine.PacerDelay = d
	for _, s := range m.roster {
		if p, ok := s.critter.(pacer); ok {
			p.SetDelay(d)
		}
	}
}

type pacer interface {
	SetDelay(d time.Duration)
}

// Start resets the round and shows the first scene.
func (m *Menagerie) Start() {
	m.reset()
	m.renderAll()
	m.compositeScene()
	m.log.Info("play", "critters", m.roster.count())
}

// Step runs one cycle: process a batch of events, render every critter,
// resolve collisions and edge turns, paint the scene, then queue pending
// keystrokes. It returns false once the round is over; a finished round
// stays finished until the next Start.
func (m *Menagerie) Step() bool {
	if !m.alive {
		return false
	}
	m.result.Cycles++

	m.processEvents()
	m.renderAll()
	m.processCollisions()
	m.doTurns()
	if !m.compositeScene() {
		m.end(EndStillness)
	}
	m.pollKeys()

	if !m.alive {
		m.log.Info("game over", "cycle", m.result.Cycles, "reason", m.result.Reason,
			"kills", m.result.Kills, "shots", m.result.Shots)
		m.log.Debug("unprocessed events", "events", m.events.Pending())
		m.listener.OnRoundOver(m.result)
	}
	return m.alive
}

// Play runs a whole round on a blocking display and returns its result.
func (m *Menagerie) Play() Result {
	m.Start()
	for m.Step() {
	}
	return m.result
}

// Alive reports whether the current round is still running.
func (m *Menagerie) Alive() bool {
	return m.alive
}

// Result returns the statistics of the current or last round.
func (m *Menagerie) Result() Result {
	return m.result
}

// Scene returns the last composited scene. The caller must not modify it.
func (m *Menagerie) Scene() *core.Frame {
	return m.scene
}

// ShotsLeft returns how many cannonballs may still be fired this round.
func (m *Menagerie) ShotsLeft() int {
	return max(0, m.engine.Cannonballs-m.result.Shots)
}

// Population returns the number of live critters, cannon included.
func (m *Menagerie) Population() int {
	return m.roster.count()
}

// reset kills every critter and places the opening cast: the cannon in slot 0
// near the bottom center, then the configured critters, each with a pending move.
func (m *Menagerie) reset() {
	clear(m.roster)
	clear(m.buffers)
	m.roster = m.roster[:0]
	m.buffers = m.buffers[:0]
	m.events.Clear()
	m.scene = nil
	m.still = 0
	m.alive = true
	m.result = Result{}

	rows, cols := m.display.Size()
	m.rows, m.cols = rows, cols
	m.spawn(critters.NewCannon(rows-2, cols/2), false)

	for _, cc := range m.cast {
		c, err := registry.Create(cc.Kind, cc.Spawn(m.engine.PacerDelay))
		if err != nil {
			m.log.Warn("skipping critter", "kind", cc.Kind, "err", err)
			continue
		}
		m.events.Enqueue(MoveEvent(m.spawn(c, false)))
	}
}

func (m *Menagerie) spawn(c core.Critter, projectile bool) int {
	i := m.roster.add(c, projectile)
	m.buffers = append(m.buffers, nil)
	return i
}

// kill tombstones slot i. Its buffer is dropped so it no longer shows.
func (m *Menagerie) kill(i int) {
	if !m.roster.live(i) {
		return
	}
	m.roster[i].critter = nil
	m.buffers[i] = nil
	if i == 0 {
		m.end(EndCannonLost)
	}
}

// end stops the round. The first reason sticks.
func (m *Menagerie) end(reason EndReason) {
	if m.alive {
		m.alive = false
		m.result.Reason = reason
	}
}
