package menagerie

import (
	"github.com/vovakirdan/menagerie/internal/core"
	"github.com/vovakirdan/menagerie/internal/critters"
)

// cannonSlot is the roster index of the user's cannon.
const cannonSlot = 0

// processEvents handles up to EventCycle queued events, stopping early when
// a command ends the round.
func (m *Menagerie) processEvents() {
	for i := 0; m.alive && i < m.engine.EventCycle; i++ {
		e, ok := m.events.Dequeue()
		if !ok {
			return
		}
		m.processEvent(e)
	}
}

func (m *Menagerie) processEvent(e Event) {
	switch e.Kind {
	case EventMove:
		// Moves for dead critters are dropped, which ends their schedule
		if e.Data == cannonSlot || !m.roster.live(e.Data) {
			return
		}
		m.roster[e.Data].critter.Move()
		m.events.Enqueue(e)
	case EventCommand:
		m.command(e.Data)
	}
}

// command carries out one keystroke.
func (m *Menagerie) command(key int) {
	action := m.keys.Lookup(key)
	m.log.Debug("command", "cycle", m.result.Cycles, "key", core.KeyName(key), "action", action)

	if action == core.ActionQuit {
		m.end(EndQuit)
		return
	}

	cannon := m.roster.get(cannonSlot)
	if cannon == nil {
		return
	}
	switch action {
	case core.ActionMove:
		m.moveCannon(cannon)
	case core.ActionReverse:
		cannon.Reverse()
	case core.ActionFire:
		m.shoot(cannon)
	case core.ActionLeft:
		face(cannon, core.West)
		m.moveCannon(cannon)
	case core.ActionRight:
		face(cannon, core.East)
		m.moveCannon(cannon)
	default:
		m.log.Debug("unknown key", "key", core.KeyName(key))
	}
}

// moveCannon moves the cannon one step unless that would take it entirely
// off the display.
func (m *Menagerie) moveCannon(cannon core.Critter) {
	cannon.Move()

	rows, cols := m.display.Size()
	probe := mustFrame(rows, cols, core.Transparent)
	cannon.Render(probe)
	if probe.IsBlank() {
		cannon.Reverse()
		cannon.Move()
		cannon.Reverse()
	}
}

type placer interface {
	Place(row, col int)
}

// refitCannon puts the cannon back on the bottom rows after the display
// changed size, with its barrel inside the new width.
func (m *Menagerie) refitCannon(rows, cols int) {
	m.rows, m.cols = rows, cols
	cannon := m.roster.get(cannonSlot)
	p, ok := cannon.(placer)
	if !ok {
		return
	}
	p.Place(rows-2, core.Clamp(cannon.Column(), 0, max(cols-1, 0)))
	m.log.Debug("display resized", "rows", rows, "cols", cols, "cannon", cannon)
}

// shoot fires a cannonball from just above the cannon's barrel. Once the
// round's supply is used up the request is ignored.
func (m *Menagerie) shoot(cannon core.Critter) {
	if m.result.Shots >= m.engine.Cannonballs {
		m.log.Debug("out of cannonballs", "cycle", m.result.Cycles)
		return
	}
	rows := m.display.Rows()
	ball := critters.NewCannonball(rows-4, cannon.Column())
	m.events.Enqueue(MoveEvent(m.spawn(ball, true)))
	m.result.Shots++
	m.listener.OnFire()
}

// pollKeys queues every pending keystroke as a command.
func (m *Menagerie) pollKeys() {
	for m.display.HasKey() {
		key, err := m.display.Key()
		if err != nil {
			return
		}
		m.log.Debug("keystroke", "cycle", m.result.Cycles, "key", core.KeyName(key))
		m.events.Enqueue(CommandEvent(key))
	}
}

type facer interface {
	Face(d core.Direction)
}

// face points c toward d, by Face when available and by reversing otherwise.
func face(c core.Critter, d core.Direction) {
	if f, ok := c.(facer); ok {
		f.Face(d)
		return
	}
	if c.Heading() != d {
		c.Reverse()
	}
}
