package menagerie

import "github.com/vovakirdan/menagerie/internal/core"

// doTurns brings back critters that rendered nothing this cycle. The critter
// turns onto the other axis, takes its calibrated steps there, turns back the
// opposite way and then moves until it shows up again. East-bound critters
// end up heading West and vice versa. A critter still invisible after
// TurnRevival moves is killed. The cannon is kept on screen by its commands
// and by refitCannon, so it never turns.
func (m *Menagerie) doTurns() {
	rows, cols := m.display.Size()
	for i, s := range m.roster {
		c := s.critter
		if i == cannonSlot || c == nil || !m.buffers[i].IsBlank() {
			continue
		}

		eastbound := c.Heading() == core.East
		c.Rotate()
		if !eastbound {
			c.Reverse()
		}
		for range core.TurnSteps(c) {
			c.Move()
		}
		c.Rotate()
		if !eastbound {
			c.Reverse()
		}

		recovered := false
		for range m.engine.TurnRevival {
			c.Move()
			buf := m.blank(m.buffers[i], rows, cols)
			c.Render(buf)
			m.buffers[i] = buf
			if !buf.IsBlank() {
				recovered = true
				break
			}
		}
		if !recovered {
			m.log.Warn("lost after turn", "cycle", m.result.Cycles, "critter", c)
			m.kill(i)
		}
	}
}
