package menagerie

// processCollisions kills both critters of every pair whose renderings share
// an opaque cell. Pairs are judged on this cycle's renderings, so a critter
// killed by one pair still takes down anything else it overlaps.
func (m *Menagerie) processCollisions() {
	n := len(m.buffers)
	doomed := make([]bool, n)
	scored := make([]bool, n)

	for i := 0; i < n-1; i++ {
		if m.buffers[i] == nil {
			continue
		}
		for j := i + 1; j < n; j++ {
			if m.buffers[j] == nil || !m.overlap(i, j) {
				continue
			}
			m.log.Debug("collision", "cycle", m.result.Cycles,
				"a", m.roster[i].critter, "b", m.roster[j].critter)
			doomed[i], doomed[j] = true, true

			// A projectile hitting a critter scores that critter
			pi, pj := m.roster[i].projectile, m.roster[j].projectile
			if pi && !pj {
				scored[j] = true
			} else if pj && !pi {
				scored[i] = true
			}
		}
	}

	for i := range doomed {
		if !doomed[i] {
			continue
		}
		c := m.roster[i].critter
		if scored[i] && i != 0 {
			m.result.Kills++
		}
		m.kill(i)
		m.listener.OnKill(c)
	}
}

// overlap reports whether the renderings of slots i and j share an opaque cell.
func (m *Menagerie) overlap(i, j int) bool {
	a, b := m.buffers[i], m.buffers[j]
	rows, cols := min(a.Rows(), b.Rows()), min(a.Cols(), b.Cols())
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if a.Opaque(r, c) && b.Opaque(r, c) {
				return true
			}
		}
	}
	return false
}
