package menagerie

import "github.com/vovakirdan/menagerie/internal/core"

// renderAll asks every live critter for a fresh rendering.
func (m *Menagerie) renderAll() {
	rows, cols := m.display.Size()
	if rows != m.rows || cols != m.cols {
		m.refitCannon(rows, cols)
	}
	for i, s := range m.roster {
		if s.critter == nil {
			m.buffers[i] = nil
			continue
		}
		m.buffers[i] = m.blank(m.buffers[i], rows, cols)
		s.critter.Render(m.buffers[i])
	}
}

// blank returns f cleared to transparent and sized to rows x cols,
// allocating when f is nil.
func (m *Menagerie) blank(f *core.Frame, rows, cols int) *core.Frame {
	if f == nil {
		return mustFrame(rows, cols, core.Transparent)
	}
	if f.Rows() != rows || f.Cols() != cols {
		if err := f.Resize(rows, cols, core.Transparent); err != nil {
			panic(err)
		}
	}
	f.Fill(core.Transparent)
	return f
}

// compositeScene overlays the live renderings in roster order on a black
// background and paints the result. It reports whether the round may go on:
// false once the scene has stayed unchanged for more than NoMovement cycles.
func (m *Menagerie) compositeScene() bool {
	rows, cols := m.display.Size()
	scene := mustFrame(rows, cols, core.Black)
	for _, buf := range m.buffers {
		if buf != nil {
			scene.Overlay(buf)
		}
	}
	m.display.Paint(scene)

	if m.scene != nil && scene.Equal(m.scene) {
		m.still++
		m.log.Debug("no movement", "cycle", m.result.Cycles, "still", m.still)
	} else {
		m.still = 0
	}
	m.scene = scene
	return m.still <= m.engine.NoMovement
}

// mustFrame allocates a frame whose size comes from the display; a failure
// means the display reported a negative size.
func mustFrame(rows, cols int, fill core.RGB) *core.Frame {
	f, err := core.NewFrame(rows, cols, fill)
	if err != nil {
		panic(err)
	}
	return f
}
