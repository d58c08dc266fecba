package core

// Critter is a movable, renderable game entity.
// Implementations own their model completely; the engine only drives them
// through this interface and never inspects their internals.
type Critter interface {
	// Move advances the critter one step by its own kinematic rule.
	// It adjusts the model only, never the view.
	Move()

	// Reverse flips the direction of future movement. May be a no-op.
	Reverse()

	// Rotate switches the movement axis, e.g. horizontal to vertical.
	// May be a no-op.
	Rotate()

	// Render paints the critter onto dst, which is transparent and sized to
	// the display. Only cells representing the critter may be written.
	// Painting nothing means the critter is currently off-screen.
	Render(dst *Frame)

	// Heading returns where the next Move will take the critter
	// (East for critters that never move).
	Heading() Direction

	// Column returns the critter's current column on the display.
	Column() int

	// String describes the critter's state for the diagnostic log.
	String() string
}

// TurnCalibrator is implemented by critters whose shape needs a different
// number of moves on the rotated axis during an edge turn.
type TurnCalibrator interface {
	TurnSteps() int
}

// DefaultTurnSteps is the number of moves made on the rotated axis when a
// critter does not implement TurnCalibrator.
const DefaultTurnSteps = 2

// TurnSteps returns the calibrated turn step count for c.
func TurnSteps(c Critter) int {
	if tc, ok := c.(TurnCalibrator); ok {
		if n := tc.TurnSteps(); n > 0 {
			return n
		}
	}
	return DefaultTurnSteps
}
