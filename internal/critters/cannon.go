// Package critters implements the menagerie's critter kinds.
// Each kind registers itself with the registry in init(); the engine only
// ever sees them through core.Critter.
package critters

import (
	"fmt"

	"github.com/vovakirdan/menagerie/internal/core"
	"github.com/vovakirdan/menagerie/internal/registry"
)

// Kind names used in configuration and by the engine.
const (
	KindCannon     = "cannon"
	KindCannonball = "cannonball"
	KindInchWorm   = "inchworm"
	KindSnake      = "snake"
	KindPacer      = "pacer"
)

// Cannon is the user-controlled shooter along the bottom of the display.
// It only moves East or West and Rotate does nothing. It renders as a red
// little pyramid whose top is the barrel, always pointing North.
type Cannon struct {
	heading  core.Direction
	row, col int // base center
}

// NewCannon creates an East-facing cannon with its base centered at (row, col).
func NewCannon(row, col int) *Cannon {
	return &Cannon{heading: core.East, row: row, col: col}
}

func init() {
	registry.Register(KindCannon, "user-controlled shooter", func(s registry.Spawn) core.Critter {
		return NewCannon(s.Row, s.Col)
	})
}

// Move slides the cannon one column along its heading.
func (c *Cannon) Move() {
	_, dc := c.heading.Delta()
	c.col += dc
}

// Reverse flips between East and West.
func (c *Cannon) Reverse() {
	c.heading = c.heading.Reversed()
}

// Rotate does nothing: the cannon stays on the bottom row.
func (c *Cannon) Rotate() {}

// Render paints a three-cell base with the barrel above its center.
func (c *Cannon) Render(dst *core.Frame) {
	dst.PaintRect(c.row, c.col-1, c.row, c.col+1, core.Red)
	dst.Paint(c.row-1, c.col, core.Red)
}

// Heading returns East or West.
func (c *Cannon) Heading() core.Direction {
	return c.heading
}

// Column returns the barrel column.
func (c *Cannon) Column() int {
	return c.col
}

// Place moves the base center to (row, col), keeping the heading.
func (c *Cannon) Place(row, col int) {
	c.row, c.col = row, col
}

// Face turns the cannon toward d if d is horizontal.
func (c *Cannon) Face(d core.Direction) {
	if d.Horizontal() {
		c.heading = d
	}
}

func (c *Cannon) String() string {
	return fmt.Sprintf("Cannon(%d,%d,%v)", c.row, c.col, c.heading)
}
