package critters

import (
	"fmt"

	"github.com/vovakirdan/menagerie/internal/core"
	"github.com/vovakirdan/menagerie/internal/registry"
)

// Cannonball flies straight up from where it was fired.
type Cannonball struct {
	row, col int
}

// NewCannonball creates a cannonball launched from (row, col).
func NewCannonball(row, col int) *Cannonball {
	return &Cannonball{row: row, col: col}
}

func init() {
	registry.Register(KindCannonball, "projectile fired by the cannon", func(s registry.Spawn) core.Critter {
		return NewCannonball(s.Row, s.Col)
	})
}

// Move raises the ball one row.
func (b *Cannonball) Move() {
	b.row--
}

// Reverse does nothing.
func (b *Cannonball) Reverse() {}

// Rotate does nothing.
func (b *Cannonball) Rotate() {}

// Render paints one magenta cell just above the ball's position.
func (b *Cannonball) Render(dst *core.Frame) {
	dst.Paint(b.row-1, b.col, core.Magenta)
}

// Heading is always North.
func (b *Cannonball) Heading() core.Direction {
	return core.North
}

// Column returns the column the ball was fired in.
func (b *Cannonball) Column() int {
	return b.col
}

func (b *Cannonball) String() string {
	return fmt.Sprintf("Cannonball(%d,%d)", b.row, b.col)
}
