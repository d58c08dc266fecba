package critters

import (
	"fmt"

	"github.com/vovakirdan/menagerie/internal/core"
	"github.com/vovakirdan/menagerie/internal/registry"
)

// Posture is the movement state of an InchWorm.
type Posture int

const (
	// Straight has every body part in a line behind the head.
	Straight Posture = iota
	// Bunched lifts the midsection off the line and pulls the tail forward.
	Bunched
)

func (p Posture) String() string {
	if p == Bunched {
		return "BUNCHED"
	}
	return "STRAIGHT"
}

// inchStep is how far the head travels when the worm stretches out.
const inchStep = 2

// segment is a body cell relative to the head: back counts cells behind the
// head along the heading, hump counts cells off the line.
type segment struct {
	back, hump int
	color      core.RGB
}

var straightBody = []segment{
	{0, 0, core.White},
	{1, 0, core.Green},
	{2, 0, core.White},
	{3, 0, core.Green},
	{4, 0, core.White},
	{5, 0, core.Green},
	{6, 0, core.White},
}

var bunchedBody = []segment{
	{0, 0, core.White},
	{1, 0, core.Green},
	{1, 1, core.White},
	{2, 1, core.Green},
	{3, 1, core.White},
	{3, 0, core.Green},
	{4, 0, core.White},
}

// InchWorm is a seven-cell green and white worm whose midsection oscillates
// on each move: one move pulls the hind quarters forward, the next stretches
// the head forward by two cells.
type InchWorm struct {
	posture  Posture
	heading  core.Direction
	row, col int // head
}

// NewInchWorm creates an East-bound, bunched worm with its head at (row, col).
func NewInchWorm(row, col int) *InchWorm {
	return &InchWorm{posture: Bunched, heading: core.East, row: row, col: col}
}

func init() {
	registry.Register(KindInchWorm, "two-posture worm, inches along by 2", func(s registry.Spawn) core.Critter {
		return NewInchWorm(s.Row, s.Col)
	})
}

// Move alternates posture. Stretching out from bunched advances the head.
func (w *InchWorm) Move() {
	if w.posture == Straight {
		w.posture = Bunched
		return
	}
	w.posture = Straight
	dr, dc := w.heading.Delta()
	w.row += dr * inchStep
	w.col += dc * inchStep
}

// Reverse flips East/West and North/South.
func (w *InchWorm) Reverse() {
	w.heading = w.heading.Reversed()
}

// Rotate turns East→South, West→North, North→East, South→West.
func (w *InchWorm) Rotate() {
	w.heading = w.heading.Rotated()
}

// Render paints the body for the current posture behind the head.
func (w *InchWorm) Render(dst *core.Frame) {
	body := straightBody
	if w.posture == Bunched {
		body = bunchedBody
	}
	for _, s := range body {
		r, c := w.place(s)
		dst.Paint(r, c, s.color)
	}
}

// place maps a body segment onto the display for the current heading.
// The hump rises above horizontal worms and sits left of vertical ones.
func (w *InchWorm) place(s segment) (row, col int) {
	switch w.heading {
	case core.East:
		return w.row - s.hump, w.col - s.back
	case core.West:
		return w.row - s.hump, w.col + s.back
	case core.North:
		return w.row + s.back, w.col - s.hump
	default:
		return w.row - s.back, w.col - s.hump
	}
}

// Heading returns the direction of travel.
func (w *InchWorm) Heading() core.Direction {
	return w.heading
}

// Column returns the head column.
func (w *InchWorm) Column() int {
	return w.col
}

// Row returns the head row.
func (w *InchWorm) Row() int {
	return w.row
}

// Posture returns the current posture.
func (w *InchWorm) Posture() Posture {
	return w.posture
}

func (w *InchWorm) String() string {
	return fmt.Sprintf("InchWorm(%d,%d,%v,%v)", w.row, w.col, w.posture, w.heading)
}
