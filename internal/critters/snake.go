package critters

import (
	"fmt"

	"github.com/vovakirdan/menagerie/internal/core"
	"github.com/vovakirdan/menagerie/internal/registry"
)

// DefaultSnakeLength is used when a snake is spawned without a length.
const DefaultSnakeLength = 6

// Snake slithers one cell per move with its body following the head.
type Snake struct {
	body    []core.Point // head at index 0
	heading core.Direction
}

// NewSnake creates an East-bound snake with its head at (row, col) and the
// body stretched out to the West.
func NewSnake(row, col, length int) *Snake {
	if length <= 0 {
		length = DefaultSnakeLength
	}
	body := make([]core.Point, length)
	for i := range body {
		body[i] = core.Point{Row: row, Col: col - i}
	}
	return &Snake{body: body, heading: core.East}
}

func init() {
	registry.Register(KindSnake, "multi-segment snake, one cell per move", func(s registry.Spawn) core.Critter {
		return NewSnake(s.Row, s.Col, s.Length)
	})
}

// Move advances the head one cell; every segment takes the place of the one
// ahead of it.
func (s *Snake) Move() {
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = s.body[0].Add(s.heading, 1)
}

// Reverse turns the snake around: the tail becomes the head so the body
// stays contiguous.
func (s *Snake) Reverse() {
	for i, j := 0, len(s.body)-1; i < j; i, j = i+1, j-1 {
		s.body[i], s.body[j] = s.body[j], s.body[i]
	}
	s.heading = s.heading.Reversed()
}

// Rotate turns East→South, West→North, North→East, South→West.
func (s *Snake) Rotate() {
	s.heading = s.heading.Rotated()
}

// Render paints a yellow head and a green and cyan banded body.
// Later segments never cover earlier ones.
func (s *Snake) Render(dst *core.Frame) {
	for i := len(s.body) - 1; i >= 0; i-- {
		color := core.Green
		switch {
		case i == 0:
			color = core.Yellow
		case i%2 == 0:
			color = core.Cyan
		}
		dst.Paint(s.body[i].Row, s.body[i].Col, color)
	}
}

// Heading returns the direction of travel.
func (s *Snake) Heading() core.Direction {
	return s.heading
}

// Column returns the head column.
func (s *Snake) Column() int {
	return s.body[0].Col
}

// Body returns a copy of the segment positions, head first.
func (s *Snake) Body() []core.Point {
	out := make([]core.Point, len(s.body))
	copy(out, s.body)
	return out
}

// TurnSteps keeps the return lane one row away from the outbound lane.
func (s *Snake) TurnSteps() int {
	return 1
}

func (s *Snake) String() string {
	head := s.body[0]
	return fmt.Sprintf("Snake(%d,%d,len=%d,%v)", head.Row, head.Col, len(s.body), s.heading)
}
