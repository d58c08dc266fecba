// Package core provides fundamental types and utilities for the menagerie.
// It contains no external dependencies (especially no Bubble Tea) to keep
// critter and engine logic pure and testable.
package core

// Direction is the way a critter's next Move will take it.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// String returns the one-letter heading used in log lines.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	case East:
		return "E"
	case West:
		return "W"
	default:
		return "?"
	}
}

// Delta returns the (row, col) unit step for the heading.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	case West:
		return 0, -1
	}
	return 0, 0
}

// Reversed returns the opposite heading.
func (d Direction) Reversed() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Rotated returns the heading after a quarter turn onto the other axis:
// East→South, West→North, North→East, South→West.
func (d Direction) Rotated() Direction {
	switch d {
	case East:
		return South
	case West:
		return North
	case North:
		return East
	default:
		return West
	}
}

// Horizontal reports whether the heading is East or West.
func (d Direction) Horizontal() bool {
	return d == East || d == West
}

// Point is a cell position on the display.
type Point struct {
	Row, Col int
}

// Add returns p moved n steps along d.
func (p Point) Add(d Direction, n int) Point {
	dr, dc := d.Delta()
	return Point{Row: p.Row + dr*n, Col: p.Col + dc*n}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
