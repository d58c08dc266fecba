package core

import "errors"

// ErrNoKey is returned by Display.Key when no keystroke is pending on a
// non-blocking display.
var ErrNoKey = errors.New("no key pressed")

// Display is a cell-based color display with keyboard input.
// The engine consumes it; terminal backends implement it.
type Display interface {
	// Size returns the display dimensions in cells.
	Size() (rows, cols int)

	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// Paint shows the non-transparent cells of the frame, each matched to
	// the closest color the display supports.
	Paint(f *Frame)

	// SetText writes text starting at (row, col).
	SetText(row, col int, text string)

	// HasKey reports whether Key would return immediately.
	HasKey() bool

	// Key returns the next pending keystroke.
	Key() (int, error)

	// PushbackKey makes code the next key returned by Key.
	PushbackKey(code int)

	// Colors returns the palette the display can show.
	Colors() []RGB
}
