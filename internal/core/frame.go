package core

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOutOfRange is returned when a cell coordinate lies outside a frame.
	ErrOutOfRange = errors.New("no cell at those coordinates")

	// ErrNegativeSize is returned when a frame dimension is negative.
	ErrNegativeSize = errors.New("frame dimensions must be non-negative")
)

// Frame is a 2D grid of color cells for compositing critter renderings.
// It decouples critter drawing from the terminal: critters paint into a
// transparent frame, the engine overlays frames into one scene and hands
// that scene to the display.
type Frame struct {
	rows  int
	cols  int
	cells []RGB // row-major, len == rows*cols
}

// NewFrame creates a frame with every cell set to fill.
func NewFrame(rows, cols int, fill RGB) (*Frame, error) {
	f := &Frame{}
	if err := f.Resize(rows, cols, fill); err != nil {
		return nil, err
	}
	return f, nil
}

// MustFrame is like NewFrame but panics on a negative dimension.
// Intended for sizes taken from a display or a constant.
func MustFrame(rows, cols int, fill RGB) *Frame {
	f, err := NewFrame(rows, cols, fill)
	if err != nil {
		panic(err)
	}
	return f
}

// Rows returns the number of rows.
func (f *Frame) Rows() int {
	return f.rows
}

// Cols returns the number of columns.
func (f *Frame) Cols() int {
	return f.cols
}

// Size returns the frame dimensions.
func (f *Frame) Size() (rows, cols int) {
	return f.rows, f.cols
}

// Resize changes the frame dimensions, preserving cells where possible.
// Cells inside both the old and the new bounds keep their value; every
// other cell gets fill.
func (f *Frame) Resize(rows, cols int, fill RGB) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("resize %dx%d: %w", rows, cols, ErrNegativeSize)
	}

	old := f.cells
	oldRows, oldCols := f.rows, f.cols

	cells := make([]RGB, rows*cols)
	copyRows := min(oldRows, rows)
	copyCols := min(oldCols, cols)
	for r := 0; r < rows; r++ {
		row := cells[r*cols : (r+1)*cols]
		n := 0
		if r < copyRows {
			n = copy(row[:copyCols], old[r*oldCols:r*oldCols+copyCols])
		}
		for c := n; c < cols; c++ {
			row[c] = fill
		}
	}

	f.rows = rows
	f.cols = cols
	f.cells = cells
	return nil
}

// Get returns the cell at (row, col).
func (f *Frame) Get(row, col int) (RGB, error) {
	if !f.inBounds(row, col) {
		return RGB{}, fmt.Errorf("get (%d,%d) in %dx%d: %w", row, col, f.rows, f.cols, ErrOutOfRange)
	}
	return f.cells[row*f.cols+col], nil
}

// Cell returns the cell at (row, col).
// Out-of-bounds coordinates read as transparent.
func (f *Frame) Cell(row, col int) RGB {
	if !f.inBounds(row, col) {
		return Transparent
	}
	return f.cells[row*f.cols+col]
}

// Opaque reports whether (row, col) holds a non-transparent cell.
func (f *Frame) Opaque(row, col int) bool {
	return f.inBounds(row, col) && !f.cells[row*f.cols+col].Transparent
}

// Paint sets a single cell. Out-of-bounds coordinates are silently ignored.
func (f *Frame) Paint(row, col int, color RGB) {
	f.PaintRect(row, col, row, col, color)
}

// PaintRect sets every cell in the inclusive rectangle from (r0, c0) to
// (r1, c1). The rectangle is clamped to the frame; a rectangle that is empty
// after clamping paints nothing.
func (f *Frame) PaintRect(r0, c0, r1, c1 int, color RGB) {
	r0 = max(0, r0)
	c0 = max(0, c0)
	r1 = min(f.rows-1, r1)
	c1 = min(f.cols-1, c1)
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			f.cells[r*f.cols+c] = color
		}
	}
}

// Fill sets every cell to color.
func (f *Frame) Fill(color RGB) {
	for i := range f.cells {
		f.cells[i] = color
	}
}

// Overlay copies the non-transparent cells of other onto f.
// Only the sub-rectangle valid in both frames is touched; the dimensions of f
// never change.
func (f *Frame) Overlay(other *Frame) {
	rows := min(f.rows, other.rows)
	cols := min(f.cols, other.cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if cell := other.cells[r*other.cols+c]; !cell.Transparent {
				f.cells[r*f.cols+c] = cell
			}
		}
	}
}

// Plus returns a copy of f with other overlaid on it.
func (f *Frame) Plus(other *Frame) *Frame {
	result := f.Clone()
	result.Overlay(other)
	return result
}

// Clone returns an independent copy of f.
func (f *Frame) Clone() *Frame {
	cells := make([]RGB, len(f.cells))
	copy(cells, f.cells)
	return &Frame{rows: f.rows, cols: f.cols, cells: cells}
}

// Equal reports whether both frames have the same dimensions and cells.
func (f *Frame) Equal(other *Frame) bool {
	if other == nil || f.rows != other.rows || f.cols != other.cols {
		return false
	}
	for i, cell := range f.cells {
		if !cell.Equal(other.cells[i]) {
			return false
		}
	}
	return true
}

// IsBlank reports whether every cell is transparent.
func (f *Frame) IsBlank() bool {
	for _, cell := range f.cells {
		if !cell.Transparent {
			return false
		}
	}
	return true
}

// String dumps the frame one row per line, for the diagnostic log.
func (f *Frame) String() string {
	var sb strings.Builder
	for r := 0; r < f.rows; r++ {
		fmt.Fprintf(&sb, "\t[%d]: ", r)
		for c := 0; c < f.cols; c++ {
			sb.WriteString(f.cells[r*f.cols+c].String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (f *Frame) inBounds(row, col int) bool {
	return row >= 0 && row < f.rows && col >= 0 && col < f.cols
}
