package tui

import (
	"sync"

	"github.com/vovakirdan/menagerie/internal/core"
)

// textSpan is a line of text laid over the scene.
type textSpan struct {
	col  int
	text string
}

// Display is a core.Display fed by Bubble Tea messages. Key messages are
// queued with PushKey and drained by the engine on its next tick; painted
// scenes are kept until View renders them.
type Display struct {
	mu    sync.Mutex
	rows  int
	cols  int
	keys  []int
	scene *core.Frame
	text  map[int]textSpan
}

// NewDisplay creates a display of the given size.
func NewDisplay(rows, cols int) *Display {
	return &Display{
		rows: max(rows, 1),
		cols: max(cols, 1),
		text: make(map[int]textSpan),
	}
}

// Size returns the display dimensions in cells.
func (d *Display) Size() (int, int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rows, d.cols
}

// Rows returns the number of rows.
func (d *Display) Rows() int {
	r, _ := d.Size()
	return r
}

// Cols returns the number of columns.
func (d *Display) Cols() int {
	_, c := d.Size()
	return c
}

// Resize changes the playfield size. The next engine cycle renders at the new size.
func (d *Display) Resize(rows, cols int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rows = max(rows, 1)
	d.cols = max(cols, 1)
}

// Paint keeps a copy of the scene for the next View.
func (d *Display) Paint(f *core.Frame) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.scene = f.Clone()
}

// Scene returns the last painted scene, or nil before the first paint.
func (d *Display) Scene() *core.Frame {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.scene
}

// SetText lays text over the scene starting at (row, col). Each row holds
// one span; an empty text clears the row.
func (d *Display) SetText(row, col int, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if text == "" {
		delete(d.text, row)
		return
	}
	d.text[row] = textSpan{col: col, text: text}
}

// ClearText removes every text span.
func (d *Display) ClearText() {
	d.mu.Lock()
	defer d.mu.Unlock()
	clear(d.text)
}

func (d *Display) spans() map[int]textSpan {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make(map[int]textSpan, len(d.text))
	for r, s := range d.text {
		out[r] = s
	}
	return out
}

// PushKey queues a keystroke for the engine.
func (d *Display) PushKey(code int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.keys = append(d.keys, code)
}

// HasKey reports whether a keystroke is queued.
func (d *Display) HasKey() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.keys) > 0
}

// Key pops the oldest queued keystroke. It never blocks.
func (d *Display) Key() (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.keys) == 0 {
		return 0, core.ErrNoKey
	}
	k := d.keys[0]
	d.keys = d.keys[1:]
	return k, nil
}

// PushbackKey puts code at the front of the queue.
func (d *Display) PushbackKey(code int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.keys = append([]int{code}, d.keys...)
}

// Colors returns the 16 ANSI colors every terminal supports.
func (d *Display) Colors() []core.RGB {
	return core.ANSIPalette
}
