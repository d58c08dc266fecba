// Package cell implements a synchronous core.Display on a tcell screen.
// The engine polls it between cycles; an input goroutine collects events so
// polling never blocks.
package cell

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/menagerie/internal/core"
)

// statusRows is the number of screen rows kept below the playfield.
const statusRows = 1

// Display draws scenes as colored blanks on a tcell screen.
type Display struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}

	keys        []int
	text        map[int]span
	interrupt   int
	interrupted bool
}

type span struct {
	col  int
	text string
}

// Open initializes the terminal and returns a display on it.
func Open() (*Display, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return NewDisplay(screen), nil
}

// NewDisplay wraps an initialized screen and starts reading its events.
func NewDisplay(screen tcell.Screen) *Display {
	d := &Display{
		screen:    screen,
		events:    make(chan tcell.Event, 100),
		done:      make(chan struct{}),
		text:      make(map[int]span),
		interrupt: 'q',
	}
	screen.HideCursor()
	screen.Clear()

	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			select {
			case d.events <- ev:
			case <-d.done:
				return
			}
		}
	}()
	return d
}

// Close restores the terminal.
func (d *Display) Close() {
	close(d.done)
	d.screen.Fini()
}

// SetInterruptKey sets the key queued when the user presses Ctrl-C,
// normally the configured quit key.
func (d *Display) SetInterruptKey(code int) {
	d.interrupt = code
}

// Interrupted reports whether Ctrl-C was pressed.
func (d *Display) Interrupted() bool {
	d.drain()
	return d.interrupted
}

// Size returns the playfield size: the screen minus the status row.
func (d *Display) Size() (int, int) {
	w, h := d.screen.Size()
	return max(h-statusRows, 1), max(w, 1)
}

// Rows returns the number of playfield rows.
func (d *Display) Rows() int {
	r, _ := d.Size()
	return r
}

// Cols returns the number of columns.
func (d *Display) Cols() int {
	_, c := d.Size()
	return c
}

// Paint draws every opaque cell of f in its nearest palette color, then the
// text spans, and shows the result.
func (d *Display) Paint(f *core.Frame) {
	palette := d.Colors()
	matches := make(map[core.RGB]tcell.Style)

	for r := range f.Rows() {
		for c := range f.Cols() {
			rgb := f.Cell(r, c)
			if rgb.Transparent {
				continue
			}
			style, ok := matches[rgb]
			if !ok {
				style = tcell.StyleDefault.Background(tcell.PaletteColor(rgb.BestMatch(palette)))
				matches[rgb] = style
			}
			d.screen.SetContent(c, r, ' ', nil, style)
		}
	}
	d.drawText()
	d.screen.Show()
}

// SetText writes text at (row, col). It stays on screen across paints
// until replaced; an empty text clears the row's span.
func (d *Display) SetText(row, col int, text string) {
	if text == "" {
		delete(d.text, row)
	} else {
		d.text[row] = span{col: col, text: text}
	}
	d.drawText()
	d.screen.Show()
}

// ClearText removes every text span and blanks the screen.
func (d *Display) ClearText() {
	clear(d.text)
	d.screen.Clear()
}

var textStyle = tcell.StyleDefault.
	Foreground(tcell.ColorWhite).
	Background(tcell.ColorBlack).
	Bold(true)

func (d *Display) drawText() {
	for row, s := range d.text {
		col := s.col
		for _, r := range s.text {
			d.screen.SetContent(col, row, r, nil, textStyle)
			col++
		}
	}
}

// HasKey reports whether a keystroke is pending.
func (d *Display) HasKey() bool {
	d.drain()
	return len(d.keys) > 0
}

// Key returns the next keystroke without waiting.
func (d *Display) Key() (int, error) {
	d.drain()
	if len(d.keys) == 0 {
		return 0, core.ErrNoKey
	}
	k := d.keys[0]
	d.keys = d.keys[1:]
	return k, nil
}

// WaitKey blocks until a keystroke arrives. After Close it returns the
// interrupt key.
func (d *Display) WaitKey() int {
	for {
		if k, err := d.Key(); err == nil {
			return k
		}
		select {
		case ev := <-d.events:
			d.handle(ev)
		case <-d.done:
			return d.interrupt
		}
	}
}

// PushbackKey makes code the next key returned by Key.
func (d *Display) PushbackKey(code int) {
	d.keys = append([]int{code}, d.keys...)
}

// Colors returns the 16 ANSI colors.
func (d *Display) Colors() []core.RGB {
	return core.ANSIPalette
}

// drain handles every event collected by the input goroutine.
func (d *Display) drain() {
	for {
		select {
		case ev := <-d.events:
			d.handle(ev)
		default:
			return
		}
	}
}

func (d *Display) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			d.interrupted = true
			d.keys = append(d.keys, d.interrupt)
			return
		}
		if code, ok := KeyCode(ev); ok {
			d.keys = append(d.keys, code)
		}
	case *tcell.EventResize:
		d.screen.Sync()
	}
}

// KeyCode converts a tcell key event to a display key code.
func KeyCode(ev *tcell.EventKey) (int, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		if r := ev.Rune(); r < 0400 {
			return int(r), true
		}
	case tcell.KeyUp:
		return core.KeyUp, true
	case tcell.KeyDown:
		return core.KeyDown, true
	case tcell.KeyLeft:
		return core.KeyLeft, true
	case tcell.KeyRight:
		return core.KeyRight, true
	case tcell.KeyEnter:
		return core.KeyEnter, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return core.KeyBackspace, true
	case tcell.KeyEscape:
		return core.KeyEscape, true
	}
	return 0, false
}
