package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/menagerie/internal/core"
)

// cellStyles paints a cell with ANSI background color i.
var cellStyles = func() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(core.ANSIPalette))
	for i := range styles {
		styles[i] = lipgloss.NewStyle().Background(lipgloss.Color(strconv.Itoa(i)))
	}
	return styles
}()

// textStyle is used for text laid over the scene.
var textStyle = lipgloss.NewStyle().
	Background(lipgloss.Color("0")).
	Foreground(lipgloss.Color("15")).
	Bold(true)

// run is a stretch of cells drawn with one style.
type run struct {
	style int // palette index, -1 for transparent
	text  bool
}

// RenderFrame converts a scene to a styled string, one line per row. Each
// cell becomes a space on the nearest palette background color. Adjacent
// cells with the same color are grouped to keep escape sequences short.
func RenderFrame(f *core.Frame, spans map[int]textSpan) string {
	if f == nil {
		return ""
	}
	matches := make(map[core.RGB]int)
	match := func(c core.RGB) int {
		if c.Transparent {
			return -1
		}
		i, ok := matches[c]
		if !ok {
			i = c.BestMatch(core.ANSIPalette)
			matches[c] = i
		}
		return i
	}

	var sb strings.Builder
	sb.Grow(f.Rows()*f.Cols()*2 + f.Rows())

	for r := range f.Rows() {
		if r > 0 {
			sb.WriteRune('\n')
		}
		span, hasSpan := spans[r]
		var textRunes []rune
		if hasSpan {
			textRunes = []rune(span.text)
		}
		textAt := func(c int) (rune, bool) {
			if !hasSpan || c < span.col || c >= span.col+len(textRunes) {
				return 0, false
			}
			return textRunes[c-span.col], true
		}

		c := 0
		for c < f.Cols() {
			_, isText := textAt(c)
			start := run{style: match(f.Cell(r, c)), text: isText}

			var seg strings.Builder
			for c < f.Cols() {
				ch, isText := textAt(c)
				cur := run{style: match(f.Cell(r, c)), text: isText}
				if isText != start.text || (!isText && cur != start) {
					break
				}
				if isText {
					seg.WriteRune(ch)
				} else {
					seg.WriteRune(' ')
				}
				c++
			}

			switch {
			case start.text:
				sb.WriteString(textStyle.Render(seg.String()))
			case start.style < 0:
				sb.WriteString(seg.String())
			default:
				sb.WriteString(cellStyles[start.style].Render(seg.String()))
			}
		}
	}
	return sb.String()
}
