package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/menagerie/internal/config"
	"github.com/vovakirdan/menagerie/internal/core"
)

// KeyMapper translates Bubble Tea key messages into the key codes the
// engine reads from its display, and into menu actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// KeyCode returns the display key code for msg. Keys the engine has no
// code for report false.
func (km *KeyMapper) KeyCode(msg tea.KeyMsg) (int, bool) {
	switch msg.Type {
	case tea.KeyUp:
		return core.KeyUp, true
	case tea.KeyDown:
		return core.KeyDown, true
	case tea.KeyLeft:
		return core.KeyLeft, true
	case tea.KeyRight:
		return core.KeyRight, true
	case tea.KeySpace:
		return core.KeySpace, true
	case tea.KeyEnter:
		return core.KeyEnter, true
	case tea.KeyBackspace:
		return core.KeyBackspace, true
	case tea.KeyEsc:
		return core.KeyEscape, true
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && msg.Runes[0] < 0400 {
			return int(msg.Runes[0]), true
		}
	}
	return 0, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	}
	return MenuActionNone
}

// GameKeyMap holds the bindings shown in the help line. Play keys come from
// the configuration; Next and Quit drive the screens between rounds.
type GameKeyMap struct {
	Move    key.Binding
	Reverse key.Binding
	Fire    key.Binding
	Left    key.Binding
	Right   key.Binding
	Stop    key.Binding
	Next    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Fire, k.Move, k.Reverse, k.Left, k.Right, k.Stop},
		{k.Next, k.Quit},
	}
}

// PlayHelp returns the bindings that matter while a round runs.
func (k GameKeyMap) PlayHelp() []key.Binding {
	return []key.Binding{k.Fire, k.Move, k.Reverse, k.Left, k.Right, k.Stop}
}

// NewGameKeyMap builds the help bindings for the configured keys.
func NewGameKeyMap(keys config.KeysConfig) GameKeyMap {
	return GameKeyMap{
		Move:    playBinding(keys.Move, core.ActionMove, "move"),
		Reverse: playBinding(keys.Reverse, core.ActionReverse, "reverse"),
		Fire:    playBinding(keys.Fire, core.ActionFire, "fire"),
		Left:    playBinding(keys.Left, core.ActionLeft, "left"),
		Right:   playBinding(keys.Right, core.ActionRight, "right"),
		Stop:    playBinding(keys.Quit, core.ActionQuit, "end round"),
		Next: key.NewBinding(
			key.WithKeys("enter", " ", "n"),
			key.WithHelp("enter", "continue"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// playBinding describes an engine command. Unset commands show their
// default keys.
func playBinding(names []string, action core.Action, desc string) key.Binding {
	if len(names) == 0 {
		for _, code := range core.DefaultBindings[action] {
			names = append(names, core.KeyName(code))
		}
	}
	teaKeys := make([]string, len(names))
	for i, n := range names {
		teaKeys[i] = teaKeyName(n)
	}
	return key.NewBinding(
		key.WithKeys(teaKeys...),
		key.WithHelp(strings.Join(names, "/"), desc),
	)
}

// teaKeyName converts a configured key name into Bubble Tea's spelling.
func teaKeyName(name string) string {
	if strings.EqualFold(name, "space") {
		return " "
	}
	return strings.ToLower(name)
}
