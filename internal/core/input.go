package core

import (
	"fmt"
	"strings"
)

// Non-ASCII key codes reported by displays. Printable keys are reported as
// their ASCII value.
const (
	KeyDown      = 0402
	KeyUp        = 0403
	KeyLeft      = 0404
	KeyRight     = 0405
	KeyBackspace = 0407
	KeyEnter     = 0527
	KeyEscape    = 27
	KeySpace     = ' '
)

var namedKeys = map[string]int{
	"down":      KeyDown,
	"up":        KeyUp,
	"left":      KeyLeft,
	"right":     KeyRight,
	"backspace": KeyBackspace,
	"enter":     KeyEnter,
	"esc":       KeyEscape,
	"space":     KeySpace,
}

// ParseKey converts a key name ("q", "space", "left", ...) into a key code.
func ParseKey(name string) (int, error) {
	if code, ok := namedKeys[strings.ToLower(name)]; ok {
		return code, nil
	}
	runes := []rune(name)
	if len(runes) == 1 && runes[0] < 0400 {
		return int(runes[0]), nil
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

// KeyName returns the readable name of a key code.
func KeyName(code int) string {
	for name, c := range namedKeys {
		if c == code {
			return name
		}
	}
	if code > ' ' && code < 0177 {
		return string(rune(code))
	}
	return fmt.Sprintf("key(%#o)", code)
}

// Action is what a keystroke command asks the engine to do.
type Action int

const (
	ActionNone    Action = iota
	ActionQuit           // q - end the round
	ActionMove           // h - move the cannon along its heading
	ActionReverse        // g - reverse the cannon
	ActionFire           // i, space - shoot a cannonball
	ActionLeft           // left arrow - face west and move
	ActionRight          // right arrow - face east and move
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionQuit:
		return "Quit"
	case ActionMove:
		return "Move"
	case ActionReverse:
		return "Reverse"
	case ActionFire:
		return "Fire"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// KeyMap translates key codes into actions.
type KeyMap struct {
	actions map[int]Action
}

// NewKeyMap creates an empty key map.
func NewKeyMap() *KeyMap {
	return &KeyMap{actions: make(map[int]Action)}
}

// DefaultBindings are the classic keys: q quit, h move, g reverse, i or
// space fire, arrows steer.
var DefaultBindings = map[Action][]int{
	ActionQuit:    {'q'},
	ActionMove:    {'h'},
	ActionReverse: {'g'},
	ActionFire:    {'i', KeySpace},
	ActionLeft:    {KeyLeft},
	ActionRight:   {KeyRight},
}

// DefaultKeyMap returns a key map holding DefaultBindings.
func DefaultKeyMap() *KeyMap {
	km := NewKeyMap()
	for a, keys := range DefaultBindings {
		km.Bind(a, keys...)
	}
	return km
}

// Bind maps each key to the action, replacing any previous binding.
func (km *KeyMap) Bind(a Action, keys ...int) {
	for _, k := range keys {
		km.actions[k] = a
	}
}

// Lookup returns the action bound to key, or ActionNone.
func (km *KeyMap) Lookup(key int) Action {
	if km == nil || km.actions == nil {
		return ActionNone
	}
	return km.actions[key]
}
