// Package config provides YAML-based menagerie configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/menagerie/internal/core"
	"github.com/vovakirdan/menagerie/internal/registry"
)

// Config contains all configuration for a menagerie session.
type Config struct {
	Engine     EngineConfig     `yaml:"engine"`
	Critters   []CritterConfig  `yaml:"critters"`
	Keys       KeysConfig       `yaml:"keys"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// EngineConfig holds the constants of the simulation loop.
type EngineConfig struct {
	EventCycle  int           `yaml:"event_cycle"`
	NoMovement  int           `yaml:"no_movement"`
	TurnRevival int           `yaml:"turn_revival"`
	Cannonballs int           `yaml:"cannonballs"`
	Rounds      int           `yaml:"rounds"`
	TickRate    int           `yaml:"tick_rate"`
	PacerDelay  time.Duration `yaml:"pacer_delay"`
}

// CritterConfig places one critter at round reset.
type CritterConfig struct {
	Kind   string `yaml:"kind"`
	Row    int    `yaml:"row,omitempty"`
	Col    int    `yaml:"col,omitempty"`
	Length int    `yaml:"length,omitempty"`
}

// KeysConfig lists key names bound to each command.
type KeysConfig struct {
	Quit    []string `yaml:"quit"`
	Move    []string `yaml:"move"`
	Reverse []string `yaml:"reverse"`
	Fire    []string `yaml:"fire"`
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "round" or "none"
	MaxAt int    `yaml:"max_at"` // Round at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the selectable difficulty presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks engine constants and critter kinds.
// Critter kinds must be registered, so callers import the critters package.
func (c Config) Validate() error {
	e := c.Engine
	checks := []struct {
		name string
		ok   bool
	}{
		{"engine.event_cycle must be positive", e.EventCycle > 0},
		{"engine.no_movement must be positive", e.NoMovement > 0},
		{"engine.turn_revival must be positive", e.TurnRevival > 0},
		{"engine.cannonballs must not be negative", e.Cannonballs >= 0},
		{"engine.rounds must be positive", e.Rounds > 0},
		{"engine.tick_rate must be positive", e.TickRate > 0},
		{"engine.pacer_delay must not be negative", e.PacerDelay >= 0},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalid, chk.name)
		}
	}

	for i, cc := range c.Critters {
		switch {
		case cc.Kind == "cannon" || cc.Kind == "cannonball":
			return fmt.Errorf("%w: critters[%d]: %s is placed by the engine", ErrInvalid, i, cc.Kind)
		case !registry.Exists(cc.Kind):
			return fmt.Errorf("%w: critters[%d]: unknown kind %q", ErrInvalid, i, cc.Kind)
		}
	}

	if _, err := c.Keys.KeyMap(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// KeyMap builds the key bindings. An action with no keys keeps the classic
// default binding.
func (k KeysConfig) KeyMap() (*core.KeyMap, error) {
	km := core.NewKeyMap()
	bindings := []struct {
		action core.Action
		names  []string
	}{
		{core.ActionQuit, k.Quit},
		{core.ActionMove, k.Move},
		{core.ActionReverse, k.Reverse},
		{core.ActionFire, k.Fire},
		{core.ActionLeft, k.Left},
		{core.ActionRight, k.Right},
	}

	for _, b := range bindings {
		if len(b.names) == 0 {
			km.Bind(b.action, core.DefaultBindings[b.action]...)
			continue
		}
		for _, name := range b.names {
			code, err := core.ParseKey(name)
			if err != nil {
				return nil, fmt.Errorf("keys.%s: %w", b.action, err)
			}
			km.Bind(b.action, code)
		}
	}
	return km, nil
}

// Spawn converts a critter entry into registry spawn parameters.
func (c CritterConfig) Spawn(pacerDelay time.Duration) registry.Spawn {
	return registry.Spawn{
		Row:    c.Row,
		Col:    c.Col,
		Length: c.Length,
		Delay:  pacerDelay,
	}
}
