package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/menagerie.yaml
var defaultYAML []byte

// DefaultConfig returns the default menagerie configuration.
// It mirrors defaults/menagerie.yaml and is used when the embedded YAML
// cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Engine: EngineConfig{
			EventCycle:  3,
			NoMovement:  50,
			TurnRevival: 10,
			Cannonballs: 7,
			Rounds:      3,
			TickRate:    30,
			PacerDelay:  5 * time.Millisecond,
		},
		Critters: []CritterConfig{
			{Kind: "inchworm", Row: 10, Col: 10},
			{Kind: "inchworm", Row: 15, Col: 15},
			{Kind: "snake", Row: 20, Col: 20, Length: 6},
			{Kind: "pacer"},
		},
		Keys: KeysConfig{
			Quit:    []string{"q"},
			Move:    []string{"h"},
			Reverse: []string{"g"},
			Fire:    []string{"i", "space"},
			Left:    []string{"left"},
			Right:   []string{"right"},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "round",
				MaxAt: 3,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
