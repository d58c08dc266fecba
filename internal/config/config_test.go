package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/menagerie/internal/config"
	"github.com/vovakirdan/menagerie/internal/core"
	_ "github.com/vovakirdan/menagerie/internal/critters"
)

func TestEmbeddedMatchesDefaultConfig(t *testing.T) {
	cfg, err := config.Parse(config.DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, config.DefaultConfig().Validate())

	e := config.DefaultConfig().Engine
	assert.Equal(t, 3, e.EventCycle)
	assert.Equal(t, 50, e.NoMovement)
	assert.Equal(t, 10, e.TurnRevival)
	assert.Equal(t, 7, e.Cannonballs)
	assert.Equal(t, 5*time.Millisecond, e.PacerDelay)
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	doc := "engine:\n  cannonballs: 2\ncritters:\n  - kind: snake\n    row: 3\n    col: 4\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Engine.Cannonballs)
	assert.Equal(t, 3, cfg.Engine.EventCycle, "unset fields keep defaults")
	require.Len(t, cfg.Critters, 1)
	assert.Equal(t, "snake", cfg.Critters[0].Kind)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("engine: [1, 2"), 0o644))
	_, err = config.Load(bad)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := config.Marshal(config.DefaultConfig())
	require.NoError(t, err)
	assert.Contains(t, string(data), "pacer_delay: 5ms")

	cfg, err := config.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"zero event cycle", func(c *config.Config) { c.Engine.EventCycle = 0 }},
		{"zero no movement", func(c *config.Config) { c.Engine.NoMovement = 0 }},
		{"zero turn revival", func(c *config.Config) { c.Engine.TurnRevival = 0 }},
		{"negative cannonballs", func(c *config.Config) { c.Engine.Cannonballs = -1 }},
		{"zero rounds", func(c *config.Config) { c.Engine.Rounds = 0 }},
		{"zero tick rate", func(c *config.Config) { c.Engine.TickRate = 0 }},
		{"unknown kind", func(c *config.Config) { c.Critters[0].Kind = "dragon" }},
		{"engine-placed kind", func(c *config.Config) { c.Critters[0].Kind = "cannon" }},
		{"bad key", func(c *config.Config) { c.Keys.Fire = []string{"ctrl+shift+x"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}

func TestKeysConfigKeyMap(t *testing.T) {
	keys := config.KeysConfig{Quit: []string{"x"}, Fire: []string{"f"}}
	km, err := keys.KeyMap()
	require.NoError(t, err)

	assert.Equal(t, core.ActionQuit, km.Lookup('x'))
	assert.Equal(t, core.ActionNone, km.Lookup('q'), "rebinding quit drops the default key")
	assert.Equal(t, core.ActionFire, km.Lookup('f'))
	assert.Equal(t, core.ActionMove, km.Lookup('h'), "unset actions keep defaults")
	assert.Equal(t, core.ActionLeft, km.Lookup(core.KeyLeft))
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset      config.DifficultyPreset
		enabled     bool
		level       float64
		cannonballs int
	}{
		{config.DifficultyEasy, true, 0.0, 10},
		{config.DifficultyNormal, true, 0.3, 7},
		{config.DifficultyHard, true, 0.7, 5},
		{config.DifficultyFixed, false, 0.0, 7},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := config.DefaultConfig()
			config.ApplyPreset(&cfg, tt.preset)
			assert.Equal(t, tt.enabled, cfg.Difficulty.Enabled)
			assert.InDelta(t, tt.level, cfg.Difficulty.InitialLevel, 1e-9)
			assert.Equal(t, tt.cannonballs, cfg.Engine.Cannonballs)
		})
	}
}

func TestParsePreset(t *testing.T) {
	p, err := config.ParsePreset("hard")
	require.NoError(t, err)
	assert.Equal(t, config.DifficultyHard, p)

	p, err = config.ParsePreset("")
	require.NoError(t, err)
	assert.Empty(t, p)

	_, err = config.ParsePreset("nightmare")
	assert.Error(t, err)
}

func TestDifficultyByRound(t *testing.T) {
	dm := config.NewDifficultyManager(config.DefaultConfig().Difficulty)

	assert.InDelta(t, 0.0, dm.Level(0), 1e-9)
	assert.InDelta(t, 1.0/3.0, dm.Level(1), 1e-9)
	assert.InDelta(t, 1.0, dm.Level(3), 1e-9)
	assert.InDelta(t, 1.0, dm.Level(10), 1e-9, "level is clamped")

	assert.Equal(t, 30, dm.TickRate(30, 0))
	assert.Equal(t, 60, dm.TickRate(30, 3))
	assert.Equal(t, 5*time.Millisecond, dm.PacerDelay(5*time.Millisecond, 0))
	assert.Equal(t, 2500*time.Microsecond, dm.PacerDelay(5*time.Millisecond, 3))
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := config.DefaultConfig().Difficulty
	cfg.Enabled = false
	cfg.InitialLevel = 0.5
	dm := config.NewDifficultyManager(cfg)

	assert.False(t, dm.IsEnabled())
	assert.InDelta(t, 0.5, dm.Level(0), 1e-9)
	assert.InDelta(t, 0.5, dm.Level(5), 1e-9)
	assert.Equal(t, 45, dm.TickRate(30, 5))
}
