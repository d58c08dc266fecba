package config

import (
	"math"
	"time"
)

// DifficultyManager derives per-round engine speed from the difficulty settings.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty level (0.0 to 1.0) for a zero-based round.
func (d *DifficultyManager) Level(round int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "round" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(round)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the speed factor for a round, from 1 up to 1+speed_multiplier.
func (d *DifficultyManager) Speed(round int) float64 {
	return 1.0 + d.Level(round)*d.cfg.Scaling.SpeedMultiplier
}

// TickRate scales the base frames per second for a round.
func (d *DifficultyManager) TickRate(base, round int) int {
	rate := int(math.Round(float64(base) * d.Speed(round)))
	if rate < 1 {
		rate = 1
	}
	return rate
}

// PacerDelay shortens the pacer's delay for a round.
func (d *DifficultyManager) PacerDelay(base time.Duration, round int) time.Duration {
	speed := d.Speed(round)
	if speed <= 0 {
		return base
	}
	return time.Duration(float64(base) / speed)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
