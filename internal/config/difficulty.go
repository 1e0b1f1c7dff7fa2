package config

import "math"

// Progression types.
const (
	ProgressionScore = "score" // Ramp up with stars collected
	ProgressionTime  = "time"  // Ramp up with seconds survived
	ProgressionNone  = "none"
)

// DifficultyManager ramps the enemy speed up as a run goes on.
// Time progression is measured in simulated seconds, so it does not depend
// on the host frame rate.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0, 1),
	}
}

// SetInitialLevel overrides the starting level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0, 1)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressionNone
}

// Level returns the difficulty level in [initial, 1] for a run that has
// collected score stars over elapsed seconds.
func (d *DifficultyManager) Level(score int, elapsed float64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(max(d.cfg.Progression.MaxAt, 1))

	var progress float64
	switch d.cfg.Progression.Type {
	case ProgressionScore:
		progress = float64(score) / maxAt
	case ProgressionTime:
		progress = elapsed / maxAt
	default:
		return d.initialLevel
	}

	return d.initialLevel + clampF(progress, 0, 1)*(1-d.initialLevel)
}

// Speed returns the enemy speed for the current level: base at level 0,
// base * (1 + SpeedMultiplier) at level 1. With progression disabled the
// base speed is returned unchanged.
func (d *DifficultyManager) Speed(base float64, score int, elapsed float64) float64 {
	if !d.IsEnabled() {
		return base
	}
	return base * (1 + d.Level(score, elapsed)*d.cfg.Scaling.SpeedMultiplier)
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
