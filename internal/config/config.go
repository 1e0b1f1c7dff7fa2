// Package config provides YAML-based game configuration loading and
// difficulty management for star dodge.
package config

import (
	"fmt"

	"github.com/vovakirdan/stardodge/internal/sim"
)

// StarsConfig contains all configuration for the star dodge game.
type StarsConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Player     PlayerConfig     `yaml:"player"`
	Enemies    EnemiesConfig    `yaml:"enemies"`
	Pickups    PickupsConfig    `yaml:"pickups"`
	Rules      RulesConfig      `yaml:"rules"`
	Audio      AudioConfig      `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the play-field in world units.
type FieldConfig struct {
	Width      float64 `yaml:"width"`       // Headless field width
	Height     float64 `yaml:"height"`      // Headless field height
	CellWidth  float64 `yaml:"cell_width"`  // World units per terminal column
	CellHeight float64 `yaml:"cell_height"` // World units per terminal row
}

// PlayerConfig defines the player circle.
type PlayerConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // Units per second
}

// EnemiesConfig defines the bouncing enemies.
type EnemiesConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // Units per second
	Count  int     `yaml:"count"`
}

// PickupsConfig defines the star pickups.
type PickupsConfig struct {
	Radius      float64 `yaml:"radius"`
	Count       int     `yaml:"count"`        // Spawned at startup
	SpawnPeriod float64 `yaml:"spawn_period"` // Seconds between timed spawns
}

// RulesConfig holds gameplay switches.
type RulesConfig struct {
	SingleGameOver bool `yaml:"single_game_over"`
}

// AudioConfig controls the sound cues.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0.0 to 1.0
	SampleRate int     `yaml:"sample_rate"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Stars or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to enemy speed at max difficulty
}

// SimConfig converts the document into simulation constants.
func (c StarsConfig) SimConfig() sim.Config {
	return sim.Config{
		PlayerRadius:   c.Player.Radius,
		PlayerSpeed:    c.Player.Speed,
		EnemyRadius:    c.Enemies.Radius,
		EnemySpeed:     c.Enemies.Speed,
		EnemyCount:     c.Enemies.Count,
		PickupRadius:   c.Pickups.Radius,
		PickupCount:    c.Pickups.Count,
		SpawnPeriod:    c.Pickups.SpawnPeriod,
		SingleGameOver: c.Rules.SingleGameOver,
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name is valid and means
// "keep the loaded config as is".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

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
