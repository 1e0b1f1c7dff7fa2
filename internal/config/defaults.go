package config

import (
	_ "embed"

	"github.com/vovakirdan/stardodge/internal/sim"
)

//go:embed defaults/stars.yaml
var defaultStarsYAML []byte

// DefaultStarsConfig returns the default star dodge configuration.
func DefaultStarsConfig() StarsConfig {
	return StarsConfig{
		Field: FieldConfig{
			Width:      800,
			Height:     600,
			CellWidth:  16,
			CellHeight: 32,
		},
		Player: PlayerConfig{
			Radius: sim.DefaultPlayerRadius,
			Speed:  sim.DefaultPlayerSpeed,
		},
		Enemies: EnemiesConfig{
			Radius: sim.DefaultEnemyRadius,
			Speed:  sim.DefaultEnemySpeed,
			Count:  sim.DefaultEnemyCount,
		},
		Pickups: PickupsConfig{
			Radius:      sim.DefaultPickupRadius,
			Count:       sim.DefaultPickupCount,
			SpawnPeriod: sim.DefaultSpawnPeriod,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.6,
			SampleRate: 44100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionScore,
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.75,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultStarsYAML
}
