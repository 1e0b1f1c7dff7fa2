package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "stars.yaml"

// LoadStars loads star dodge configuration.
// Search order: customPath -> ~/.stardodge/configs/stars.yaml -> ./configs/stars.yaml -> embedded default
//
// Each document is decoded over the defaults, so a file only needs the keys
// it changes.
func LoadStars(customPath string) (StarsConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return StarsConfig{}, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := parseStars(data)
		if err != nil {
			return StarsConfig{}, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseStars(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := parseStars(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseStars(defaultStarsYAML)
	if err != nil {
		return DefaultStarsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseStars decodes data over the defaults and validates the result.
func parseStars(data []byte) (StarsConfig, error) {
	cfg := DefaultStarsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return StarsConfig{}, err
	}
	if err := cfg.SimConfig().Validate(); err != nil {
		return StarsConfig{}, err
	}
	if cfg.Field.CellWidth <= 0 || cfg.Field.CellHeight <= 0 {
		return StarsConfig{}, fmt.Errorf("config: cell size must be positive, got %vx%v",
			cfg.Field.CellWidth, cfg.Field.CellHeight)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".stardodge", "configs", filename)
}

// ApplyStarsPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyStarsPreset(cfg *StarsConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Adjust the field population based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Enemies.Count = 2
		cfg.Enemies.Speed = 320
	case DifficultyHard:
		cfg.Enemies.Count = 5
		cfg.Enemies.Speed = 480
	}
}
