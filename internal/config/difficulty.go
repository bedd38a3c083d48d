package config

import "fmt"

// ParsePreset maps a CLI string to a preset. An empty string means "keep the
// configured values".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the configuration as loaded.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.BaseSpeed *= 0.8
		cfg.Obstacles.MinInterval *= 1.2
		cfg.Obstacles.MaxInterval *= 1.2
	case DifficultyHard:
		cfg.Physics.BaseSpeed *= 1.3
		cfg.Obstacles.MinInterval *= 0.8
		cfg.Obstacles.MaxInterval *= 0.8
	case DifficultyFixed:
		// Speed never ramps up
		cfg.Score.SpeedUpFactor = 1.0
	}
}
