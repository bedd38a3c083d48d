package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/capydino/internal/core"
)

// FileName is the configuration file name looked up in the search path.
const FileName = "capydino.yaml"

// Load loads the game configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/capydino/capydino.yaml ->
// ./configs/capydino.yaml -> embedded default -> Default().
// Missing files are skipped. A file that exists but cannot be read, parsed
// or validated is an error, so edits are never silently ignored.
func Load(customPath string) (Config, error) {
	return loadFrom(customPath, searchPaths())
}

func loadFrom(customPath string, paths []string) (Config, error) {
	if customPath != "" {
		return loadFile(customPath)
	}

	for _, path := range paths {
		cfg, err := loadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return cfg, err
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result, so a
// file only needs to name the values it overrides.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	// Lists are replaced, not merged, by yaml.v3
	cfg.Obstacles.BirdAltitudes = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: cannot parse yaml: %w", err)
	}
	if len(cfg.Obstacles.BirdAltitudes) == 0 {
		cfg.Obstacles.BirdAltitudes = Default().Obstacles.BirdAltitudes
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode yaml: %w", err)
	}
	return data, nil
}

// Validate reports configuration values the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Canvas.Width > 0 && c.Canvas.Height > 0, "canvas size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	check(c.Ground.Height >= 0 && c.Ground.Height < float64(c.Canvas.Height), "ground height %v must fit the canvas", c.Ground.Height)
	check(c.Ground.DecorationChance >= 0 && c.Ground.DecorationChance <= 1, "decoration chance %v must be within [0, 1]", c.Ground.DecorationChance)
	check(c.Physics.Gravity > 0, "gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Physics.BaseSpeed > 0, "base speed must be positive, got %v", c.Physics.BaseSpeed)
	check(c.Score.PerTick > 0, "score per tick must be positive, got %v", c.Score.PerTick)
	check(c.Score.SpeedUpEvery > 0, "speed up bucket must be positive, got %v", c.Score.SpeedUpEvery)
	check(c.Score.SpeedUpFactor >= 1, "speed up factor must be at least 1, got %v", c.Score.SpeedUpFactor)
	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive")
	check(c.Player.DuckHeight > 0 && c.Player.DuckHeight <= c.Player.Height, "duck height %v must be within (0, %v]", c.Player.DuckHeight, c.Player.Height)
	check(c.Player.JumpPower > 0, "jump power must be positive, got %v", c.Player.JumpPower)
	check(c.Player.Hitbox.Width > 0 && c.Player.Hitbox.Height > 0, "hitbox size must be positive")
	check(c.Obstacles.InitialInterval > 0, "initial obstacle interval must be positive")
	check(c.Obstacles.MinInterval > 0 && c.Obstacles.MinInterval <= c.Obstacles.MaxInterval,
		"obstacle interval [%v, %v] is invalid", c.Obstacles.MinInterval, c.Obstacles.MaxInterval)
	check(c.Clouds.Interval > 0, "cloud interval must be positive, got %d", c.Clouds.Interval)
	check(c.HighScore.Key != "", "high score key must not be empty")

	for name, hex := range c.Palette.entries() {
		if _, err := core.ParseHex(hex); err != nil {
			errs = append(errs, fmt.Errorf("palette %s: %w", name, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// loadFile reads and parses a single configuration file.
func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// searchPaths returns the implicit config locations in priority order.
func searchPaths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, "capydino", FileName),
		filepath.Join("configs", FileName),
	}
}
