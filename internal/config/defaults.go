package config

import (
	_ "embed"
)

//go:embed defaults/capydino.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It mirrors
// defaults/capydino.yaml and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Canvas: Canvas{
			Width:  800,
			Height: 200,
		},
		Ground: Ground{
			Height:             30,
			DecorationChance:   0.02,
			InitialDecorations: 5,
			DecorationMinWidth: 10,
			DecorationWidthVar: 10,
			DecorationHeight:   5,
		},
		Physics: Physics{
			Gravity:   0.08,
			BaseSpeed: 1.5,
		},
		Score: Score{
			PerTick:       0.025,
			SpeedUpEvery:  100,
			SpeedUpFactor: 1.05,
			Digits:        5,
		},
		Player: Player{
			X:          25,
			Width:      44,
			Height:     47,
			DuckHeight: 26,
			FootSink:   5,
			JumpPower:  4.25,
			Hitbox: Hitbox{
				OffsetX: 5,
				OffsetY: 4,
				Width:   35,
				Height:  40,
			},
		},
		Obstacles: Obstacles{
			InitialInterval: 200,
			MinInterval:     180,
			MaxInterval:     350,
			BirdAltitudes:   []float64{75, 95, 115},
		},
		Clouds: Clouds{
			Interval:    200,
			DriftFactor: 0.2,
			Initial:     3,
			MinY:        20,
			YVar:        40,
			MinWidth:    40,
			WidthVar:    20,
			Height:      20,
		},
		Controls: Controls{
			DuckHoldMS: 550,
		},
		HighScore: HighScore{
			Key: "capyDinoHiScore",
		},
		Palette: Palette{
			Sky:       "#87CEEB",
			Sun:       "#FFD700",
			Cloud:     "#FFFFFF",
			Grass:     "#32CD32",
			GrassDark: "#228B22",
			Player:    "#8B4513",
			Eyes:      "#000000",
			Cactus:    "#228B22",
			Bird:      "#333333",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
