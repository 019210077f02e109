package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultYAML []byte

// Default returns the default game configuration, matching the embedded YAML.
func Default() Config {
	return Config{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Paddle: PaddleConfig{
			Width:   120,
			Height:  14,
			Speed:   500,
			YOffset: 45,
		},
		Ball: BallConfig{
			Radius:       8,
			InitialSpeed: 320,
			SpeedStep:    35,
			MaxSpeed:     600,
		},
		Bricks: BricksConfig{
			Cols:      10,
			Width:     68,
			Height:    22,
			Padding:   4,
			TopOffset: 60,
			Rows: []RowSpec{
				{Color: "#dc2d2d", Points: 60, HitPoints: 1},
				{Color: "#e67814", Points: 50, HitPoints: 1},
				{Color: "#d2c814", Points: 40, HitPoints: 1},
				{Color: "#2db92d", Points: 30, HitPoints: 1},
				{Color: "#2d6ee1", Points: 20, HitPoints: 1},
				{Color: "#872dcd", Points: 10, HitPoints: 1},
			},
		},
		Gameplay: GameplayConfig{
			Lives:              3,
			MaxLevels:          5,
			LevelCompleteDelay: 2.0,
		},
	}
}
