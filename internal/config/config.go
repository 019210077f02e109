// Package config provides YAML-based game configuration loading and
// difficulty presets for the breakout game.
package config

// Config contains every compile-time tunable of the game. All values are in
// playfield pixels and pixels per second; the render layer scales them to the
// terminal.
type Config struct {
	Field    FieldConfig    `yaml:"field"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Ball     BallConfig     `yaml:"ball"`
	Bricks   BricksConfig   `yaml:"bricks"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// FieldConfig defines the playfield dimensions.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines the paddle geometry and movement.
type PaddleConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Speed   float64 `yaml:"speed"`    // Horizontal speed in px/s
	YOffset float64 `yaml:"y_offset"` // Distance from field bottom to paddle top
}

// BallConfig defines the ball geometry and speed progression.
type BallConfig struct {
	Radius       float64 `yaml:"radius"`
	InitialSpeed float64 `yaml:"initial_speed"` // Speed at level 1, px/s
	SpeedStep    float64 `yaml:"speed_step"`    // Added on each level clear
	MaxSpeed     float64 `yaml:"max_speed"`     // Hard cap
}

// BricksConfig defines the brick grid layout and the per-row tables.
type BricksConfig struct {
	Cols      int       `yaml:"cols"`
	Width     float64   `yaml:"width"`
	Height    float64   `yaml:"height"`
	Padding   float64   `yaml:"padding"`    // Gap between adjacent bricks
	TopOffset float64   `yaml:"top_offset"` // Field top to first row
	Rows      []RowSpec `yaml:"rows"`       // Top row first
}

// RowSpec describes one brick row: its color, base point value, and base hit
// points at level 1. Levels beyond the first add one hit point to every row;
// a brick's point value is base points times its initial hit points.
type RowSpec struct {
	Color     string `yaml:"color"` // "#rrggbb"
	Points    int    `yaml:"points"`
	HitPoints int    `yaml:"hit_points"`
}

// GameplayConfig defines session-level rules.
type GameplayConfig struct {
	Lives              int     `yaml:"lives"`
	MaxLevels          int     `yaml:"max_levels"`
	LevelCompleteDelay float64 `yaml:"level_complete_delay"` // Seconds
}
