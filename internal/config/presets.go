package config

// Preset represents a named difficulty level.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
	PresetFixed  Preset = "fixed"
)

// ParsePreset maps a CLI string to a Preset; unknown strings map to "".
func ParsePreset(s string) Preset {
	switch Preset(s) {
	case PresetEasy, PresetNormal, PresetHard, PresetFixed:
		return Preset(s)
	default:
		return ""
	}
}

// Apply adjusts the configuration for a difficulty preset.
//   - easy: extra lives, slower ball
//   - normal: config values as-is
//   - hard: fewer lives, faster ball
//   - fixed: no speed progression across levels
func Apply(cfg *Config, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Gameplay.Lives += 2
		cfg.Ball.InitialSpeed *= 0.85
	case PresetHard:
		if cfg.Gameplay.Lives > 1 {
			cfg.Gameplay.Lives--
		}
		cfg.Ball.InitialSpeed *= 1.15
	case PresetFixed:
		cfg.Ball.SpeedStep = 0
	}
}
