package config

import (
	_ "embed"
)

//go:embed defaults/dragon.yaml
var defaultDragonYAML []byte

// DefaultDragonConfig returns the built-in configuration.
// It mirrors defaults/dragon.yaml and is used if the embedded file cannot be parsed.
func DefaultDragonConfig() DragonConfig {
	return DragonConfig{
		Screen: ScreenConfig{
			Width:  80,
			Height: 50,
		},
		Timing: TimingConfig{
			FrameDurationMs: 20,
		},
		Physics: PhysicsConfig{
			Gravity:          0.2,
			TerminalVelocity: 2.0,
			FlapVelocity:     -2.0,
		},
		Player: PlayerConfig{
			StartX: 5,
			StartY: 25,
		},
		Obstacles: ObstacleConfig{
			BaseVelocity: -1.0,
			SpeedScale:   0.25,
			BaseGap:      20,
			MinGap:       2,
			GapShrink:    1.0,
			GapCenterMin: 10,
			GapCenterMax: 40,
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDragonYAML
}
