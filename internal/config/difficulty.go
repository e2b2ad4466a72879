package config

import "math"

// Preset scaling factors relative to the configured (normal) values.
const (
	easySpeedFactor = 0.6
	easyGapFactor   = 0.5
	hardSpeedFactor = 1.4
	hardGapFactor   = 1.5
)

// GapSize returns the gap size of an obstacle created at the given score.
// The result never drops below MinGap.
func (o ObstacleConfig) GapSize(score int) float64 {
	return math.Max(o.MinGap, o.BaseGap-float64(score)*o.GapShrink)
}

// Velocity returns the per-tick horizontal delta of an obstacle created at the given
// score. It grows more negative (faster leftward) as score grows.
func (o ObstacleConfig) Velocity(score int) float64 {
	return o.BaseVelocity - float64(score)*o.SpeedScale
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *DragonConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Obstacles.SpeedScale *= easySpeedFactor
		cfg.Obstacles.GapShrink *= easyGapFactor
	case DifficultyHard:
		cfg.Obstacles.SpeedScale *= hardSpeedFactor
		cfg.Obstacles.GapShrink *= hardGapFactor
	case DifficultyFixed:
		cfg.Obstacles.SpeedScale = 0
		cfg.Obstacles.GapShrink = 0
	case DifficultyNormal:
	default:
		return
	}
	cfg.Difficulty.Preset = preset
}
