// Package config provides YAML-based game configuration loading and
// difficulty presets for Flappy Dragon.
package config

// DragonConfig contains all tunables of the simulation.
type DragonConfig struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Timing     TimingConfig     `yaml:"timing"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ScreenConfig defines the logical playfield size. Shells scale it to the terminal.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the fixed logical frame.
type TimingConfig struct {
	FrameDurationMs float64 `yaml:"frame_duration_ms"`
}

// PhysicsConfig defines player physics parameters.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	FlapVelocity     float64 `yaml:"flap_velocity"` // Negative = up
}

// PlayerConfig defines where a fresh player starts.
type PlayerConfig struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
}

// ObstacleConfig defines obstacle generation and difficulty scaling.
type ObstacleConfig struct {
	BaseVelocity float64 `yaml:"base_velocity"` // Per-tick x delta at score 0 (negative = left)
	SpeedScale   float64 `yaml:"speed_scale"`   // Extra leftward speed per point of score
	BaseGap      float64 `yaml:"base_gap"`      // Gap size at score 0
	MinGap       float64 `yaml:"min_gap"`       // Gap size floor
	GapShrink    float64 `yaml:"gap_shrink"`    // Gap size lost per point of score
	GapCenterMin float64 `yaml:"gap_center_min"`
	GapCenterMax float64 `yaml:"gap_center_max"`
}

// DifficultyConfig names the preset the config was built with.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Empty means "keep config default".
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	case "":
		return "", true
	default:
		return "", false
	}
}

// IsFixedPreset returns true if the preset disables difficulty scaling.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
