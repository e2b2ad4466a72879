package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDragon loads the game configuration and validates it.
// Search order: customPath -> ~/.dragon/configs/dragon.yaml -> ./configs/dragon.yaml -> embedded default
// The first file found wins; if it fails to parse or validate, that error is returned.
func LoadDragon(customPath string) (DragonConfig, error) {
	var cfg DragonConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err = Parse(data)
		if err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory.
	// A missing file falls through; a file that exists must be valid.
	for _, path := range []string{userConfigPath("dragon.yaml"), filepath.Join("configs", "dragon.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", path, err)
		}
		if cfg, err = Parse(data); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", path, err)
		}
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultDragonYAML)
	if err != nil {
		return DefaultDragonConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults and validates the result.
// Fields missing from data keep their default values.
func Parse(data []byte) (DragonConfig, error) {
	cfg := DefaultDragonConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("cannot parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal renders the config as YAML.
func (c DragonConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot marshal: %w", err)
	}
	return data, nil
}

// Validate reports every field that would break the simulation's invariants.
func (c DragonConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Screen.Width > 0, "screen.width must be positive, got %d", c.Screen.Width)
	check(c.Screen.Height > 0, "screen.height must be positive, got %d", c.Screen.Height)
	check(c.Timing.FrameDurationMs > 0, "timing.frame_duration_ms must be positive, got %g", c.Timing.FrameDurationMs)
	check(c.Physics.Gravity >= 0, "physics.gravity must not be negative, got %g", c.Physics.Gravity)
	check(c.Physics.FlapVelocity <= c.Physics.TerminalVelocity,
		"physics.flap_velocity (%g) must not exceed physics.terminal_velocity (%g)",
		c.Physics.FlapVelocity, c.Physics.TerminalVelocity)
	check(c.Player.StartY >= 0, "player.start_y must not be negative, got %g", c.Player.StartY)
	check(c.Obstacles.BaseVelocity < 0, "obstacles.base_velocity must be negative, got %g", c.Obstacles.BaseVelocity)
	check(c.Obstacles.SpeedScale >= 0, "obstacles.speed_scale must not be negative, got %g", c.Obstacles.SpeedScale)
	check(c.Obstacles.MinGap >= 0, "obstacles.min_gap must not be negative, got %g", c.Obstacles.MinGap)
	check(c.Obstacles.BaseGap >= c.Obstacles.MinGap,
		"obstacles.base_gap (%g) must be at least obstacles.min_gap (%g)", c.Obstacles.BaseGap, c.Obstacles.MinGap)
	check(c.Obstacles.GapShrink >= 0, "obstacles.gap_shrink must not be negative, got %g", c.Obstacles.GapShrink)
	check(c.Obstacles.GapCenterMin <= c.Obstacles.GapCenterMax,
		"obstacles.gap_center_min (%g) must not exceed obstacles.gap_center_max (%g)",
		c.Obstacles.GapCenterMin, c.Obstacles.GapCenterMax)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("invalid config: %w", errors.Join(errs...))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dragon", "configs", filename)
}
