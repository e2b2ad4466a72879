package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-dragon/internal/config"
)

// envFile is read from the working directory before flags are resolved.
const envFile = ".env"

// envFlags maps persistent flags to the environment variables that can set them.
var envFlags = map[string]string{
	"fps":        "DRAGON_FPS",
	"seed":       "DRAGON_SEED",
	"db":         "DRAGON_DB",
	"config":     "DRAGON_CONFIG",
	"difficulty": "DRAGON_DIFFICULTY",
	"log-level":  "DRAGON_LOG_LEVEL",
	"log-file":   "DRAGON_LOG_FILE",
}

// applyEnv loads path (if it exists) into the environment and copies DRAGON_*
// variables into every persistent flag of cmd not set on the command line.
// Variables already present in the environment win over the file.
func applyEnv(cmd *cobra.Command, path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot load %s: %w", path, err)
	}

	flags := cmd.PersistentFlags()
	for name, env := range envFlags {
		value, ok := os.LookupEnv(env)
		if !ok || flags.Lookup(name) == nil || flags.Changed(name) {
			continue
		}
		if err := flags.Set(name, value); err != nil {
			return fmt.Errorf("invalid %s=%q: %w", env, value, err)
		}
	}
	return nil
}

// newLogger builds the shared logger. Full-screen shells must not write to the
// terminal, so they pass quiet=true and only get output when --log-file is set.
func newLogger(prefix string, quiet bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	closer := func() {}

	switch {
	case flagLogFile != "":
		if dir := filepath.Dir(flagLogFile); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
			}
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	case quiet:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// loadConfig resolves --config and --difficulty into the effective game config.
func loadConfig() (config.DragonConfig, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.DragonConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	cfg, err := config.LoadDragon(flagConfig)
	if err != nil {
		return config.DragonConfig{}, err
	}
	if preset != "" {
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}
