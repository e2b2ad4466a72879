package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-dragon/internal/config"
)

func withFlags(t *testing.T, cfgPath, difficulty, level, logFile string) {
	t.Helper()
	oldCfg, oldDiff, oldLevel, oldFile := flagConfig, flagDifficulty, flagLogLevel, flagLogFile
	flagConfig, flagDifficulty, flagLogLevel, flagLogFile = cfgPath, difficulty, level, logFile
	t.Cleanup(func() {
		flagConfig, flagDifficulty, flagLogLevel, flagLogFile = oldCfg, oldDiff, oldLevel, oldFile
	})
}

func writeDefaultConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dragon.yaml")
	if err := os.WriteFile(path, config.DefaultYAML(), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestLoadConfigAppliesDifficulty(t *testing.T) {
	withFlags(t, writeDefaultConfig(t), "fixed", "info", "")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.Difficulty.Preset != config.DifficultyFixed {
		t.Errorf("preset = %q, want fixed", cfg.Difficulty.Preset)
	}
	if cfg.Obstacles.SpeedScale != 0 || cfg.Obstacles.GapShrink != 0 {
		t.Errorf("fixed preset left scaling on: %+v", cfg.Obstacles)
	}
}

func TestLoadConfigRejectsUnknownDifficulty(t *testing.T) {
	withFlags(t, writeDefaultConfig(t), "impossible", "info", "")

	if _, err := loadConfig(); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}

func TestNewLoggerLevels(t *testing.T) {
	withFlags(t, "", "", "loud", "")
	if _, _, err := newLogger("test", true); err == nil {
		t.Error("expected error for unknown log level")
	}

	logFile := filepath.Join(t.TempDir(), "logs", "dragon.log")
	withFlags(t, "", "", "debug", logFile)
	logger, closeLog, err := newLogger("test", true)
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Info("hello", "k", 1)
	closeLog()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if len(data) == 0 {
		t.Error("log file is empty")
	}
}

// unsetEnv clears key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestApplyEnv(t *testing.T) {
	for _, env := range envFlags {
		unsetEnv(t, env)
	}

	var db, difficulty, level string
	cmd := &cobra.Command{Use: "test"}
	cmd.PersistentFlags().StringVar(&db, "db", "default.db", "")
	cmd.PersistentFlags().StringVar(&difficulty, "difficulty", "", "")
	cmd.PersistentFlags().StringVar(&level, "log-level", "info", "")
	if err := cmd.PersistentFlags().Set("log-level", "warn"); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), ".env")
	data := "DRAGON_DB=/tmp/from-file.db\nDRAGON_DIFFICULTY=hard\nDRAGON_LOG_LEVEL=debug\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	t.Setenv("DRAGON_DB", "/tmp/from-env.db")

	if err := applyEnv(cmd, path); err != nil {
		t.Fatalf("applyEnv() failed: %v", err)
	}

	if db != "/tmp/from-env.db" {
		t.Errorf("db = %q, want the process environment to win over .env", db)
	}
	if difficulty != "hard" {
		t.Errorf("difficulty = %q, want hard", difficulty)
	}
	if level != "warn" {
		t.Errorf("log-level = %q, want the command-line value", level)
	}
}

func TestApplyEnvMissingFile(t *testing.T) {
	unsetEnv(t, "DRAGON_FPS")

	cmd := &cobra.Command{Use: "test"}
	if err := applyEnv(cmd, filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
	}
}

func TestApplyEnvRejectsBadValue(t *testing.T) {
	for _, env := range envFlags {
		unsetEnv(t, env)
	}
	t.Setenv("DRAGON_FPS", "fast")

	var fps int
	cmd := &cobra.Command{Use: "test"}
	cmd.PersistentFlags().IntVar(&fps, "fps", 60, "")

	if err := applyEnv(cmd, filepath.Join(t.TempDir(), ".env")); err == nil {
		t.Error("expected error for non-numeric DRAGON_FPS")
	}
}
