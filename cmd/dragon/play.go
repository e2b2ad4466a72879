package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/journal"
	"github.com/vovakirdan/flappy-dragon/internal/platform/audio"
	"github.com/vovakirdan/flappy-dragon/internal/platform/tui"
	"github.com/vovakirdan/flappy-dragon/internal/registry"
)

var (
	flagShell  string
	flagSound  bool
	flagRecord bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Flappy Dragon",
	Long: `Start Flappy Dragon in the local terminal.

Controls:
  Space/Up/W  - Start, flap, play again
  Esc/Q       - Quit (from the title and game over screens)
  ?           - Toggle help (tea shell)
  Ctrl+S      - Save a text screenshot (tea shell)
  Ctrl+C      - Exit immediately

Difficulty options:
  easy   - Walls speed up and close in slowly
  normal - Config values as written
  hard   - Walls speed up and close in quickly
  fixed  - No progression, every wall is like the first

Examples:
  dragon play
  dragon play --difficulty hard
  dragon play --shell tcell --sound
  dragon play --seed 42 --config ./my-dragon.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagShell, "shell", tui.ShellName, "Terminal shell (see 'dragon shells')")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues")
	playCmd.Flags().BoolVar(&flagRecord, "record", true, "Record the session in the journal")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	shell, err := registry.Create(flagShell)
	if err != nil {
		return fmt.Errorf("%w (run 'dragon shells' to see available shells)", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("dragon", true)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session := registry.Session{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     seed,
		},
		Logger: logger,
	}

	if flagSound {
		cues, audioErr := audio.New()
		if audioErr != nil {
			logger.Warn("sound disabled", "error", audioErr)
		}
		defer cues.Close()
		session.Cues = cues
	}

	var store *journal.Store
	if flagRecord {
		store, session.Recorder = openRecording(logger, flagShell, seed, session)
		if store != nil {
			defer store.Close()
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "shell", shell.Name(), "seed", seed, "difficulty", cfg.Difficulty.Preset)
	runErr := shell.Run(ctx, session)

	if store != nil && session.Recorder.Len() > 0 {
		id, saveErr := store.Save(session.Recorder.Recording())
		if saveErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save recording: %v\n", saveErr)
		} else {
			fmt.Printf("Session recorded as #%d (dragon replay %d)\n", id, id)
		}
	}

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

// openRecording opens the journal and a recorder for the session. Failures only
// disable recording.
func openRecording(logger *log.Logger, shell string, seed int64, s registry.Session) (*journal.Store, *journal.Recorder) {
	store, err := journal.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open journal: %v\n", err)
		return nil, nil
	}
	rec, err := journal.NewRecorder(shell, seed, s.Config, 0)
	if err != nil {
		logger.Warn("recording disabled", "error", err)
		store.Close()
		return nil, nil
	}
	return store, rec
}
