package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-dragon/internal/journal"
	"github.com/vovakirdan/flappy-dragon/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeRecord bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Flappy Dragon SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own independent game. Sessions do not
share anything; this is not multiplayer. Sessions are recorded in the
journal unless --record=false is given.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.dragon/host_key

Examples:
  dragon serve                           # Listen on :23234 with auto-generated key
  dragon serve --ssh :2222               # Listen on port 2222
  dragon serve --host-key ./my_host_key  # Use specific host key
  dragon serve --difficulty hard         # Every session plays on hard

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().BoolVar(&flagServeRecord, "record", true, "Record sessions in the journal")
}

func runServe(cmd *cobra.Command, _ []string) error {
	gameCfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("dragon-ssh", false)
	if err != nil {
		return err
	}
	defer closeLog()

	var store *journal.Store
	if flagServeRecord {
		store, err = journal.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open journal, sessions will not be recorded", "error", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		Game:        gameCfg,
	}

	server, err := tui.NewSSHServer(cfg, store, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting Flappy Dragon SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.ListenAndServe(ctx)
}
