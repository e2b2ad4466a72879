package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/journal"
	"github.com/vovakirdan/flappy-dragon/internal/registry"
)

// SSHShellName tags recordings made over SSH.
const SSHShellName = "ssh"

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.dragon/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the render rate of every session.
	TickRate int

	// Game is the configuration every session plays with.
	Game config.DragonConfig
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		TickRate:    DefaultTickRate,
		Game:        config.DefaultDragonConfig(),
	}
}

// SSHServer wraps a Wish SSH server. Every session gets its own game; sessions
// never share state.
type SSHServer struct {
	config   SSHServerConfig
	server   *ssh.Server
	store    *journal.Store // Optional
	logger   *log.Logger
	sessions atomic.Int64
}

// NewSSHServer creates a new SSH server. store may be nil, in which case
// sessions are not journaled.
func NewSSHServer(cfg SSHServerConfig, store *journal.Store, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "dragon-ssh",
		})
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("tui: cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".dragon", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if err := os.MkdirAll(hostKeyDir, 0o700); err != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", err)
	}

	// Middlewares run last to first: logging wraps the whole session.
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea model for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}

	session := s.newSession(sess.User(), pty.Window.Width, pty.Window.Height)
	if session.Recorder != nil {
		go s.saveOnClose(sess.Context(), sess.User(), session.Recorder)
	}

	return NewModel(session), []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// newSession builds the game session for one connection. Every connection gets
// its own seed and, when the journal is open, its own recorder.
func (s *SSHServer) newSession(user string, width, height int) registry.Session {
	session := registry.Session{
		Config: s.config.Game,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: s.config.TickRate,
			Seed:     time.Now().UnixNano(),
		},
		Logger: s.logger.With("user", user),
	}

	if s.store != nil {
		rec, err := journal.NewRecorder(SSHShellName, session.Runtime.Seed, session.Config, 0)
		if err != nil {
			s.logger.Warn("session will not be recorded", "user", user, "error", err)
		} else {
			session.Recorder = rec
		}
	}
	return session
}

// saveOnClose stores the session recording once the connection goes away.
func (s *SSHServer) saveOnClose(ctx context.Context, user string, rec *journal.Recorder) {
	<-ctx.Done()
	if rec.Len() == 0 {
		return
	}
	id, err := s.store.Save(rec.Recording())
	if err != nil {
		s.logger.Error("cannot save recording", "user", user, "error", err)
		return
	}
	s.logger.Info("session recorded", "user", user, "recording", id, "frames", rec.Len())
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		active := s.sessions.Add(1)
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
			"active", active,
		)
		next(sess)
		active = s.sessions.Add(-1)
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
			"active", active,
		)
	}
}

// ListenAndServe starts the SSH server and blocks until ctx is cancelled.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("tui: ssh server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// ActiveSessions returns the number of connected sessions.
func (s *SSHServer) ActiveSessions() int64 {
	return s.sessions.Load()
}
