package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/maze3d/internal/core"
	"github.com/vovakirdan/maze3d/internal/registry"
	"github.com/vovakirdan/maze3d/internal/storage"
)

// GameFactory builds an independent game for one session.
type GameFactory func(logger *log.Logger) registry.Game

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., "0.0.0.0:2222").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.maze3d/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// NewGame creates the game for each session. When nil, the game
	// registered under GameID is used with its defaults.
	NewGame GameFactory
	GameID  string

	// Store persists runs; nil disables persistence.
	Store *storage.Store

	Difficulty string
	TickRate   int
	HoldTicks  int
	Seed       int64 // 0 means a fresh seed per session unless FixedSeed
	FixedSeed  bool
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     "0.0.0.0:2222",
		IdleTimeout: 30 * time.Minute,
		GameID:      "maze3d",
		Difficulty:  "normal",
		TickRate:    60,
		HoldTicks:   DefaultHoldTicks,
	}
}

// SSHServer wraps a Wish SSH server that runs one maze per session.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	logger *log.Logger
}

// registryFactory builds sessions from the game registered under id.
// Registration only happens in init, so a game found here stays found.
func registryFactory(id string) (GameFactory, error) {
	if !registry.Exists(id) {
		return nil, fmt.Errorf("tui: unknown game %q", id)
	}
	return func(*log.Logger) registry.Game {
		g, err := registry.Create(id)
		if err != nil {
			panic(fmt.Sprintf("tui: %v", err))
		}
		return g
	}, nil
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if cfg.NewGame == nil {
		f, err := registryFactory(cfg.GameID)
		if err != nil {
			return nil, err
		}
		cfg.NewGame = f
	}
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "maze3d-ssh",
		})
	}

	srv := &SSHServer{
		config: cfg,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".maze3d", "host_key")
	}

	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// sessionSeed picks the base seed for a new session.
func sessionSeed(cfg SSHServerConfig) int64 {
	if cfg.FixedSeed || cfg.Seed != 0 {
		return cfg.Seed
	}
	return time.Now().UnixNano()
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:   pty.Window.Width,
		ScreenH:   pty.Window.Height,
		TickRate:  s.config.TickRate,
		Seed:      sessionSeed(s.config),
		FixedSeed: true,
	}

	sessionLog := s.logger.With("user", sess.User())
	model := NewModel(s.config.NewGame(sessionLog), cfg, Options{
		Recorder:  storage.NewRecorder(s.config.Store, sess.User(), s.config.Difficulty, sessionLog),
		HoldTicks: s.config.HoldTicks,
		Logger:    sessionLog,
	})

	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		next(sess)
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until SIGINT or SIGTERM.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
		s.logger.Info("shutting down...")
		return s.Shutdown()
	case err := <-errCh:
		s.logger.Error("server error", "err", err)
		return err
	}
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
