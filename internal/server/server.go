package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"

	"pomo/internal/config"
	"pomo/internal/domain"
	"pomo/internal/logging"
	"pomo/internal/paths"
)

// ShutdownTimeout bounds how long Shutdown waits for open sessions
const ShutdownTimeout = 30 * time.Second

// Config holds everything a server needs to host timers
type Config struct {
	AuthorizedKeysPath string
	Host               string
	Keys               config.KeyBindingsConfig
	Port               string
	SoundEnabled       bool
	TickInterval       time.Duration
	Timer              domain.TimerConfig
}

// Server hosts one independent pomodoro timer per SSH connection
type Server struct {
	config     Config
	wishServer *ssh.Server
}

// NewServer creates a new SSH server instance
func NewServer(cfg Config) (*Server, error) {
	if cfg.AuthorizedKeysPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.AuthorizedKeysPath = filepath.Join(homeDir, ".ssh", "authorized_keys")
	}

	s := &Server{config: cfg}

	sshDir := paths.GetSSHDir()
	if err := os.MkdirAll(sshDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}

	// Middleware executes in reverse order (last to first)
	wishServer, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(cfg.Host, cfg.Port)),
		wish.WithHostKeyPath(filepath.Join(sshDir, "id_ed25519")),
		wish.WithPublicKeyAuth(s.publicKeyHandler),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(), // Require PTY
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Addr returns the configured listen address
func (s *Server) Addr() string {
	return net.JoinHostPort(s.config.Host, s.config.Port)
}

// ListenAndServe blocks until the server stops. A server closed through
// Shutdown returns nil.
func (s *Server) ListenAndServe() error {
	logging.Logger.Info("Starting SSH server", "address", s.Addr())
	if err := s.wishServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("SSH server error: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for open sessions
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Logger.Info("Shutting down SSH server")
	if err := s.wishServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}
	logging.Logger.Info("SSH server stopped")
	return nil
}
