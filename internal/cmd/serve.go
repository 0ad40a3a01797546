package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"pomo/internal/config"
	"pomo/internal/logging"
	"pomo/internal/server"
	"pomo/internal/ui"
)

// ServeCmd hosts the timer TUI over SSH
type ServeCmd struct {
	AuthorizedKeys string `help:"Path to the authorized_keys file (default ~/.ssh/authorized_keys)" name:"authorized-keys"`
	Break          int    `help:"Break minutes (1-15; default from settings or 5)" name:"break"`
	Focus          int    `help:"Focus minutes (5-60 in steps of 5; default from settings or 25)" name:"focus"`
	Host           string `help:"Address to listen on (default from settings or localhost)"`
	Port           string `help:"Port to listen on (default from settings or 23235)"`
}

// Run starts the SSH server and blocks until interrupted
func (s *ServeCmd) Run(cli *CLI) error {
	timerConfig, err := resolveTimerConfig(cli.settings, s.Focus, s.Break)
	if err != nil {
		return err
	}

	keysConfig, err := resolveKeys(cli.settings)
	if err != nil {
		return err
	}

	host, port := resolveListenAddress(cli.settings, s.Host, s.Port)
	srv, err := server.NewServer(server.Config{
		AuthorizedKeysPath: s.AuthorizedKeys,
		Host:               host,
		Keys:               keysConfig,
		Port:               port,
		SoundEnabled:       cli.settings.IsSoundEnabled(),
		TickInterval:       ui.DefaultTickInterval,
		Timer:              timerConfig,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		fmt.Printf("SSH server listening on %s\n", srv.Addr())
		return srv.ListenAndServe()
	})

	g.Go(func() error {
		<-ctx.Done()
		logging.Logger.Debug("Stop requested", "cause", context.Cause(ctx))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Println("SSH server stopped")
	return nil
}

// resolveListenAddress merges flags over settings over defaults
func resolveListenAddress(settings *config.Settings, hostFlag, portFlag string) (string, string) {
	host, port := config.DefaultSSHHost, config.DefaultSSHPort
	if settings != nil {
		if settings.SSHHost != "" {
			host = settings.SSHHost
		}
		if settings.SSHPort != "" {
			port = settings.SSHPort
		}
	}
	if hostFlag != "" {
		host = hostFlag
	}
	if portFlag != "" {
		port = portFlag
	}
	return host, port
}
