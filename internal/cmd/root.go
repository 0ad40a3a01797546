package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"pomo/internal/config"
	"pomo/internal/domain"
	"pomo/internal/logging"
	"pomo/internal/services"
	"pomo/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run       RunCmd       `cmd:"" help:"Start the pomo timer TUI (default)" default:"1"`
	Focus     FocusCmd     `cmd:"focus" help:"Run the timer without a UI, printing a status line per tick"`
	Serve     ServeCmd     `cmd:"serve" help:"Serve the timer TUI over SSH"`
	PlaySound PlaySoundCmd `cmd:"play-sound" help:"Play the phase completion sound" hidden:""`
	Settings  SettingsCmd  `cmd:"settings" help:"Manage settings (meta, set, edit, keys)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// Settings only apply when the flag is at its default and no env var is set.
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("POMO_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("POMO_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	if _, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles); err != nil {
		return err
	}

	// Create container AFTER logging is initialized
	c.Container = NewContainer(c.settings)

	return nil
}

// RunCmd starts the TUI application
type RunCmd struct {
	Break int  `help:"Break minutes (1-15; default from settings or 5)" name:"break"`
	Dev   bool `help:"Enable development mode (shows build info in the header)"`
	Focus int  `help:"Focus minutes (5-60 in steps of 5; default from settings or 25)" name:"focus"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	timerConfig, err := resolveTimerConfig(cli.settings, r.Focus, r.Break)
	if err != nil {
		return err
	}

	keysConfig, err := resolveKeys(cli.settings)
	if err != nil {
		return err
	}

	logging.Logger.Info("Starting pomo TUI",
		"focus_minutes", timerConfig.FocusMinutes,
		"break_minutes", timerConfig.BreakMinutes)

	timer := services.NewTimerService(timerConfig, cli.Container.NotificationService)
	p := tea.NewProgram(
		ui.NewModel(timer, ui.NewKeyMap(keysConfig), ui.DefaultTickInterval, r.Dev),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}

// resolveTimerConfig merges durations from flags over settings over defaults.
// Zero flags are treated as unset. Broken settings degrade to defaults with a
// warning; invalid flags are an error.
func resolveTimerConfig(settings *config.Settings, focusFlag, breakFlag int) (domain.TimerConfig, error) {
	timerConfig, err := settings.TimerConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		logging.Logger.Warn("Ignoring stored durations", "error", err)
	}

	if focusFlag != 0 {
		timerConfig.FocusMinutes = focusFlag
	}
	if breakFlag != 0 {
		timerConfig.BreakMinutes = breakFlag
	}
	if err := timerConfig.Validate(); err != nil {
		return domain.TimerConfig{}, fmt.Errorf("invalid durations: %w", err)
	}

	return timerConfig, nil
}

// resolveKeys returns the validated custom key bindings from settings
func resolveKeys(settings *config.Settings) (config.KeyBindingsConfig, error) {
	if settings == nil || settings.Keys == nil {
		return nil, nil
	}
	if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return nil, fmt.Errorf("invalid key bindings in settings.json: %w", err)
	}
	logging.Logger.Debug("Custom key bindings loaded and validated")
	return settings.Keys, nil
}
