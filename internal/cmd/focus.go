package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"pomo/internal/domain"
	"pomo/internal/logging"
	"pomo/internal/services"
	"pomo/internal/theme"
)

// FocusCmd runs the timer without a UI
type FocusCmd struct {
	Break        int           `help:"Break minutes (1-15; default from settings or 5)" name:"break"`
	Cycles       int           `help:"Stop after this many focus/break cycles (0 = until stopped)" default:"0"`
	Focus        int           `help:"Focus minutes (5-60 in steps of 5; default from settings or 25)" name:"focus"`
	TickInterval time.Duration `help:"Length of one countdown second" default:"1s" hidden:""`
}

// Run executes the headless timer until stopped, cancelled or done
func (f *FocusCmd) Run(cli *CLI) error {
	timerConfig, err := resolveTimerConfig(cli.settings, f.Focus, f.Break)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := os.Stdout
	cycles := 0
	timer := services.NewTimerService(timerConfig, cli.Container.NotificationService)
	runner := services.NewRunner(timer, cli.Container.Clock,
		services.WithInterval(f.TickInterval),
		services.WithCycles(f.Cycles),
		services.WithOnTick(func(snapshot domain.Timer) {
			fmt.Fprintln(out, statusLine(snapshot))
		}),
		services.WithOnPhaseComplete(func(completed domain.Phase, snapshot domain.Timer) {
			if completed == domain.PhaseOnBreak {
				cycles++
			}
			fmt.Fprintln(out, phaseCompleteLine(completed, snapshot))
		}),
	)

	logging.Logger.Info("Starting headless timer",
		"focus_minutes", timerConfig.FocusMinutes,
		"break_minutes", timerConfig.BreakMinutes,
		"cycles", f.Cycles,
		"tick_interval", f.TickInterval.String())

	fmt.Fprintln(out, statusLine(timer.Start()))
	go readCommands(ctx, os.Stdin, runner)

	err = runner.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	fmt.Fprintf(out, "Done: %d cycle(s) completed\n", cycles)
	return nil
}

// readCommands forwards lines typed on in to the runner: "p" toggles
// play/pause and "s" stops. Anything else is ignored.
func readCommands(ctx context.Context, in io.Reader, runner *services.Runner) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		var command services.Command
		switch strings.TrimSpace(scanner.Text()) {
		case "p":
			command = services.CommandPlayPause
		case "s":
			command = services.CommandStop
		default:
			continue
		}
		if err := runner.Send(ctx, command); err != nil {
			return
		}
	}
}

// statusLine renders one headless progress line
func statusLine(t domain.Timer) string {
	if t.Session == nil {
		return theme.IdleStyle.Render("idle")
	}

	onBreak := t.Session.Phase == domain.PhaseOnBreak
	symbol := domain.SymbolFocusing
	switch {
	case !t.Running:
		symbol = domain.SymbolPaused
	case onBreak:
		symbol = domain.SymbolOnBreak
	}

	line := fmt.Sprintf("%s %-8s %s remaining  %3.0f%%  elapsed %s",
		symbol,
		t.Session.Phase.Label(),
		domain.SecondsToDuration(t.Session.TimeRemaining),
		t.Progress,
		domain.SecondsToDuration(t.Elapsed))
	if !t.Running {
		line += "  PAUSED"
	}
	return theme.PhaseStyle(onBreak).Render(line)
}

// phaseCompleteLine announces a finished phase and what comes next
func phaseCompleteLine(completed domain.Phase, next domain.Timer) string {
	return fmt.Sprintf("%s complete, %s for %s minutes",
		completed.Label(),
		next.Session.Phase.Label(),
		domain.MinutesToDuration(next.Config.PhaseMinutes(next.Session.Phase)))
}
