package services

import (
	"context"
	"time"

	"pomo/internal/domain"
	"pomo/internal/logging"
	"pomo/internal/ports"
)

// Command is a user action delivered to a running Runner
type Command int

const (
	CommandPlayPause Command = iota
	CommandStop
)

// String returns the command name used in logs
func (c Command) String() string {
	switch c {
	case CommandPlayPause:
		return "play_pause"
	case CommandStop:
		return "stop"
	default:
		return "unknown"
	}
}

// Runner drives a TimerService from a clock without a terminal UI.
// A ticker is armed only while the timer is running, so a paused session
// costs nothing and resumes on a fresh one-second boundary.
type Runner struct {
	clock           ports.Clock
	commands        chan Command
	cycles          int
	interval        time.Duration
	onPhaseComplete func(completed domain.Phase, snapshot domain.Timer)
	onTick          func(snapshot domain.Timer)
	timer           *TimerService
}

// RunnerOption configures a Runner
type RunnerOption func(*Runner)

// WithInterval overrides the one-second tick interval
func WithInterval(interval time.Duration) RunnerOption {
	return func(r *Runner) {
		if interval > 0 {
			r.interval = interval
		}
	}
}

// WithCycles makes Run return after n focus/break cycles; 0 runs forever
func WithCycles(n int) RunnerOption {
	return func(r *Runner) {
		r.cycles = max(0, n)
	}
}

// WithOnTick registers a callback invoked after every applied tick
func WithOnTick(fn func(snapshot domain.Timer)) RunnerOption {
	return func(r *Runner) {
		r.onTick = fn
	}
}

// WithOnPhaseComplete registers a callback invoked when a phase ends
func WithOnPhaseComplete(fn func(completed domain.Phase, snapshot domain.Timer)) RunnerOption {
	return func(r *Runner) {
		r.onPhaseComplete = fn
	}
}

// NewRunner creates a runner for the given timer
func NewRunner(timer *TimerService, clock ports.Clock, opts ...RunnerOption) *Runner {
	r := &Runner{
		clock:    clock,
		commands: make(chan Command),
		interval: time.Second,
		timer:    timer,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Send delivers a command to Run, blocking until it is accepted or ctx ends
func (r *Runner) Send(ctx context.Context, cmd Command) error {
	select {
	case r.commands <- cmd:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run processes ticks and commands until the session is stopped, the
// configured number of cycles completes, or ctx is cancelled. Cancellation
// is reported as ctx.Err().
func (r *Runner) Run(ctx context.Context) error {
	var ticker ports.Ticker
	var ticks <-chan time.Time

	disarm := func() {
		if ticker != nil {
			ticker.Stop()
			ticker = nil
			ticks = nil
		}
	}
	defer disarm()

	rearm := func() {
		running := r.timer.Snapshot().Running
		switch {
		case running && ticker == nil:
			ticker = r.clock.NewTicker(r.interval)
			ticks = ticker.C()
		case !running && ticker != nil:
			disarm()
		}
	}
	rearm()

	cyclesDone := 0
	for {
		select {
		case <-ctx.Done():
			logging.Logger.Debug("Runner cancelled", "error", ctx.Err())
			return ctx.Err()

		case cmd := <-r.commands:
			logging.Logger.Debug("Runner received command", "command", cmd)
			switch cmd {
			case CommandPlayPause:
				r.timer.PlayPause()
			case CommandStop:
				r.timer.Stop()
				return nil
			}
			rearm()

		case <-ticks:
			snapshot, completed := r.timer.Tick()
			if r.onTick != nil {
				r.onTick(snapshot)
			}
			if !completed {
				continue
			}

			finished := snapshot.Session.Phase.Next()
			if r.onPhaseComplete != nil {
				r.onPhaseComplete(finished, snapshot)
			}
			if finished == domain.PhaseOnBreak {
				cyclesDone++
				if r.cycles > 0 && cyclesDone >= r.cycles {
					logging.Logger.Info("Runner finished requested cycles", "cycles", cyclesDone)
					r.timer.Stop()
					return nil
				}
			}
		}
	}
}
