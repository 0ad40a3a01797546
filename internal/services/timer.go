package services

import (
	"sync"

	"pomo/internal/domain"
	"pomo/internal/logging"
)

// TimerService owns a single pomodoro timer and serializes every transition
// applied to it. Callers get value snapshots back and never share state.
type TimerService struct {
	mu       sync.Mutex
	notifier *NotificationService
	timer    domain.Timer
}

// NewTimerService creates an idle timer with the given durations
func NewTimerService(config domain.TimerConfig, notifier *NotificationService) *TimerService {
	return &TimerService{
		notifier: notifier,
		timer:    domain.NewTimer(config),
	}
}

// Snapshot returns the current timer state
func (s *TimerService) Snapshot() domain.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer
}

// Start begins a focus session or resumes a paused one
func (s *TimerService) Start() domain.Timer {
	return s.apply("start", domain.Timer.Start)
}

// Pause freezes the running session
func (s *TimerService) Pause() domain.Timer {
	return s.apply("pause", domain.Timer.Pause)
}

// PlayPause toggles between running and paused
func (s *TimerService) PlayPause() domain.Timer {
	return s.apply("play_pause", domain.Timer.PlayPause)
}

// Stop ends the session and returns to idle
func (s *TimerService) Stop() domain.Timer {
	return s.apply("stop", domain.Timer.Stop)
}

// IncreaseFocus lengthens the focus phase when no session exists
func (s *TimerService) IncreaseFocus() domain.Timer {
	return s.apply("focus_increase", domain.Timer.IncreaseFocus)
}

// DecreaseFocus shortens the focus phase when no session exists
func (s *TimerService) DecreaseFocus() domain.Timer {
	return s.apply("focus_decrease", domain.Timer.DecreaseFocus)
}

// IncreaseBreak lengthens the break phase when no session exists
func (s *TimerService) IncreaseBreak() domain.Timer {
	return s.apply("break_increase", domain.Timer.IncreaseBreak)
}

// DecreaseBreak shortens the break phase when no session exists
func (s *TimerService) DecreaseBreak() domain.Timer {
	return s.apply("break_decrease", domain.Timer.DecreaseBreak)
}

// Tick advances the countdown by one second. When the tick finishes a phase
// the completion cue is fired and true is returned.
func (s *TimerService) Tick() (domain.Timer, bool) {
	s.mu.Lock()
	previous := s.timer
	next, completed := previous.Tick()
	s.timer = next
	s.mu.Unlock()

	if completed {
		finished := previous.Session.Phase
		logging.Logger.Info("Phase completed",
			"phase", finished,
			"next_phase", next.Session.Phase,
			"elapsed", next.Elapsed)
		if s.notifier != nil {
			s.notifier.NotifyPhaseComplete(finished)
		}
	}

	return next, completed
}

func (s *TimerService) apply(action string, transition func(domain.Timer) domain.Timer) domain.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.timer.Status()
	s.timer = transition(s.timer)

	logging.Logger.Debug("Timer action applied",
		"action", action,
		"from", before,
		"to", s.timer.Status(),
		"focus_minutes", s.timer.Config.FocusMinutes,
		"break_minutes", s.timer.Config.BreakMinutes)

	return s.timer
}
