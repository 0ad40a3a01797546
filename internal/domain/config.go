package domain

import "fmt"

// Duration bounds in minutes
const (
	DefaultBreakMinutes = 5
	DefaultFocusMinutes = 25

	BreakStep       = 1
	MaxBreakMinutes = 15
	MinBreakMinutes = 1

	FocusStep       = 5
	MaxFocusMinutes = 60
	MinFocusMinutes = 5
)

// TimerConfig holds the configured phase durations
type TimerConfig struct {
	BreakMinutes int
	FocusMinutes int
}

// DefaultTimerConfig returns the 25/5 classic pomodoro configuration
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		BreakMinutes: DefaultBreakMinutes,
		FocusMinutes: DefaultFocusMinutes,
	}
}

// Validate checks both durations against their allowed domains.
// Focus must be a multiple of FocusStep within [MinFocusMinutes, MaxFocusMinutes].
func (c TimerConfig) Validate() error {
	if c.FocusMinutes < MinFocusMinutes || c.FocusMinutes > MaxFocusMinutes || c.FocusMinutes%FocusStep != 0 {
		return fmt.Errorf("%w: %d (must be %d-%d in steps of %d)",
			ErrFocusOutOfRange, c.FocusMinutes, MinFocusMinutes, MaxFocusMinutes, FocusStep)
	}
	if c.BreakMinutes < MinBreakMinutes || c.BreakMinutes > MaxBreakMinutes {
		return fmt.Errorf("%w: %d (must be %d-%d)",
			ErrBreakOutOfRange, c.BreakMinutes, MinBreakMinutes, MaxBreakMinutes)
	}
	return nil
}

// PhaseMinutes returns the configured length of a phase in minutes
func (c TimerConfig) PhaseMinutes(phase Phase) int {
	if phase == PhaseFocusing {
		return c.FocusMinutes
	}
	return c.BreakMinutes
}

// PhaseSeconds returns the configured length of a phase in seconds
func (c TimerConfig) PhaseSeconds(phase Phase) int {
	return c.PhaseMinutes(phase) * 60
}
