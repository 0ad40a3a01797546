package domain

// Phase represents which half of the pomodoro cycle a session is in
type Phase string

const (
	PhaseFocusing Phase = "Focusing"
	PhaseOnBreak  Phase = "On Break"
)

// Phase symbols (Unicode)
const (
	SymbolFocusing = "●" // Red - focusing
	SymbolOnBreak  = "○" // Green - on break
	SymbolPaused   = "◐" // Yellow - paused
)

// Next returns the phase that follows p. Phases strictly alternate.
func (p Phase) Next() Phase {
	if p == PhaseFocusing {
		return PhaseOnBreak
	}
	return PhaseFocusing
}

// Label returns the human readable phase name
func (p Phase) Label() string {
	return string(p)
}

// Session is a single active phase with its countdown
type Session struct {
	Phase         Phase
	TimeRemaining int // seconds, never negative
}

// Status is the coarse state of the timer state machine
type Status string

const (
	StatusIdle    Status = "idle"
	StatusPaused  Status = "paused"
	StatusRunning Status = "running"
)
