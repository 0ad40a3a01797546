package domain

// Timer is the pomodoro session state machine.
//
// Every transition is a value-receiver method that returns the next Timer and
// leaves the receiver untouched, so a caller can keep the previous snapshot
// around (the UI does this to detect phase changes). Session is never mutated
// in place; transitions allocate a fresh Session instead.
type Timer struct {
	Config   TimerConfig
	Elapsed  int     // seconds counted while running, reset only by Stop
	Progress float64 // percent of the current phase already elapsed, 0-100
	Running  bool
	Session  *Session // nil when no session is active
}

// NewTimer creates an idle timer with the given durations
func NewTimer(config TimerConfig) Timer {
	return Timer{Config: config}
}

// Status reports whether the timer is idle, running or paused
func (t Timer) Status() Status {
	switch {
	case t.Session == nil:
		return StatusIdle
	case t.Running:
		return StatusRunning
	default:
		return StatusPaused
	}
}

// CanAdjustDurations reports whether the focus/break durations may change.
// Durations are frozen for as long as a session exists, paused or not.
func (t Timer) CanAdjustDurations() bool {
	return t.Session == nil && !t.Running
}

// ConfiguredSeconds returns the full length of the active phase, or 0 when idle
func (t Timer) ConfiguredSeconds() int {
	if t.Session == nil {
		return 0
	}
	return t.Config.PhaseSeconds(t.Session.Phase)
}

// Start begins a focusing session when idle, or resumes a paused one
func (t Timer) Start() Timer {
	if t.Running {
		return t
	}
	if t.Session == nil {
		t.Session = &Session{
			Phase:         PhaseFocusing,
			TimeRemaining: t.Config.PhaseSeconds(PhaseFocusing),
		}
		t.Elapsed = 0
		t.Progress = 0
	}
	t.Running = true
	return t
}

// Pause freezes a running session in place
func (t Timer) Pause() Timer {
	if !t.Running {
		return t
	}
	t.Running = false
	return t
}

// PlayPause toggles between running and paused, starting a session if needed
func (t Timer) PlayPause() Timer {
	if t.Running {
		return t.Pause()
	}
	return t.Start()
}

// Stop discards the session and resets all runtime fields
func (t Timer) Stop() Timer {
	return Timer{Config: t.Config}
}

// Tick advances a running session by one second.
// The second return value is true when the tick completed the current phase
// and swapped to the next one; callers use it to fire the completion cue.
// Ticks delivered while idle or paused are ignored.
func (t Timer) Tick() (Timer, bool) {
	if !t.Running || t.Session == nil {
		return t, false
	}

	// An exhausted countdown swaps phases without consuming a second
	if t.Session.TimeRemaining <= 0 {
		return t.nextPhase(), true
	}

	next := *t.Session
	next.TimeRemaining = max(0, next.TimeRemaining-1)
	t.Session = &next
	t.Elapsed++

	if next.TimeRemaining == 0 {
		return t.nextPhase(), true
	}

	t.Progress = t.progress()
	return t, false
}

// IncreaseFocus adds FocusStep minutes, up to MaxFocusMinutes
func (t Timer) IncreaseFocus() Timer {
	if !t.CanAdjustDurations() {
		return t
	}
	t.Config.FocusMinutes = min(MaxFocusMinutes, t.Config.FocusMinutes+FocusStep)
	return t
}

// DecreaseFocus removes FocusStep minutes, down to MinFocusMinutes
func (t Timer) DecreaseFocus() Timer {
	if !t.CanAdjustDurations() {
		return t
	}
	t.Config.FocusMinutes = max(MinFocusMinutes, t.Config.FocusMinutes-FocusStep)
	return t
}

// IncreaseBreak adds BreakStep minutes, up to MaxBreakMinutes
func (t Timer) IncreaseBreak() Timer {
	if !t.CanAdjustDurations() {
		return t
	}
	t.Config.BreakMinutes = min(MaxBreakMinutes, t.Config.BreakMinutes+BreakStep)
	return t
}

// DecreaseBreak removes BreakStep minutes, down to MinBreakMinutes
func (t Timer) DecreaseBreak() Timer {
	if !t.CanAdjustDurations() {
		return t
	}
	t.Config.BreakMinutes = max(MinBreakMinutes, t.Config.BreakMinutes-BreakStep)
	return t
}

func (t Timer) nextPhase() Timer {
	phase := t.Session.Phase.Next()
	t.Session = &Session{
		Phase:         phase,
		TimeRemaining: t.Config.PhaseSeconds(phase),
	}
	t.Progress = 0
	return t
}

func (t Timer) progress() float64 {
	configured := t.ConfiguredSeconds()
	if configured <= 0 {
		return 0
	}
	percent := 100 * float64(configured-t.Session.TimeRemaining) / float64(configured)
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}
