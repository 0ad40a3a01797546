package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"pomo/internal/config"
)

// TimerKeys controls the running session
type TimerKeys struct {
	PlayPause key.Binding
	Stop      key.Binding
}

// DurationKeys adjust the focus and break lengths while idle
type DurationKeys struct {
	BreakDecrease key.Binding
	BreakIncrease key.Binding
	FocusDecrease key.Binding
	FocusIncrease key.Binding
}

func newTimerKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) TimerKeys {
	return TimerKeys{
		PlayPause: buildBinding("play_pause", defaults, customKeys),
		Stop:      buildBinding("stop", defaults, customKeys),
	}
}

func newDurationKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) DurationKeys {
	return DurationKeys{
		BreakDecrease: buildBinding("break_decrease", defaults, customKeys),
		BreakIncrease: buildBinding("break_increase", defaults, customKeys),
		FocusDecrease: buildBinding("focus_decrease", defaults, customKeys),
		FocusIncrease: buildBinding("focus_increase", defaults, customKeys),
	}
}
