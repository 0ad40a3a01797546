package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"pomo/internal/config"
)

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Durations   DurationKeys
	Timer       TimerKeys
}

// NewKeyMap creates a new KeyMap with all key bindings initialized.
// Pass nil for customKeys to use default bindings.
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Application: newApplicationKeys(defaults, customKeys),
		Durations:   newDurationKeys(defaults, customKeys),
		Timer:       newTimerKeys(defaults, customKeys),
	}
}

// ShortHelp returns a curated list of key bindings for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Timer.PlayPause,
		k.Timer.Stop,
		k.Application.Help,
		k.Application.Quit,
	}
}

// FullHelp returns every binding grouped by context
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Timer.PlayPause, k.Timer.Stop},
		{k.Durations.FocusIncrease, k.Durations.FocusDecrease, k.Durations.BreakIncrease, k.Durations.BreakDecrease},
		{k.Application.Help, k.Application.Quit, k.Application.ForceQuit},
	}
}
