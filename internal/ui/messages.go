package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg is one second of countdown. id is the generation it was armed
// under; ticks from an older generation are dropped.
type tickMsg struct {
	id int
}

// tick schedules a tickMsg for generation id after interval
func tick(id int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}
