package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomo/internal/config"
	"pomo/internal/domain"
	"pomo/internal/services"
)

func newTestModel(t *testing.T, customKeys config.KeyBindingsConfig) *Model {
	t.Helper()
	timer := services.NewTimerService(domain.TimerConfig{FocusMinutes: 5, BreakMinutes: 1}, nil)
	m := NewModel(timer, NewKeyMap(customKeys), time.Millisecond, false)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	return m
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_PlayStartsTicking(t *testing.T) {
	m := newTestModel(t, nil)

	_, cmd := m.Update(keyPress("p"))

	require.NotNil(t, cmd)
	snapshot := m.Timer()
	assert.Equal(t, domain.StatusRunning, snapshot.Status())
	assert.Equal(t, domain.PhaseFocusing, snapshot.Session.Phase)
	assert.Equal(t, 300, snapshot.Session.TimeRemaining)
}

func TestModel_TickAdvancesAndReschedules(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(keyPress("p"))

	_, cmd := m.Update(tickMsg{id: m.tickGeneration})

	assert.NotNil(t, cmd)
	assert.Equal(t, 299, m.Timer().Session.TimeRemaining)
	assert.Equal(t, 1, m.Timer().Elapsed)
}

func TestModel_StaleTicksAreDropped(t *testing.T) {
	m := newTestModel(t, nil)

	m.Update(keyPress("p"))
	firstGeneration := m.tickGeneration
	m.Update(keyPress("p")) // pause
	_, cmd := m.Update(keyPress("p")) // resume
	require.NotNil(t, cmd)

	_, cmd = m.Update(tickMsg{id: firstGeneration})
	assert.Nil(t, cmd)
	assert.Equal(t, 300, m.Timer().Session.TimeRemaining)

	m.Update(tickMsg{id: m.tickGeneration})
	assert.Equal(t, 299, m.Timer().Session.TimeRemaining)
}

func TestModel_PauseStopsTickChain(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(keyPress("p"))

	_, cmd := m.Update(keyPress("p"))
	assert.Nil(t, cmd)
	assert.Equal(t, domain.StatusPaused, m.Timer().Status())

	_, cmd = m.Update(tickMsg{id: m.tickGeneration})
	assert.Nil(t, cmd)
	assert.Equal(t, 300, m.Timer().Session.TimeRemaining)
}

func TestModel_StopResets(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(keyPress("p"))
	m.Update(tickMsg{id: m.tickGeneration})
	generation := m.tickGeneration

	_, cmd := m.Update(keyPress("s"))

	assert.Nil(t, cmd)
	assert.Greater(t, m.tickGeneration, generation)
	snapshot := m.Timer()
	assert.Nil(t, snapshot.Session)
	assert.Equal(t, 0, snapshot.Elapsed)
	assert.False(t, snapshot.Running)
}

func TestModel_FullPhaseSwitchesToBreak(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(keyPress("p"))

	for range 300 {
		m.Update(tickMsg{id: m.tickGeneration})
	}

	snapshot := m.Timer()
	assert.Equal(t, domain.PhaseOnBreak, snapshot.Session.Phase)
	assert.Equal(t, 60, snapshot.Session.TimeRemaining)
	assert.Equal(t, 300, snapshot.Elapsed)
	assert.Contains(t, m.View(), "On Break for 01:00 minutes")
}

func TestModel_DurationKeys(t *testing.T) {
	tests := []struct {
		name          string
		key           tea.KeyMsg
		expectedFocus int
		expectedBreak int
	}{
		{"focus up", keyPress("k"), 10, 1},
		{"focus up arrow", tea.KeyMsg{Type: tea.KeyUp}, 10, 1},
		{"focus down clamps", keyPress("j"), 5, 1},
		{"break up", keyPress("l"), 5, 2},
		{"break down clamps", tea.KeyMsg{Type: tea.KeyLeft}, 5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, nil)

			m.Update(tt.key)

			assert.Equal(t, tt.expectedFocus, m.Timer().Config.FocusMinutes)
			assert.Equal(t, tt.expectedBreak, m.Timer().Config.BreakMinutes)
		})
	}
}

func TestModel_DurationKeysIgnoredDuringSession(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(keyPress("p"))
	m.Update(keyPress("p")) // paused still counts as a session

	m.Update(keyPress("k"))
	m.Update(keyPress("l"))

	assert.Equal(t, 5, m.Timer().Config.FocusMinutes)
	assert.Equal(t, 1, m.Timer().Config.BreakMinutes)
}

func TestModel_HelpScreen(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(keyPress("p"))

	m.Update(keyPress("?"))
	require.Equal(t, stateHelp, m.state)
	assert.Contains(t, m.View(), "Durations (only while stopped)")

	// Countdown continues behind the help screen
	m.Update(tickMsg{id: m.tickGeneration})
	assert.Equal(t, 299, m.Timer().Session.TimeRemaining)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stateTimer, m.state)
	assert.Nil(t, m.helpScreen)
}

func TestModel_Quit(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
	}{
		{"q", keyPress("q")},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, nil)

			_, cmd := m.Update(tt.key)

			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestModel_CustomKeyBindings(t *testing.T) {
	m := newTestModel(t, config.KeyBindingsConfig{"play_pause": {"enter"}})

	m.Update(keyPress("p"))
	assert.Equal(t, domain.StatusIdle, m.Timer().Status())

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, domain.StatusRunning, m.Timer().Status())
}

func TestModel_View(t *testing.T) {
	m := newTestModel(t, nil)

	idle := m.View()
	assert.Contains(t, idle, "Press space/p to start focusing")
	assert.Contains(t, idle, "Focus Duration: 05:00")
	assert.Contains(t, idle, "Break Duration: 01:00")

	m.Update(keyPress("p"))
	m.Update(tickMsg{id: m.tickGeneration})
	running := m.View()
	assert.Contains(t, running, "Focusing for 05:00 minutes")
	assert.Contains(t, running, "04:59 remaining")
	assert.Contains(t, running, "Elapsed 00:01")
	assert.NotContains(t, running, "PAUSED")

	m.Update(keyPress("p"))
	assert.Contains(t, m.View(), "PAUSED")
}

func TestModel_InitResumesRunningTimer(t *testing.T) {
	timer := services.NewTimerService(domain.DefaultTimerConfig(), nil)
	assert.Nil(t, NewModel(timer, NewKeyMap(nil), 0, false).Init())

	timer.Start()
	m := NewModel(timer, NewKeyMap(nil), 0, false)
	assert.NotNil(t, m.Init())
	assert.Equal(t, DefaultTickInterval, m.tickInterval)
}
