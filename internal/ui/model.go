package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pomo/internal/domain"
	"pomo/internal/logging"
	"pomo/internal/services"
	"pomo/internal/theme"
)

type uiState int

const (
	stateTimer uiState = iota
	stateHelp
)

// DefaultTickInterval is one countdown second
const DefaultTickInterval = time.Second

type Model struct {
	breakBar       progress.Model         // Progress bar used while on break
	devMode        bool                   // Development mode (shows build info in headers)
	focusBar       progress.Model         // Progress bar used while focusing
	height         int
	help           help.Model             // Short help bar
	helpScreen     *Dialog                // Help screen dialog
	keys           KeyMap                 // Keyboard shortcuts
	state          uiState
	tickGeneration int                    // Bumped on every arm/disarm; stale ticks are dropped
	tickInterval   time.Duration
	timer          *services.TimerService // Owned timer state machine
	width          int
}

// NewModel creates the timer screen for the given timer service
func NewModel(
	timer *services.TimerService,
	keys KeyMap,
	tickInterval time.Duration,
	devMode bool,
) *Model {
	if tickInterval <= 0 {
		tickInterval = DefaultTickInterval
	}

	return &Model{
		breakBar:     newProgressBar(theme.ProgressBreakStart, theme.ProgressBreakEnd),
		devMode:      devMode,
		focusBar:     newProgressBar(theme.ProgressFocusingStart, theme.ProgressFocusingEnd),
		help:         help.New(),
		keys:         keys,
		state:        stateTimer,
		tickInterval: tickInterval,
		timer:        timer,
	}
}

func (m *Model) Init() tea.Cmd {
	// A timer handed over already running keeps counting
	if m.timer.Snapshot().Running {
		return m.rearm()
	}
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Ticks keep the countdown moving whichever screen is showing
	if msg, ok := msg.(tickMsg); ok {
		return m, m.handleTick(msg)
	}

	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		barWidth := min(maxProgressWidth, max(10, msg.Width-8))
		m.focusBar.Width = barWidth
		m.breakBar.Width = barWidth
	}

	switch m.state {
	case stateHelp:
		return m.updateHelp(msg)
	default:
		return m.updateTimer(msg)
	}
}

func (m *Model) updateTimer(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Application.ForceQuit, m.keys.Application.Quit):
		logging.Logger.Info("Quitting timer UI")
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Application.Help):
		contentForm := NewHelpScreen(&m.keys)
		m.helpScreen = NewDialog("Help", contentForm, m.devMode)
		m.state = stateHelp
		// Send initial WindowSizeMsg so viewport can initialize
		initCmd := m.helpScreen.Init()
		updatedDialog, sizeCmd := m.helpScreen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		m.helpScreen = updatedDialog.(*Dialog)
		return m, tea.Batch(initCmd, sizeCmd)

	case key.Matches(keyMsg, m.keys.Timer.PlayPause):
		m.timer.PlayPause()
		return m, m.rearm()

	case key.Matches(keyMsg, m.keys.Timer.Stop):
		m.timer.Stop()
		return m, m.rearm()

	case key.Matches(keyMsg, m.keys.Durations.FocusIncrease):
		m.timer.IncreaseFocus()
	case key.Matches(keyMsg, m.keys.Durations.FocusDecrease):
		m.timer.DecreaseFocus()
	case key.Matches(keyMsg, m.keys.Durations.BreakIncrease):
		m.timer.IncreaseBreak()
	case key.Matches(keyMsg, m.keys.Durations.BreakDecrease):
		m.timer.DecreaseBreak()
	}

	return m, nil
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Application.ForceQuit) {
		return m, tea.Quit
	}

	// Delegate to dialog (it handles close keys internally)
	updated, cmd := m.helpScreen.Update(msg)
	m.helpScreen = updated.(*Dialog)

	if content, ok := m.helpScreen.Content().(*HelpScreen); ok && content.Completed {
		m.state = stateTimer
		m.helpScreen = nil
		return m, nil
	}

	return m, cmd
}

// handleTick applies a tick from the current generation and schedules the next
func (m *Model) handleTick(msg tickMsg) tea.Cmd {
	if msg.id != m.tickGeneration {
		logging.Logger.Debug("Dropping stale tick", "tick_id", msg.id, "generation", m.tickGeneration)
		return nil
	}

	snapshot, _ := m.timer.Tick()
	if !snapshot.Running {
		return nil
	}
	return tick(m.tickGeneration, m.tickInterval)
}

// rearm starts a new tick generation, scheduling a tick only while running.
// Any tick still in flight from the previous generation is invalidated.
func (m *Model) rearm() tea.Cmd {
	m.tickGeneration++
	if !m.timer.Snapshot().Running {
		return nil
	}
	return tick(m.tickGeneration, m.tickInterval)
}

// Timer returns the current timer snapshot
func (m *Model) Timer() domain.Timer {
	return m.timer.Snapshot()
}

func (m *Model) View() string {
	if m.state == stateHelp && m.helpScreen != nil {
		return m.helpScreen.View()
	}

	snapshot := m.timer.Snapshot()
	bar := m.focusBar
	if snapshot.Session != nil && snapshot.Session.Phase == domain.PhaseOnBreak {
		bar = m.breakBar
	}

	view := renderHeader(m.devMode, "") + "\n"
	view += theme.PanelStyle.Render(renderSessionInfo(snapshot, bar, m.keys.Timer.PlayPause)) + "\n\n"
	view += renderDurationWidgets(snapshot, m.keys.Durations) + "\n"
	view += lipgloss.NewStyle().PaddingTop(1).Render(m.help.View(m.keys))
	return view
}
