package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"pomo/internal/domain"
	"pomo/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by category
type HelpScreen struct {
	Completed   bool
	content     string         // Pre-built help content
	height      int            // Terminal height
	initialized bool           // Track if viewport has been sized
	keys        *KeyMap        // Key bindings to display
	viewport    viewport.Model // Scrollable viewport
	width       int            // Terminal width
}

// renderShortcut renders a single shortcut line with key and description
func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

// buildHelpContent builds the complete help text content using key bindings
func buildHelpContent(keys *KeyMap) string {
	var content string

	content += theme.HelpGroupStyle.Render("Timer") + "\n"
	content += renderBinding(keys.Timer.PlayPause)
	content += renderBinding(keys.Timer.Stop)

	content += "\n" + theme.HelpGroupStyle.Render("Durations (only while stopped)") + "\n"
	content += renderBinding(keys.Durations.FocusIncrease)
	content += renderBinding(keys.Durations.FocusDecrease)
	content += renderBinding(keys.Durations.BreakIncrease)
	content += renderBinding(keys.Durations.BreakDecrease)

	content += "\n" + theme.HelpGroupStyle.Render("Application") + "\n"
	content += renderBinding(keys.Application.Help)
	content += renderBinding(keys.Application.Quit)
	content += renderBinding(keys.Application.ForceQuit)

	content += "\n" + theme.HelpGroupStyle.Render("State Indicators (read-only)") + "\n"
	content += renderShortcut(domain.SymbolFocusing, "focusing")
	content += renderShortcut(domain.SymbolOnBreak, "on break")
	content += renderShortcut(domain.SymbolPaused, "paused")

	return content
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width = msg.Width
		h.height = msg.Height

		// Dialog header: 4 lines, Footer: 2 lines
		viewportHeight := max(5, msg.Height-6)

		h.viewport.Width = msg.Width
		h.viewport.Height = viewportHeight
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || key.Matches(msg, h.keys.Application.Quit, h.keys.Application.Help) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}

	footer := theme.HelpStyle.Render("Press esc, " + h.keys.Application.Quit.Help().Key +
		" or " + h.keys.Application.Help.Help().Key + " to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n\n" + footer
}

// renderBinding renders a single shortcut line from a key binding
func renderBinding(binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(help.Key, help.Desc)
}
