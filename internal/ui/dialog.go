package ui

import tea "github.com/charmbracelet/bubbletea"

// Dialog wraps any tea.Model content and adds the application header with a
// title above it. Init and Update delegate to the wrapped content.
type Dialog struct {
	content tea.Model
	devMode bool
	title   string
}

// NewDialog creates a new dialog wrapper around content
func NewDialog(title string, content tea.Model, devMode bool) *Dialog {
	return &Dialog{
		content: content,
		devMode: devMode,
		title:   title,
	}
}

// Init delegates to wrapped content's Init method.
func (d *Dialog) Init() tea.Cmd {
	return d.content.Init()
}

// Update delegates to wrapped content's Update method.
// The returned tea.Model is the Dialog itself with updated content.
func (d *Dialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedContent, cmd := d.content.Update(msg)
	d.content = updatedContent
	return d, cmd
}

// View prepends the dialog header to the wrapped content's view.
func (d *Dialog) View() string {
	return renderHeader(d.devMode, d.title) + d.content.View()
}

// Content returns the wrapped content for type assertion.
func (d *Dialog) Content() tea.Model {
	return d.content
}
