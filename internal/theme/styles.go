package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Timer display styles
var (
	ClockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight)

	ElapsedStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	IdleStyle = lipgloss.NewStyle().
			Foreground(ColorIdle).
			Italic(true)

	PausedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPaused)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)
)

// Duration widget styles
var (
	WidgetControlDisabledStyle = lipgloss.NewStyle().
					Foreground(ColorDisabled)

	WidgetControlStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	WidgetLabelStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle)

	WidgetValueStyle = lipgloss.NewStyle().
				Foreground(ColorNormal).
				Bold(true)
)

// PhaseStyle returns the style for the phase headline
func PhaseStyle(onBreak bool) lipgloss.Style {
	color := ColorFocusing
	if onBreak {
		color = ColorBreak
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color)
}

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(20)
)
