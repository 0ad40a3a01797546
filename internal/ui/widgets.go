package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"pomo/internal/domain"
	"pomo/internal/theme"
)

const maxProgressWidth = 50

// renderDurationWidget renders one "Label: MM:00" row with its -/+ hints.
// Hints are dimmed while the timer refuses adjustments.
func renderDurationWidget(label string, minutes int, decrease, increase key.Binding, enabled bool) string {
	control := theme.WidgetControlStyle
	if !enabled {
		control = theme.WidgetControlDisabledStyle
	}

	return fmt.Sprintf("%s %s  %s %s",
		theme.WidgetLabelStyle.Render(label+":"),
		theme.WidgetValueStyle.Render(domain.MinutesToDuration(minutes)),
		control.Render("[-] "+decrease.Help().Key),
		control.Render("[+] "+increase.Help().Key))
}

// renderDurationWidgets renders the focus and break widgets stacked
func renderDurationWidgets(t domain.Timer, keys DurationKeys) string {
	enabled := t.CanAdjustDurations()
	return lipgloss.JoinVertical(lipgloss.Left,
		renderDurationWidget("Focus Duration", t.Config.FocusMinutes, keys.FocusDecrease, keys.FocusIncrease, enabled),
		renderDurationWidget("Break Duration", t.Config.BreakMinutes, keys.BreakDecrease, keys.BreakIncrease, enabled),
	)
}

// phaseHeadline returns e.g. "Focusing for 25:00 minutes"
func phaseHeadline(t domain.Timer) string {
	minutes := t.Config.PhaseMinutes(t.Session.Phase)
	return fmt.Sprintf("%s for %s minutes", t.Session.Phase.Label(), domain.MinutesToDuration(minutes))
}

// phaseSymbol picks the state indicator for the active session
func phaseSymbol(t domain.Timer) string {
	switch {
	case !t.Running:
		return domain.SymbolPaused
	case t.Session.Phase == domain.PhaseOnBreak:
		return domain.SymbolOnBreak
	default:
		return domain.SymbolFocusing
	}
}

// renderSessionInfo renders the active session panel body, or the idle prompt
func renderSessionInfo(t domain.Timer, bar progress.Model, playPause key.Binding) string {
	if t.Session == nil {
		return theme.IdleStyle.Render(fmt.Sprintf("Press %s to start focusing", playPause.Help().Key))
	}

	onBreak := t.Session.Phase == domain.PhaseOnBreak
	lines := []string{
		theme.PhaseStyle(onBreak).Render(phaseSymbol(t) + " " + phaseHeadline(t)),
		"",
		theme.ClockStyle.Render(domain.SecondsToDuration(t.Session.TimeRemaining)) + " remaining",
		bar.ViewAs(t.Progress / 100),
		theme.ElapsedStyle.Render("Elapsed " + domain.SecondsToDuration(t.Elapsed)),
	}
	if !t.Running {
		lines = append(lines, "", theme.PausedStyle.Render("PAUSED"))
	}
	return strings.Join(lines, "\n")
}

// newProgressBar builds a gradient bar for one phase
func newProgressBar(start, end string) progress.Model {
	return progress.New(
		progress.WithGradient(start, end),
		progress.WithoutPercentage(),
		progress.WithWidth(maxProgressWidth),
	)
}
