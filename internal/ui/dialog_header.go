package ui

import (
	"fmt"

	"pomo/internal/theme"
	"pomo/internal/version"
)

// renderHeader creates the header shared by the timer screen and dialogs.
// It displays the app name with optional build info (in dev mode) and the tagline.
// If subtitle is provided, it's rendered below the tagline.
func renderHeader(devMode bool, subtitle string) string {
	appNameLine := theme.AppNameStyle.Render("Pomo")
	if devMode {
		commit := version.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		appNameLine += theme.VersionStyle.Render(fmt.Sprintf(" %s | %s | %s | %s",
			version.Version,
			commit,
			version.Date,
			version.GoVersion))
	}

	result := appNameLine + "\n"
	result += theme.TaglineStyle.Render(version.Tagline)

	if subtitle != "" {
		result += "\n\n" + theme.SubtitleStyle.Render(subtitle)
	}

	result += "\n"
	return result
}
