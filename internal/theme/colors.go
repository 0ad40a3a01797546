package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "203" // Tomato - app name, titles
	ColorSecondary Color = "86"  // Cyan - subtitles
)

// Phase colors
const (
	ColorBreak    Color = "42"  // Green - on break
	ColorFocusing Color = "203" // Tomato - focusing
	ColorPaused   Color = "3"   // Yellow - paused
	ColorIdle     Color = "8"   // Gray - no session
)

// Progress bar gradients (hex, required by bubbles/progress)
const (
	ProgressBreakEnd      = "#5AF78E"
	ProgressBreakStart    = "#2E8B57"
	ProgressFocusingEnd   = "#FF7F50"
	ProgressFocusingStart = "#FF4B4B"
)

// UI semantic colors
const (
	ColorDisabled  Color = "238" // Dark gray - locked controls
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorBorder    Color = "237"
	ColorHelpGroup Color = "141" // Purple
)
