package version

import "fmt"

// Tagline is the application's tagline used in help text and dialog headers
const Tagline = "Focus in blocks, rest in between"

// Build information injected at build time via ldflags
// Example: -ldflags="-X pomo/internal/version.Version=v1.0.0"
var (
	Version   = "dev"     // Semantic version or "dev"
	Commit    = "unknown" // Git commit hash
	Date      = "unknown" // Build date (RFC3339)
	GoVersion = "unknown" // Go version used
)

// Info returns formatted version information
func Info() string {
	return fmt.Sprintf("pomo %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, GoVersion)
}
