//go:build darwin

package sound

import (
	"os/exec"

	"pomo/internal/ports"
)

// playForEvent plays sounds on macOS using afplay
func playForEvent(eventType string) error {
	var soundFiles []string

	switch eventType {
	case ports.SoundEventPhaseComplete:
		soundFiles = []string{
			"/System/Library/Sounds/Glass.aiff",
			"/System/Library/Sounds/Hero.aiff",
		}
	case ports.SoundEventStart:
		soundFiles = []string{
			"/System/Library/Sounds/Submarine.aiff",
			"/System/Library/Sounds/Purr.aiff",
		}
	default:
		soundFiles = []string{"/System/Library/Sounds/Glass.aiff"}
	}

	// Start (not Run) so the caller never waits for playback to finish
	for _, soundFile := range soundFiles {
		cmd := exec.Command("afplay", soundFile)
		if err := cmd.Start(); err == nil {
			return nil
		}
	}

	return terminalBell()
}
