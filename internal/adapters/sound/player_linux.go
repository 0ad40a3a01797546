//go:build linux

package sound

import (
	"os/exec"

	"pomo/internal/ports"
)

type soundCommand struct {
	cmd  string
	args []string
}

// playForEvent plays sounds on Linux using paplay (PulseAudio) or aplay (ALSA)
func playForEvent(eventType string) error {
	var sounds []soundCommand

	switch eventType {
	case ports.SoundEventPhaseComplete:
		sounds = []soundCommand{
			{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/complete.oga"}},
			{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/complete.wav"}},
			{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/bell.oga"}},
		}
	case ports.SoundEventStart:
		sounds = []soundCommand{
			{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/service-login.oga"}},
			{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/service-login.wav"}},
		}
	default:
		sounds = []soundCommand{
			{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/bell.oga"}},
			{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/bell.wav"}},
		}
	}

	for _, sound := range sounds {
		cmd := exec.Command(sound.cmd, sound.args...)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}

	return terminalBell()
}
