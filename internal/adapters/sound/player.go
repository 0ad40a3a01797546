package sound

import (
	"fmt"
	"io"
	"os"

	"pomo/internal/ports"
)

// Player implements ports.SoundPlayer using the platform's audio tools
type Player struct{}

// NewPlayer creates a new sound player
func NewPlayer() *Player {
	return &Player{}
}

// PlaySound plays the phase completion sound
func (p *Player) PlaySound() error {
	return p.PlaySoundForEvent(ports.SoundEventPhaseComplete)
}

// PlaySoundForEvent plays different sounds based on the event type.
// Platform-specific implementations are in player_*.go files with build tags.
func (p *Player) PlaySoundForEvent(eventType string) error {
	return playForEvent(eventType)
}

// BellPlayer rings the terminal bell on a writer. Used for SSH sessions where
// the audio device belongs to the client, not the server.
type BellPlayer struct {
	out io.Writer
}

// NewBellPlayer creates a bell player writing to out
func NewBellPlayer(out io.Writer) *BellPlayer {
	return &BellPlayer{out: out}
}

// PlaySound rings the bell
func (b *BellPlayer) PlaySound() error {
	return b.PlaySoundForEvent(ports.SoundEventPhaseComplete)
}

// PlaySoundForEvent rings the bell regardless of event type
func (b *BellPlayer) PlaySoundForEvent(eventType string) error {
	if _, err := io.WriteString(b.out, "\a"); err != nil {
		return fmt.Errorf("failed to ring bell: %w", err)
	}
	return nil
}

// MutedPlayer discards every sound request
type MutedPlayer struct{}

// PlaySound does nothing
func (MutedPlayer) PlaySound() error { return nil }

// PlaySoundForEvent does nothing
func (MutedPlayer) PlaySoundForEvent(string) error { return nil }

// terminalBell outputs a terminal bell character as fallback
func terminalBell() error {
	_, err := fmt.Fprint(os.Stdout, "\a")
	return err
}
