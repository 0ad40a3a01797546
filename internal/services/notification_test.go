package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomo/internal/domain"
	"pomo/internal/ports"
	portsmocks "pomo/internal/ports/mocks"
)

// newSyncNotificationService runs cues inline so expectations are met
// before the call returns
func newSyncNotificationService(player ports.SoundPlayer) *NotificationService {
	service := NewNotificationService(player)
	service.dispatch = func(f func()) { f() }
	return service
}

func TestNotifyPhaseComplete_PlaysCompletionCue(t *testing.T) {
	soundPlayer := portsmocks.NewMockSoundPlayer(t)
	soundPlayer.EXPECT().PlaySoundForEvent(ports.SoundEventPhaseComplete).Return(nil)

	service := newSyncNotificationService(soundPlayer)

	service.NotifyPhaseComplete(domain.PhaseFocusing)
}

func TestNotifyPhaseComplete_SwallowsPlayerError(t *testing.T) {
	soundPlayer := portsmocks.NewMockSoundPlayer(t)
	soundPlayer.EXPECT().PlaySoundForEvent(ports.SoundEventPhaseComplete).
		Return(errors.New("no audio device"))

	service := newSyncNotificationService(soundPlayer)

	assert.NotPanics(t, func() {
		service.NotifyPhaseComplete(domain.PhaseOnBreak)
	})
}

func TestNotifyPhaseComplete_DoesNotBlockCaller(t *testing.T) {
	soundPlayer := portsmocks.NewMockSoundPlayer(t)
	played := make(chan struct{})
	release := make(chan struct{})
	soundPlayer.EXPECT().PlaySoundForEvent(ports.SoundEventPhaseComplete).
		RunAndReturn(func(string) error {
			<-release
			close(played)
			return nil
		})

	service := NewNotificationService(soundPlayer)

	// Returns while the player is still blocked
	service.NotifyPhaseComplete(domain.PhaseFocusing)
	close(release)
	<-played
}

func TestPlaySound(t *testing.T) {
	soundPlayer := portsmocks.NewMockSoundPlayer(t)
	soundPlayer.EXPECT().PlaySound().Return(nil)

	service := NewNotificationService(soundPlayer)

	err := service.PlaySound()

	require.NoError(t, err)
}

func TestPlaySound_ReturnsPlayerError(t *testing.T) {
	soundPlayer := portsmocks.NewMockSoundPlayer(t)
	soundPlayer.EXPECT().PlaySound().Return(errors.New("boom"))

	service := NewNotificationService(soundPlayer)

	err := service.PlaySound()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestPlaySoundForEvent(t *testing.T) {
	soundPlayer := portsmocks.NewMockSoundPlayer(t)
	soundPlayer.EXPECT().PlaySoundForEvent(ports.SoundEventStart).Return(nil)

	service := NewNotificationService(soundPlayer)

	err := service.PlaySoundForEvent(ports.SoundEventStart)

	require.NoError(t, err)
}
