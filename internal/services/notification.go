package services

import (
	"pomo/internal/domain"
	"pomo/internal/logging"
	"pomo/internal/ports"
)

// NotificationService plays the audible cues for timer events
type NotificationService struct {
	dispatch    func(func())
	soundPlayer ports.SoundPlayer
}

// NewNotificationService creates a new NotificationService.
// Phase cues are played on their own goroutine so a slow player never
// holds up the countdown.
func NewNotificationService(soundPlayer ports.SoundPlayer) *NotificationService {
	return &NotificationService{
		dispatch:    func(f func()) { go f() },
		soundPlayer: soundPlayer,
	}
}

// NotifyPhaseComplete fires the completion cue for the phase that just ended.
// Player errors are logged and otherwise ignored.
func (s *NotificationService) NotifyPhaseComplete(completed domain.Phase) {
	s.dispatch(func() {
		logging.Logger.Debug("Playing phase completion sound", "phase", completed)
		if err := s.soundPlayer.PlaySoundForEvent(ports.SoundEventPhaseComplete); err != nil {
			logging.Logger.Warn("Failed to play phase completion sound", "phase", completed, "error", err)
		}
	})
}

// PlaySound plays the default notification sound
func (s *NotificationService) PlaySound() error {
	logging.Logger.Debug("Playing notification sound")
	return s.soundPlayer.PlaySound()
}

// PlaySoundForEvent plays a sound for a specific event type
func (s *NotificationService) PlaySoundForEvent(eventType string) error {
	logging.Logger.Debug("Playing sound for event", "event", eventType)
	return s.soundPlayer.PlaySoundForEvent(eventType)
}
