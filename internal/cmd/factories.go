package cmd

import (
	adapterclock "pomo/internal/adapters/clock"
	adaptersound "pomo/internal/adapters/sound"
	"pomo/internal/config"
	"pomo/internal/logging"
	"pomo/internal/ports"
	"pomo/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Adapters
	Clock       ports.Clock
	SoundPlayer ports.SoundPlayer

	// Services
	NotificationService *services.NotificationService
	SettingsService     *services.SettingsService
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings) *Container {
	var soundPlayer ports.SoundPlayer = adaptersound.NewPlayer()
	if !settings.IsSoundEnabled() {
		logging.Logger.Debug("Sound disabled in settings")
		soundPlayer = adaptersound.MutedPlayer{}
	}

	return &Container{
		Clock:               adapterclock.NewSystem(),
		NotificationService: services.NewNotificationService(soundPlayer),
		SettingsService:     services.NewSettingsService(),
		SoundPlayer:         soundPlayer,
	}
}
