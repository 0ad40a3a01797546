package services

import (
	"fmt"

	"pomo/internal/config"
	"pomo/internal/domain"
	"pomo/internal/logging"
)

// SettingsService persists user preferences to settings.json
type SettingsService struct{}

// NewSettingsService creates a new SettingsService
func NewSettingsService() *SettingsService {
	return &SettingsService{}
}

// TimerConfig returns the durations a new timer should start with
func (s *SettingsService) TimerConfig() (domain.TimerConfig, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return domain.DefaultTimerConfig(), fmt.Errorf("failed to load settings: %w", err)
	}
	return settings.TimerConfig()
}

// UpdateDurations stores new focus and/or break durations. Nil leaves the
// stored value untouched. Nothing is written when the result is invalid.
func (s *SettingsService) UpdateDurations(focusMinutes, breakMinutes *int) (domain.TimerConfig, error) {
	logging.Logger.Info("Updating durations", "focus_minutes", focusMinutes, "break_minutes", breakMinutes)

	settings, err := config.LoadSettings()
	if err != nil {
		return domain.TimerConfig{}, fmt.Errorf("failed to load settings: %w", err)
	}

	current, err := settings.TimerConfig()
	if err != nil {
		// A broken stored value is replaced rather than blocking the update
		logging.Logger.Warn("Stored durations invalid, falling back to defaults", "error", err)
	}

	updated := current
	if focusMinutes != nil {
		updated.FocusMinutes = *focusMinutes
	}
	if breakMinutes != nil {
		updated.BreakMinutes = *breakMinutes
	}
	if err := updated.Validate(); err != nil {
		return current, err
	}

	settings.FocusMinutes = &updated.FocusMinutes
	settings.BreakMinutes = &updated.BreakMinutes
	if err := config.SaveSettings(settings); err != nil {
		logging.Logger.Error("Failed to save settings", "error", err)
		return current, fmt.Errorf("failed to save settings: %w", err)
	}

	logging.Logger.Info("Durations updated successfully",
		"focus_minutes", updated.FocusMinutes,
		"break_minutes", updated.BreakMinutes)
	return updated, nil
}
