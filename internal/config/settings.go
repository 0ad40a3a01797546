package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"pomo/internal/domain"
	"pomo/internal/paths"
)

// KeyBindingValue supports "a" or ["up", "k"] in JSON
type KeyBindingValue []string

// UnmarshalJSON implements custom unmarshaling for KeyBindingValue
func (kv *KeyBindingValue) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*kv = arr
		return nil
	}

	// Fall back to single string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str != "" {
		*kv = []string{str}
	}
	return nil
}

// MarshalJSON implements custom marshaling for KeyBindingValue
func (kv KeyBindingValue) MarshalJSON() ([]byte, error) {
	if len(kv) == 1 {
		return json.Marshal(kv[0])
	}
	return json.Marshal([]string(kv))
}

// KeyBindingsConfig holds custom key binding overrides as a map.
// Keys are binding names (e.g., "play_pause", "help"), values are the key sequences.
type KeyBindingsConfig map[string]KeyBindingValue

// Validate checks for configuration errors in key bindings.
// The validNames parameter should come from ui.GetValidKeyNames().
func (k KeyBindingsConfig) Validate(validNames []string) error {
	if k == nil {
		return nil
	}

	validSet := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		validSet[name] = true
	}

	// Track all keys to detect duplicates
	keyToAction := make(map[string]string)

	for name, keys := range k {
		if !validSet[name] {
			return fmt.Errorf("unknown key binding '%s'", name)
		}

		if len(keys) == 0 {
			continue // Not configured, will use default
		}

		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}

	return nil
}

// Defaults for the SSH server
const (
	DefaultSSHHost = "localhost"
	DefaultSSHPort = "23235"
)

// Settings represents the structure of $POMO_HOME/settings.json
type Settings struct {
	BreakMinutes *int              `json:"break_minutes,omitempty"`
	Debug        *bool             `json:"debug,omitempty"`
	FocusMinutes *int              `json:"focus_minutes,omitempty"`
	Keys         KeyBindingsConfig `json:"keys,omitempty"`
	MaxLogFiles  *int              `json:"max_log_files,omitempty"`
	SoundEnabled *bool             `json:"sound_enabled,omitempty"`
	SSHHost      string            `json:"ssh_host,omitempty"`
	SSHPort      string            `json:"ssh_port,omitempty"`
}

// TimerConfig returns the configured durations, falling back to the defaults
// for anything unset. The result is validated.
func (s *Settings) TimerConfig() (domain.TimerConfig, error) {
	config := domain.DefaultTimerConfig()
	if s == nil {
		return config, nil
	}
	if s.FocusMinutes != nil {
		config.FocusMinutes = *s.FocusMinutes
	}
	if s.BreakMinutes != nil {
		config.BreakMinutes = *s.BreakMinutes
	}
	if err := config.Validate(); err != nil {
		return domain.DefaultTimerConfig(), fmt.Errorf("invalid durations in settings.json: %w", err)
	}
	return config, nil
}

// IsSoundEnabled reports whether the completion cue should play (default true)
func (s *Settings) IsSoundEnabled() bool {
	if s == nil || s.SoundEnabled == nil {
		return true
	}
	return *s.SoundEnabled
}

// LoadSettings loads settings from $POMO_HOME/settings.json (or ~/.pomo/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := paths.GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $POMO_HOME/settings.json.
// The file is held under an exclusive lock while it is rewritten so a
// concurrent `pomo settings set` cannot interleave writes.
func SaveSettings(settings *Settings) error {
	path := paths.GetSettingsPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open settings file: %w", err)
	}
	defer file.Close()

	if err := lockFile(file); err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer unlockFile(file)

	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate settings file: %w", err)
	}
	if _, err := file.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to seek to beginning: %w", err)
	}
	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
