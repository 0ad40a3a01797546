package config

import (
	"reflect"
	"strings"

	"pomo/internal/domain"
	"pomo/internal/paths"
)

// GetSettingsFilePath returns the path to the settings file
func GetSettingsFilePath() string {
	return paths.GetSettingsPath()
}

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	t := reflect.TypeOf(Settings{})
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Name() == "KeyBindingsConfig" {
		return map[string]any{
			"play_pause": "p",
			"help":       []string{"h", "?"},
		}
	}

	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			// Return boolean value directly (not pointer)
			return fieldName == "sound_enabled"
		case reflect.Int:
			switch fieldName {
			case "focus_minutes":
				return domain.DefaultFocusMinutes
			case "break_minutes":
				return domain.DefaultBreakMinutes
			case "max_log_files":
				return 1000
			}
			return 10
		}
	}

	switch t.Kind() {
	case reflect.String:
		switch fieldName {
		case "ssh_host":
			return DefaultSSHHost
		case "ssh_port":
			return DefaultSSHPort
		default:
			return "example"
		}
	}

	return nil
}
