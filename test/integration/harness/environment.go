package harness

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment is one isolated POMO_HOME
type TestEnvironment struct {
	PomoHome string
	extraEnv map[string]string
	tb       testing.TB
}

// NewTestEnvironment creates a temp POMO_HOME removed when the test ends
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		PomoHome: tb.TempDir(),
		extraEnv: make(map[string]string),
		tb:       tb,
	}
}

// Environ returns the caller's environment minus POMO_* variables, plus the
// isolated POMO_HOME and any values set with SetEnv.
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+2+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "POMO_") {
			continue
		}
		if _, overridden := e.extraEnv[key]; overridden {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"POMO_HOME="+e.PomoHome,
		"POMO_DEBUG=",
	)
	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// SetEnv adds an environment variable for commands run in this environment
func (e *TestEnvironment) SetEnv(key, value string) {
	e.extraEnv[key] = value
}

// SettingsPath returns the settings.json location inside POMO_HOME
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.PomoHome, "settings.json")
}

// WriteSettings stores raw settings content, bypassing the CLI
func (e *TestEnvironment) WriteSettings(content string) {
	e.tb.Helper()
	if err := os.WriteFile(e.SettingsPath(), []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// ReadSettings decodes settings.json into a generic map
func (e *TestEnvironment) ReadSettings() map[string]any {
	e.tb.Helper()
	data, err := os.ReadFile(e.SettingsPath())
	if err != nil {
		e.tb.Fatalf("Failed to read settings: %v", err)
	}
	var settings map[string]any
	if err := json.Unmarshal(data, &settings); err != nil {
		e.tb.Fatalf("Invalid settings.json: %v\n%s", err, data)
	}
	return settings
}
