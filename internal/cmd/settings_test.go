package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"pomo/internal/config"
	"pomo/internal/domain"
)

func TestWriteSettingsMeta(t *testing.T) {
	example := config.GetSettingsExample()

	t.Run("table lists options in sorted order", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, writeSettingsMeta(&out, "table", "/tmp/pomo/settings.json", example))

		text := out.String()
		assert.Contains(t, text, "Settings file: /tmp/pomo/settings.json")
		assert.Contains(t, text, "Example settings.json:")
		assert.Contains(t, text, "Create or edit this file to configure pomo.")

		breakAt := strings.Index(text, "break_minutes")
		focusAt := strings.Index(text, "focus_minutes")
		portAt := strings.Index(text, "ssh_port")
		require.NotEqual(t, -1, breakAt)
		assert.Less(t, breakAt, focusAt)
		assert.Less(t, focusAt, portAt)
	})

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, writeSettingsMeta(&out, "json", "/tmp/pomo/settings.json", example))

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
		assert.Equal(t, "/tmp/pomo/settings.json", decoded["settings_file"])
		format, ok := decoded["format"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(domain.DefaultFocusMinutes), format["focus_minutes"])
	})

	t.Run("yaml", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, writeSettingsMeta(&out, "yaml", "/tmp/pomo/settings.json", example))

		var decoded map[string]any
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
		assert.Equal(t, "/tmp/pomo/settings.json", decoded["settings_file"])
		format, ok := decoded["format"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, domain.DefaultBreakMinutes, format["break_minutes"])
	})
}

func TestFormatExampleValue(t *testing.T) {
	assert.Equal(t, "localhost", formatExampleValue("localhost"))
	assert.Equal(t, "true", formatExampleValue(true))
	assert.Equal(t, "25", formatExampleValue(25))
	assert.Equal(t, `["h","?"]`, formatExampleValue([]string{"h", "?"}))
}

func TestDurationOptions(t *testing.T) {
	focus := durationOptions(domain.MinFocusMinutes, domain.MaxFocusMinutes, domain.FocusStep)
	require.Len(t, focus, 12)
	assert.Equal(t, 5, focus[0].Value)
	assert.Equal(t, "05:00", focus[0].Key)
	assert.Equal(t, 60, focus[len(focus)-1].Value)

	breaks := durationOptions(domain.MinBreakMinutes, domain.MaxBreakMinutes, domain.BreakStep)
	require.Len(t, breaks, 15)
	assert.Equal(t, 1, breaks[0].Value)
	assert.Equal(t, 15, breaks[len(breaks)-1].Value)
}

func TestParseKeyValues(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{input: "p", want: []string{"p"}},
		{input: "up, k", want: []string{"up", "k"}},
		{input: "space,p", want: []string{" ", "p"}},
		{input: " , ,", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseKeyValues(tt.input))
		})
	}
}

func TestWriteKeyBindings(t *testing.T) {
	custom := config.KeyBindingsConfig{"play_pause": {"x"}}

	t.Run("table", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, writeKeyBindings(&out, "table", "/tmp/settings.json", custom))

		text := out.String()
		assert.Contains(t, text, "Key Bindings (settings file: /tmp/settings.json)")
		assert.Contains(t, text, "space, p")
		assert.Contains(t, text, "pomo settings keys set")

		for _, line := range strings.Split(text, "\n") {
			if strings.HasPrefix(line, "play_pause") {
				assert.Contains(t, line, "x")
			}
			if strings.HasPrefix(line, "stop") {
				assert.Contains(t, line, "-")
			}
		}
	})

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, writeKeyBindings(&out, "json", "/tmp/settings.json", custom))

		var decoded map[string]keyBindingEntry
		require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
		assert.Equal(t, []string{"x"}, decoded["play_pause"].Custom)
		assert.Equal(t, []string{" ", "p"}, decoded["play_pause"].Default)
		assert.Empty(t, decoded["stop"].Custom)
		assert.Equal(t, []string{"s"}, decoded["stop"].Default)
	})
}

func TestUpdateKeyBindings(t *testing.T) {
	t.Setenv("POMO_HOME", t.TempDir())

	require.NoError(t, updateKeyBindings(func(keys config.KeyBindingsConfig) {
		keys["stop"] = []string{"x"}
	}))

	settings, err := config.LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, config.KeyBindingValue{"x"}, settings.Keys["stop"])

	// A conflict leaves the stored bindings untouched
	err = updateKeyBindings(func(keys config.KeyBindingsConfig) {
		keys["play_pause"] = []string{"x"}
	})
	require.ErrorContains(t, err, "conflict")

	settings, err = config.LoadSettings()
	require.NoError(t, err)
	assert.NotContains(t, settings.Keys, "play_pause")

	require.NoError(t, updateKeyBindings(func(keys config.KeyBindingsConfig) {
		delete(keys, "stop")
	}))

	settings, err = config.LoadSettings()
	require.NoError(t, err)
	assert.Nil(t, settings.Keys)
}
