package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomo/test/integration/harness"
)

func TestSettingsKeys(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(t *testing.T, env *harness.TestEnvironment)
		args         []string
		wantExitCode int
		validate     func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult)
	}{
		{
			name:         "list shows defaults when no settings",
			args:         []string{"settings", "keys", "list"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "play_pause")
				harness.AssertStdoutContains(t, result, "space, p")
				harness.AssertStdoutContains(t, result, "focus_increase")
			},
		},
		{
			name: "list shows custom key when configured",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				harness.AssertSuccess(t, harness.RunCommand(t, env, "settings", "keys", "set", "stop", "x"))
			},
			args:         []string{"settings", "keys", "list", "--format", "json"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				var keys map[string]map[string]any
				harness.AssertValidJSON(t, result, &keys)
				require.Contains(t, keys, "stop")
				assert.Equal(t, []any{"x"}, keys["stop"]["custom"])
			},
		},
		{
			name:         "set unknown name",
			args:         []string{"settings", "keys", "set", "archive", "a"},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "unknown key 'archive'")
			},
		},
		{
			name: "set conflicting key",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				harness.AssertSuccess(t, harness.RunCommand(t, env, "settings", "keys", "set", "stop", "x"))
			},
			args:         []string{"settings", "keys", "set", "help", "x"},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "conflict")
			},
		},
		{
			name: "reset restores default",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				harness.AssertSuccess(t, harness.RunCommand(t, env, "settings", "keys", "set", "stop", "x"))
			},
			args:         []string{"settings", "keys", "reset", "stop"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Reset 'stop' to default: s")
				assert.NotContains(t, env.ReadSettings(), "keys")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			if tt.setup != nil {
				tt.setup(t, env)
			}

			result := harness.RunCommand(t, env, tt.args...)

			if tt.wantExitCode == 0 {
				harness.AssertSuccess(t, result)
			} else {
				harness.AssertFailure(t, result)
			}

			if tt.validate != nil {
				tt.validate(t, env, result)
			}
		})
	}
}
