package integration_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pomo/test/integration/harness"
)

func TestFocus(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		args         []string
		wantExitCode int
		validate     func(t *testing.T, result harness.CommandResult)
	}{
		{
			name:         "one full cycle",
			args:         []string{"focus", "--focus", "5", "--break", "1", "--cycles", "1", "--tick-interval", "1ms"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "05:00 remaining")
				harness.AssertStdoutContains(t, result, "Focusing complete, On Break for 01:00 minutes")
				harness.AssertStdoutContains(t, result, "On Break complete, Focusing for 05:00 minutes")
				harness.AssertStdoutContains(t, result, "Done: 1 cycle(s) completed")

				// Initial line plus one per second of focus and break
				lines := strings.Count(result.Stdout, " remaining ")
				assert.Equal(t, 1+300+60, lines)
			},
		},
		{
			name:         "stop from stdin",
			input:        "s\n",
			args:         []string{"focus", "--tick-interval", "1h"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "25:00 remaining")
				harness.AssertStdoutContains(t, result, "Done: 0 cycle(s) completed")
			},
		},
		{
			name:         "invalid focus flag",
			args:         []string{"focus", "--focus", "7"},
			wantExitCode: 1,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "invalid durations")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			env.WriteSettings(`{"sound_enabled": false}`)

			var result harness.CommandResult
			if tt.input != "" {
				result = harness.RunCommandWithInput(t, env, tt.input, tt.args...)
			} else {
				result = harness.RunCommandWithTimeout(t, env, 20*time.Second, tt.args...)
			}

			if tt.wantExitCode == 0 {
				harness.AssertSuccess(t, result)
			} else {
				harness.AssertFailure(t, result)
			}

			if tt.validate != nil {
				tt.validate(t, result)
			}
		})
	}
}

func TestFocus_BrokenSettingsWarn(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WriteSettings(`{"focus_minutes": 7, "sound_enabled": false}`)

	result := harness.RunCommandWithInput(t, env, "s\n", "focus", "--tick-interval", "1h")

	harness.AssertSuccess(t, result)
	harness.AssertStderrContains(t, result, "Warning:")
	harness.AssertStdoutContains(t, result, "25:00 remaining")
}
