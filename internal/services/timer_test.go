package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomo/internal/domain"
	"pomo/internal/ports"
	portsmocks "pomo/internal/ports/mocks"
)

func shortConfig() domain.TimerConfig {
	return domain.TimerConfig{FocusMinutes: 5, BreakMinutes: 1}
}

func TestTimerService_PlayPauseCycle(t *testing.T) {
	service := NewTimerService(shortConfig(), nil)

	assert.Equal(t, domain.StatusIdle, service.Snapshot().Status())

	running := service.PlayPause()
	require.NotNil(t, running.Session)
	assert.Equal(t, domain.StatusRunning, running.Status())
	assert.Equal(t, domain.PhaseFocusing, running.Session.Phase)
	assert.Equal(t, 300, running.Session.TimeRemaining)

	paused := service.PlayPause()
	assert.Equal(t, domain.StatusPaused, paused.Status())

	resumed := service.Start()
	assert.Equal(t, domain.StatusRunning, resumed.Status())
	assert.Equal(t, domain.StatusRunning, service.Snapshot().Status())
}

func TestTimerService_TickCountsDown(t *testing.T) {
	service := NewTimerService(shortConfig(), nil)
	service.Start()

	snapshot, completed := service.Tick()

	assert.False(t, completed)
	assert.Equal(t, 299, snapshot.Session.TimeRemaining)
	assert.Equal(t, 1, snapshot.Elapsed)
	assert.Equal(t, snapshot, service.Snapshot())
}

func TestTimerService_TickWhilePausedIsIgnored(t *testing.T) {
	service := NewTimerService(shortConfig(), nil)
	service.Start()
	service.Pause()

	snapshot, completed := service.Tick()

	assert.False(t, completed)
	assert.Equal(t, 300, snapshot.Session.TimeRemaining)
	assert.Equal(t, 0, snapshot.Elapsed)
}

func TestTimerService_PhaseCompletionNotifies(t *testing.T) {
	soundPlayer := portsmocks.NewMockSoundPlayer(t)
	soundPlayer.EXPECT().PlaySoundForEvent(ports.SoundEventPhaseComplete).Return(nil).Twice()

	service := NewTimerService(shortConfig(), newSyncNotificationService(soundPlayer))
	service.Start()

	var completions int
	for range 300 {
		if _, completed := service.Tick(); completed {
			completions++
		}
	}
	snapshot := service.Snapshot()
	assert.Equal(t, 1, completions)
	assert.Equal(t, domain.PhaseOnBreak, snapshot.Session.Phase)
	assert.Equal(t, 60, snapshot.Session.TimeRemaining)

	for range 60 {
		service.Tick()
	}
	snapshot = service.Snapshot()
	assert.Equal(t, domain.PhaseFocusing, snapshot.Session.Phase)
	assert.Equal(t, 360, snapshot.Elapsed)
}

func TestTimerService_StopResets(t *testing.T) {
	service := NewTimerService(shortConfig(), nil)
	service.Start()
	service.Tick()

	stopped := service.Stop()

	assert.Nil(t, stopped.Session)
	assert.Equal(t, 0, stopped.Elapsed)
	assert.Equal(t, float64(0), stopped.Progress)
	assert.False(t, stopped.Running)
	assert.Equal(t, shortConfig(), stopped.Config)
}

func TestTimerService_DurationAdjustments(t *testing.T) {
	service := NewTimerService(domain.DefaultTimerConfig(), nil)

	assert.Equal(t, 30, service.IncreaseFocus().Config.FocusMinutes)
	assert.Equal(t, 25, service.DecreaseFocus().Config.FocusMinutes)
	assert.Equal(t, 6, service.IncreaseBreak().Config.BreakMinutes)
	assert.Equal(t, 5, service.DecreaseBreak().Config.BreakMinutes)

	service.Start()
	assert.Equal(t, 25, service.IncreaseFocus().Config.FocusMinutes)
	assert.Equal(t, 5, service.DecreaseBreak().Config.BreakMinutes)
}

func TestTimerService_ConcurrentAccess(t *testing.T) {
	service := NewTimerService(shortConfig(), nil)
	service.Start()

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				service.Tick()
				_ = service.Snapshot()
			}
		}()
	}
	wg.Wait()

	snapshot := service.Snapshot()
	assert.Equal(t, 200, snapshot.Elapsed)
	assert.Equal(t, 100, snapshot.Session.TimeRemaining)
}
