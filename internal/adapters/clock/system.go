package clock

import (
	"time"

	"pomo/internal/ports"
)

// System implements ports.Clock with time.Ticker
type System struct{}

// NewSystem creates a wall clock
func NewSystem() *System {
	return &System{}
}

// NewTicker starts a time.Ticker with the given interval
func (System) NewTicker(interval time.Duration) ports.Ticker {
	return &systemTicker{ticker: time.NewTicker(interval)}
}

type systemTicker struct {
	ticker *time.Ticker
}

func (t *systemTicker) C() <-chan time.Time {
	return t.ticker.C
}

func (t *systemTicker) Stop() {
	t.ticker.Stop()
}
