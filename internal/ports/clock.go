package ports

import "time"

// Ticker delivers ticks at a fixed cadence until stopped
type Ticker interface {
	// C returns the channel ticks are delivered on
	C() <-chan time.Time

	// Stop turns the ticker off
	Stop()
}

// Clock creates tickers. Tests substitute a manual implementation.
type Clock interface {
	NewTicker(interval time.Duration) Ticker
}
