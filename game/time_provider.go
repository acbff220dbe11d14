package game

import "time"

// TimeProvider abstracts the simulation clock so tests can drive ticks with
// controlled timestamps
type TimeProvider interface {
	Now() time.Time
}

// monotonicTimeProvider provides the real system time with monotonic clock
// readings
type monotonicTimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() TimeProvider {
	return monotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (monotonicTimeProvider) Now() time.Time {
	return time.Now()
}
