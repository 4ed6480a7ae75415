package clock

import "time"

// Clock stamps save slots. It is an interface so tests can pin the time.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the system clock
type SystemClock struct{}

// New creates a new SystemClock
func New() *SystemClock {
	return &SystemClock{}
}

// Now returns the current time in UTC, so saves written from different
// machines sort and compare the same way
func (c *SystemClock) Now() time.Time {
	return time.Now().UTC()
}
