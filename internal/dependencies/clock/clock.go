package clock

import "time"

// Clock stamps match creation and updates; mocked in tests
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the wall clock
type SystemClock struct{}

// New creates a new SystemClock
func New() *SystemClock {
	return &SystemClock{}
}

// Now returns the current time in UTC
func (c *SystemClock) Now() time.Time {
	return time.Now().UTC()
}
