package vault

import "time"

// Clock defines an interface for time-related operations, allowing for testing.
// The engine only stamps records; it never schedules.
type Clock interface {
	// Now returns the current local time.
	Now() time.Time

	// Since returns the time elapsed since t (equivalent to Now().Sub(t)).
	Since(t time.Time) time.Duration
}

// standardClock implements the Clock interface using the standard Go time package.
type standardClock struct{}

// NewStandardClock returns a Clock implementation based on Go's standard time package.
func NewStandardClock() Clock {
	return standardClock{}
}

func (standardClock) Now() time.Time                  { return time.Now() }
func (standardClock) Since(t time.Time) time.Duration { return time.Since(t) }
