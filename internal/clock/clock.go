// Package clock provides an abstraction for time operations to improve testability.
// Instead of calling time.Now() directly, code can use the Clock interface which
// can be mocked in tests to control time-dependent behavior.
package clock

import "time"

// Clock is an interface for querying the current local time.
//
// Now returns the current instant in the local timezone. The error return
// exists so tests can simulate an unavailable time source; callers must treat
// a non-nil error as fatal rather than retrying with a stale value.
type Clock interface {
	// Now returns the current local time.
	Now() (time.Time, error)
}

// RealClock implements Clock using the actual system time.
type RealClock struct{}

// Now returns the current time from the system clock, expressed in the local
// timezone. The zone offset is resolved on every call, so DST transitions and
// timezone changes take effect on the next tick without a restart.
func (RealClock) Now() (time.Time, error) {
	return time.Now().In(time.Local), nil
}

// Ensure RealClock implements Clock.
var _ Clock = RealClock{}
