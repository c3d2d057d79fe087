// Package display defines the value type shown on the clock face and its
// textual formatting.
package display

import (
	"fmt"
	"strconv"
	"time"
)

// FieldPlaceholder is rendered in place of a field whose textual form is
// malformed. Fields are always in range during normal operation, so this only
// appears for injected or corrupted values.
const FieldPlaceholder = "??"

// Time is an immutable wall-clock value with second resolution.
// Hour is 0-23, Minute and Second are 0-59. Equality is structural, so values
// can be compared with ==. A new value replaces the old one each second.
type Time struct {
	// Hour is the hour of day, 0-23.
	Hour int
	// Minute is the minute of the hour, 0-59.
	Minute int
	// Second is the whole second of the minute, 0-59.
	Second int
}

// FromWall splits a wall-clock instant into a display value and the
// fractional-second remainder in [0,1). The remainder is what the time keeper
// sleeps away to stay phase-aligned to integer second boundaries.
func FromWall(t time.Time) (Time, float64) {
	hour, minute, sec := t.Clock()
	remainder := float64(t.Nanosecond()) / float64(time.Second)
	return Time{Hour: hour, Minute: minute, Second: sec}, remainder
}

// TwelveHour returns the value with the hour mapped to a 1-12 clock.
// Minute and second are unchanged.
func (t Time) TwelveHour() Time {
	h := t.Hour % 12
	if h == 0 {
		h = 12
	}
	return Time{Hour: h, Minute: t.Minute, Second: t.Second}
}

// String formats the value as HH:MM:SS with each field zero-padded to two
// digits. A field whose decimal text is not one or two characters long is
// rendered as "??" instead of panicking or truncating.
func (t Time) String() string {
	return fmt.Sprintf("%s:%s:%s", padField(t.Hour), padField(t.Minute), padField(t.Second))
}

// padField zero-pads a field to exactly two characters. Out-of-shape input
// (three or more characters, including a sign) yields the placeholder.
func padField(v int) string {
	s := strconv.Itoa(v)
	switch len(s) {
	case 1:
		return "0" + s
	case 2:
		return s
	default:
		return FieldPlaceholder
	}
}
