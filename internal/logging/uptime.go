// Package logging provides zerolog utilities shared by the CLI.
// This package contains hooks for zerolog that enrich every log entry with
// process-level context.
package logging

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/mrz1836/tickr/internal/clock"
)

// UptimeFieldName is the field added to every log entry by UptimeHook.
const UptimeFieldName = "uptime"

// UptimeHook is a zerolog hook that stamps each entry with the elapsed time
// since the process (or the hook) started. For a long-running clock the wall
// timestamp alone does not say how long the loop has been alive; uptime does.
type UptimeHook struct {
	start time.Time
	clock clock.Clock
}

// NewUptimeHook creates an UptimeHook anchored at the current instant.
func NewUptimeHook() *UptimeHook {
	return NewUptimeHookWith(clock.RealClock{})
}

// NewUptimeHookWith creates an UptimeHook using the provided clock.
// This allows time-dependent behavior to be tested with a mock clock.
func NewUptimeHookWith(c clock.Clock) *UptimeHook {
	start, err := c.Now()
	if err != nil {
		// A broken clock is fatal elsewhere; the hook just anchors at zero
		// so logging itself never fails.
		start = time.Time{}
	}
	return &UptimeHook{start: start, clock: c}
}

// Run implements the zerolog.Hook interface. It adds the uptime duration to
// the event; if the clock fails the event is left untouched.
func (h *UptimeHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	now, err := h.clock.Now()
	if err != nil {
		return
	}
	e.Dur(UptimeFieldName, now.Sub(h.start))
}
