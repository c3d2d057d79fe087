// Package cell implements the shared time slot between the time keeper and
// its readers.
//
// The cell is a single-writer, multi-reader latest-value container: writes
// overwrite, they never queue. Readers either snapshot the current value
// without blocking or wait until the value differs from one they have already
// seen. Waiters that sleep through several writes observe only the newest
// value, which is the intended coalescing behavior for a display that only
// ever shows the final state.
package cell

import (
	"context"
	"sync"

	"github.com/mrz1836/tickr/internal/display"
)

// Cell holds at most one display.Time value. The zero state is empty; once a
// value has been written the cell never becomes empty again.
//
// All methods are safe for concurrent use. The notification channel is closed
// and replaced under the mutex on every effective write, giving waiters a
// condition-style wakeup that still honors context cancellation (sync.Cond
// cannot be interrupted by a context, a closed channel can).
type Cell struct {
	mu        sync.Mutex
	value     display.Time
	populated bool
	changed   chan struct{}
}

// New returns an empty cell.
func New() *Cell {
	return &Cell{changed: make(chan struct{})}
}

// Set overwrites the cell's value. Waiters are woken only when the new value
// differs structurally from the current one; rewriting an equal value is a
// no-op and never causes a spurious wakeup.
func (c *Cell) Set(v display.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.populated && c.value == v {
		return
	}

	c.value = v
	c.populated = true
	close(c.changed)
	c.changed = make(chan struct{})
}

// Snapshot returns the current value without blocking. The second return is
// false while the cell has never been written.
func (c *Cell) Snapshot() (display.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value, c.populated
}

// AwaitChange blocks until the cell holds a value that differs from last, or
// until the cell is first populated when seen is false. It returns the latest
// value at wake time; intermediate writes that happened while the caller
// slept are skipped. On cancellation it returns the context's error.
func (c *Cell) AwaitChange(ctx context.Context, last display.Time, seen bool) (display.Time, error) {
	for {
		c.mu.Lock()
		if c.populated && (!seen || c.value != last) {
			v := c.value
			c.mu.Unlock()
			return v, nil
		}
		ch := c.changed
		c.mu.Unlock()

		select {
		case <-ctx.Done():
			return display.Time{}, ctx.Err()
		case <-ch:
		}
	}
}
