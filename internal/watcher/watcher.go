// Package watcher observes the shared time cell and requests a repaint for
// every distinct published value.
package watcher

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mrz1836/tickr/internal/display"
	"github.com/mrz1836/tickr/internal/errors"
)

// ChangeWaiter is the read side of the shared time cell.
// This interface allows the watcher to be tested without a real cell.
type ChangeWaiter interface {
	// AwaitChange blocks until the cell holds a value differing from last
	// (or until first population when seen is false) and returns it.
	AwaitChange(ctx context.Context, last display.Time, seen bool) (display.Time, error)
}

// RepaintPoster delivers a repaint request into the UI loop. Implementations
// must be safe to call from a non-UI goroutine; the tui program satisfies
// this with Program.Send.
type RepaintPoster interface {
	// PostRepaint asynchronously schedules a repaint on the UI loop.
	PostRepaint()
}

// Watcher bridges cell writes to UI repaints. It wakes once per distinct
// value: equal rewrites never reach it, and bursts of writes collapse into a
// single repaint carrying the newest value.
type Watcher struct {
	cell   ChangeWaiter
	poster RepaintPoster
	log    zerolog.Logger
}

// New creates a Watcher reading from the given cell and posting to the given
// UI loop.
func New(c ChangeWaiter, poster RepaintPoster, log zerolog.Logger) (*Watcher, error) {
	if c == nil {
		return nil, errors.ErrCellNil
	}
	if poster == nil {
		return nil, errors.ErrPosterNil
	}
	return &Watcher{cell: c, poster: poster, log: log}, nil
}

// Run loops until the context is canceled. Each wake posts exactly one
// repaint request and advances the last-observed value.
func (w *Watcher) Run(ctx context.Context) error {
	var last display.Time
	seen := false

	for {
		v, err := w.cell.AwaitChange(ctx, last, seen)
		if err != nil {
			return err
		}

		w.poster.PostRepaint()
		w.log.Trace().Stringer("time", v).Msg("repaint requested")
		last, seen = v, true
	}
}
