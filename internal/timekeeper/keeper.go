// Package timekeeper publishes the current local time into the shared cell
// once per second.
package timekeeper

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mrz1836/tickr/internal/cell"
	"github.com/mrz1836/tickr/internal/clock"
	"github.com/mrz1836/tickr/internal/constants"
	"github.com/mrz1836/tickr/internal/display"
	"github.com/mrz1836/tickr/internal/errors"
)

// Keeper is the sole writer of the shared time cell. Each iteration reads the
// local clock, publishes the whole-second value, and sleeps the remainder of
// the current second so wake-ups stay phase-aligned to second boundaries
// instead of drifting.
type Keeper struct {
	clock clock.Clock
	cell  *cell.Cell
	log   zerolog.Logger
}

// New creates a Keeper writing to the given cell.
func New(c clock.Clock, target *cell.Cell, log zerolog.Logger) (*Keeper, error) {
	if target == nil {
		return nil, errors.ErrCellNil
	}
	if c == nil {
		c = clock.RealClock{}
	}
	return &Keeper{clock: c, cell: target, log: log}, nil
}

// Run loops until the context is canceled or the clock fails. A clock failure
// is fatal and is returned wrapped in ErrClockQuery; the caller is expected to
// shut the whole program down rather than keep a stale face on screen.
func (k *Keeper) Run(ctx context.Context) error {
	for {
		now, err := k.clock.Now()
		if err != nil {
			k.log.Error().Err(err).Msg("local time unavailable")
			return fmt.Errorf("%w: %v", errors.ErrClockQuery, err)
		}

		value, remainder := display.FromWall(now)
		k.cell.Set(value)
		k.log.Trace().Stringer("time", value).Msg("published time")

		timer := time.NewTimer(untilNextSecond(remainder))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// untilNextSecond converts the fractional-second remainder observed at write
// time into the sleep that lands the next wake-up on the following second
// boundary. Floating point rounding can produce a non-positive duration; that
// degenerates to a full tick rather than a busy spin.
func untilNextSecond(remainder float64) time.Duration {
	wait := constants.TickInterval - time.Duration(remainder*float64(time.Second))
	if wait <= 0 || wait > constants.TickInterval {
		return constants.TickInterval
	}
	return wait
}
