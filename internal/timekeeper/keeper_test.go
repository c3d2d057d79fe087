package timekeeper

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/tickr/internal/cell"
	"github.com/mrz1836/tickr/internal/display"
	"github.com/mrz1836/tickr/internal/errors"
)

// scriptedClock returns a fixed sequence of instants, then keeps returning
// the last one. It records nothing about sleeps; phase alignment is covered
// by the untilNextSecond tests.
type scriptedClock struct {
	mu    sync.Mutex
	times []time.Time
	err   error
}

func (s *scriptedClock) Now() (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return time.Time{}, s.err
	}
	t := s.times[0]
	if len(s.times) > 1 {
		s.times = s.times[1:]
	}
	return t, nil
}

func TestNew_NilCell(t *testing.T) {
	_, err := New(nil, nil, zerolog.Nop())
	assert.ErrorIs(t, err, errors.ErrCellNil)
}

func TestKeeper_PublishesImmediately(t *testing.T) {
	c := cell.New()
	// Remainder of ~0.999 keeps the inter-tick sleep around a millisecond so
	// the test finishes quickly.
	clk := &scriptedClock{times: []time.Time{
		time.Date(2024, 6, 15, 10, 30, 45, 999_000_000, time.UTC),
		time.Date(2024, 6, 15, 10, 30, 46, 999_000_000, time.UTC),
		time.Date(2024, 6, 15, 10, 30, 47, 999_000_000, time.UTC),
	}}

	k, err := New(clk, c, zerolog.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- k.Run(ctx) }()

	// The first value lands before any sleep.
	got, gotErr := c.AwaitChange(ctx, display.Time{}, false)
	require.NoError(t, gotErr)
	assert.Equal(t, display.Time{Hour: 10, Minute: 30, Second: 45}, got)

	// Subsequent ticks advance the cell.
	got, gotErr = c.AwaitChange(ctx, got, true)
	require.NoError(t, gotErr)
	assert.Equal(t, display.Time{Hour: 10, Minute: 30, Second: 46}, got)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestKeeper_ClockFailureIsFatal(t *testing.T) {
	c := cell.New()
	clk := &scriptedClock{err: assert.AnError}

	k, err := New(clk, c, zerolog.Nop())
	require.NoError(t, err)

	runErr := k.Run(context.Background())

	assert.ErrorIs(t, runErr, errors.ErrClockQuery)

	// Nothing was published before the failure.
	_, ok := c.Snapshot()
	assert.False(t, ok)
}

func TestKeeper_CancellationStopsRun(t *testing.T) {
	c := cell.New()
	clk := &scriptedClock{times: []time.Time{
		// Zero remainder means a full one second sleep between ticks, so Run
		// parks in the timer select until the context fires.
		time.Date(2024, 6, 15, 10, 30, 45, 0, time.UTC),
	}}

	k, err := New(clk, c, zerolog.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- k.Run(ctx) }()

	_, gotErr := c.AwaitChange(ctx, display.Time{}, false)
	require.NoError(t, gotErr)
	cancel()

	select {
	case runErr := <-done:
		assert.ErrorIs(t, runErr, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func TestUntilNextSecond(t *testing.T) {
	tests := []struct {
		name      string
		remainder float64
		want      time.Duration
	}{
		{name: "mid second", remainder: 0.3, want: 700 * time.Millisecond},
		{name: "late in second", remainder: 0.9, want: 100 * time.Millisecond},
		{name: "second boundary sleeps a full tick", remainder: 0, want: time.Second},
		{name: "nearly complete second", remainder: 0.999, want: time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := untilNextSecond(tt.remainder)
			assert.InDelta(t, float64(tt.want), float64(got), float64(time.Microsecond))
		})
	}
}

func TestUntilNextSecond_NeverNonPositive(t *testing.T) {
	for _, r := range []float64{0, 0.5, 0.999999, 1.0, 1.5} {
		got := untilNextSecond(r)
		assert.Positive(t, got, "remainder %v", r)
		assert.LessOrEqual(t, got, time.Second)
	}
}
