package tui

import (
	"context"
	stderrors "errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mrz1836/tickr/internal/cell"
	"github.com/mrz1836/tickr/internal/clock"
	"github.com/mrz1836/tickr/internal/errors"
	"github.com/mrz1836/tickr/internal/timekeeper"
	"github.com/mrz1836/tickr/internal/watcher"
)

// Config holds configuration for the clock program.
type Config struct {
	// TwelveHour renders hours on a 1-12 clock instead of 0-23.
	TwelveHour bool
	// Clock is the time source. Nil means the real system clock.
	Clock clock.Clock
}

// repaintSender posts repaint requests into the Bubble Tea loop.
// Program.Send is documented as safe to call from any goroutine, which is
// exactly the cross-thread delivery the redraw watcher needs.
type repaintSender struct {
	program *tea.Program
}

// PostRepaint implements watcher.RepaintPoster.
func (s repaintSender) PostRepaint() {
	s.program.Send(RepaintMsg{})
}

// Run builds the shared cell, the clock model, and the two background
// workers, then drives the Bubble Tea loop until the user quits, the context
// is canceled, or a worker fails.
//
// Shutdown is a single converged path: user quit cancels the worker context,
// an interrupt signal cancels the parent context, and a worker failure
// cancels the UI context via the errgroup. The program never continues with
// a dead worker behind a live face.
func Run(ctx context.Context, cfg Config, log zerolog.Logger, opts ...tea.ProgramOption) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	timeCell := cell.New()
	model := NewClockModel(timeCell, cfg.TwelveHour)

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	program := tea.NewProgram(model, opts...)

	keeper, err := timekeeper.New(cfg.Clock, timeCell, log)
	if err != nil {
		return err
	}
	redraw, err := watcher.New(timeCell, repaintSender{program: program}, log)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return keeper.Run(gctx) })
	g.Go(func() error { return redraw.Run(gctx) })
	// A failed worker cancels gctx; forward that to the UI context so the
	// loop exits instead of showing a frozen face.
	g.Go(func() error {
		<-gctx.Done()
		cancel()
		return nil
	})

	log.Debug().Msg("starting clock program")
	_, uiErr := program.Run()

	// UI exit (quit key or kill) stops the workers.
	cancel()
	workerErr := g.Wait()

	if workerErr != nil && !stderrors.Is(workerErr, context.Canceled) {
		return fmt.Errorf("%w: %w", errors.ErrProgramAborted, workerErr)
	}
	if uiErr != nil && !stderrors.Is(uiErr, tea.ErrProgramKilled) && !stderrors.Is(uiErr, tea.ErrInterrupted) {
		return fmt.Errorf("clock program: %w", uiErr)
	}

	log.Debug().Msg("clock program stopped")
	return nil
}
