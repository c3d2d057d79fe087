// Package signal converts OS interrupt signals into a context cancellation.
//
// Signal handlers run on arbitrary goroutines and must never touch UI state
// directly; the only thing this package does on delivery is cancel a context.
// The terminal UI loop watches that context (via tea.WithContext), so a
// signal schedules an orderly shutdown onto the UI loop instead of tearing
// anything down itself. A signal arriving before the UI loop is running is
// harmless: cancelling a context is always safe.
//
// Import rules:
//   - CAN import: std lib only
//   - MUST NOT import: internal packages (to avoid circular dependencies)
package signal

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Handler cancels its context when SIGINT or SIGTERM is received.
type Handler struct {
	ctx         context.Context //nolint:containedctx // intentional: handler manages context lifecycle
	cancel      context.CancelFunc
	interrupted chan struct{}
	sigChan     chan os.Signal
	once        sync.Once
	stopOnce    sync.Once
}

// NewHandler starts listening for SIGINT and SIGTERM. The first signal
// cancels the returned handler's context and closes the Interrupted channel;
// later signals are drained and ignored.
//
// Usage:
//
//	h := signal.NewHandler(ctx)
//	defer h.Stop()
//	// run the UI loop with h.Context()
func NewHandler(parent context.Context) *Handler {
	ctx, cancel := context.WithCancel(parent)
	h := &Handler{
		ctx:         ctx,
		cancel:      cancel,
		interrupted: make(chan struct{}),
		// Buffer of 1 so signal.Notify never drops a signal while the
		// listener goroutine is busy.
		sigChan: make(chan os.Signal, 1),
	}

	signal.Notify(h.sigChan, syscall.SIGINT, syscall.SIGTERM)
	go h.listen()

	return h
}

// Context returns the context that is canceled on interrupt.
// Run everything that should stop on Ctrl+C off this context.
func (h *Handler) Context() context.Context {
	return h.ctx
}

// Interrupted returns a channel that closes when an interrupt was received.
// It stays open when the context is canceled for any other reason, which
// lets callers distinguish "user pressed Ctrl+C" from "a worker failed".
func (h *Handler) Interrupted() <-chan struct{} {
	return h.interrupted
}

// Stop unregisters the signal handler and cancels the context.
// Always call this when done to prevent resource leaks.
func (h *Handler) Stop() {
	h.stopOnce.Do(func() {
		signal.Stop(h.sigChan)
		h.cancel()
	})
}

// handleSignal schedules shutdown exactly once.
func (h *Handler) handleSignal() {
	h.once.Do(func() {
		close(h.interrupted)
		h.cancel()
	})
}

// listen consumes signals until the context dies. The first signal has
// effect; the loop keeps draining so signal delivery never blocks.
func (h *Handler) listen() {
	for {
		select {
		case <-h.ctx.Done():
			return
		case <-h.sigChan:
			h.handleSignal()
		}
	}
}
