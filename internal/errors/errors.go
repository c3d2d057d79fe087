// Package errors provides centralized error handling for tickr.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrClockQuery indicates that the system clock or local timezone could
	// not be read. The time keeper treats this as fatal: a clock without a
	// correct time source must exit rather than display stale time.
	ErrClockQuery = errors.New("clock query failed")

	// ErrCellNil indicates that a nil shared time cell was passed to a
	// component constructor.
	ErrCellNil = errors.New("time cell is nil")

	// ErrPosterNil indicates that a nil repaint poster was passed to the
	// redraw watcher.
	ErrPosterNil = errors.New("repaint poster is nil")

	// ErrProgramAborted indicates that the terminal UI loop exited because a
	// background worker failed rather than because the user quit.
	ErrProgramAborted = errors.New("clock program aborted")

	// ErrNotTerminal indicates that standard output is not attached to a
	// terminal, so the clock surface cannot be drawn.
	ErrNotTerminal = errors.New("stdout is not a terminal")
)
