package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrz1836/tickr/internal/errors"
)

func TestSentinelErrorsAreDistinct(t *testing.T) {
	sentinels := []error{
		errors.ErrClockQuery,
		errors.ErrCellNil,
		errors.ErrPosterNil,
		errors.ErrProgramAborted,
		errors.ErrNotTerminal,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.False(t, stderrors.Is(a, b), "sentinel %v should not match %v", a, b)
		}
	}
}

func TestSentinelErrorsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("time keeper: %w", errors.ErrClockQuery)

	assert.True(t, stderrors.Is(wrapped, errors.ErrClockQuery))
	assert.False(t, stderrors.Is(wrapped, errors.ErrProgramAborted))
}

func TestSentinelErrorMessages(t *testing.T) {
	// Messages are lowercase per Go conventions and stable enough to grep logs for.
	assert.Equal(t, "clock query failed", errors.ErrClockQuery.Error())
	assert.Equal(t, "clock program aborted", errors.ErrProgramAborted.Error())
}
