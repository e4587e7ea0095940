package sampling

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInterval is returned for interval widths <= 0.
	ErrInvalidInterval = errors.New("expected positive interval [min]")
	// ErrUnsupportedInterval is returned for interval widths of an hour or more.
	ErrUnsupportedInterval = errors.New("intervals of 1 hour or more are not supported")
)

// IntervalError carries the rejected interval width.
type IntervalError struct {
	Minutes int
	Err     error
}

func (e *IntervalError) Error() string {
	return fmt.Sprintf("interval %d min: %v", e.Minutes, e.Err)
}

// Unwrap returns ErrInvalidInterval or ErrUnsupportedInterval.
func (e *IntervalError) Unwrap() error {
	return e.Err
}

// ValidateInterval checks that minutes is within [1, MaxIntervalMinutes].
func ValidateInterval(minutes int) error {
	if minutes <= 0 {
		return &IntervalError{Minutes: minutes, Err: ErrInvalidInterval}
	}
	if minutes > MaxIntervalMinutes {
		return &IntervalError{Minutes: minutes, Err: ErrUnsupportedInterval}
	}
	return nil
}
