package baseline

import "errors"

// Errors returned by baseline estimation.
var (
	ErrInvalidInput   = errors.New("baseline: signal must be a non-nil float64 slice")
	ErrEmptyInput     = errors.New("baseline: signal is empty")
	ErrLengthMismatch = errors.New("baseline: buffer length mismatch")
	ErrNegativeRadius = errors.New("baseline: window radius must be >= 0")
)
