package edit

import "errors"

// Token-level failures.
var (
	ErrEmpty       = errors.New("empty instruction")
	ErrMalformed   = errors.New("invalid instruction")
	ErrInvalidBase = errors.New("invalid base")
)

// Apply-time failures.
var (
	ErrOutOfRange    = errors.New("position out of range")
	ErrBaseMismatch  = errors.New("expected base mismatch")
	ErrInvertedRange = errors.New("range end before start")
	ErrOverlap       = errors.New("overlapping instructions")
)
