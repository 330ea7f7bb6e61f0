// Package report tallies diagnostics by class and renders a run summary.
package report

import (
	"errors"

	"dnafix/internal/catalog"
	"dnafix/internal/edit"
	"dnafix/internal/record"
)

// Class is a coarse diagnostic category, used only for the summary.
type Class string

const (
	ClassMalformed      Class = "malformed"
	ClassInvalidBase    Class = "invalid_base"
	ClassOutOfRange     Class = "out_of_range"
	ClassMismatch       Class = "mismatch"
	ClassInvertedRange  Class = "inverted_range"
	ClassOverlap        Class = "overlap"
	ClassUnknownVariant Class = "unknown_variant"
	ClassFieldCount     Class = "field_count"
	ClassOther          Class = "other"
)

// Classes lists every class in display order.
var Classes = []Class{
	ClassMalformed, ClassInvalidBase, ClassOutOfRange, ClassMismatch,
	ClassInvertedRange, ClassOverlap, ClassUnknownVariant, ClassFieldCount, ClassOther,
}

// Classify maps an error to its class using sentinel errors only.
func Classify(err error) Class {
	switch {
	case errors.Is(err, edit.ErrEmpty), errors.Is(err, edit.ErrMalformed):
		return ClassMalformed
	case errors.Is(err, edit.ErrInvalidBase):
		return ClassInvalidBase
	case errors.Is(err, edit.ErrOutOfRange):
		return ClassOutOfRange
	case errors.Is(err, edit.ErrBaseMismatch):
		return ClassMismatch
	case errors.Is(err, edit.ErrInvertedRange):
		return ClassInvertedRange
	case errors.Is(err, edit.ErrOverlap):
		return ClassOverlap
	case errors.Is(err, catalog.ErrUnknownVariant):
		return ClassUnknownVariant
	case errors.Is(err, record.ErrFieldCount):
		return ClassFieldCount
	default:
		return ClassOther
	}
}
