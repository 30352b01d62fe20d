// SPDX-License-Identifier: MIT
// Package matrix: validation error set.
// All validators return one of the *InputError sentinels below, unwrapped,
// so callers may compare with errors.Is or extract the kind with errors.As.
// The messages are fixed strings and part of the public contract.

package matrix

import "errors"

// InputError reports a matrix rejected by validation. It is the only error
// kind produced while building a Matrix.
type InputError struct {
	Msg string
}

// Error returns the fixed validation message.
func (e *InputError) Error() string { return e.Msg }

var (
	// ErrNegativeProfits is returned when a profit matrix holds a value < 0.
	ErrNegativeProfits = &InputError{Msg: "Cannot have negative profits"}

	// ErrNegativeCosts is returned when a cost matrix holds a value < 0.
	ErrNegativeCosts = &InputError{Msg: "Cannot have negative costs"}

	// ErrNoItems is returned for a matrix without rows.
	ErrNoItems = &InputError{Msg: "missing items to assign"}

	// ErrRowNotSequence is returned when a row is not a homogeneous
	// sequence of numbers (loosely typed input such as decoded YAML).
	ErrRowNotSequence = &InputError{Msg: "slot values per item should be arrays"}

	// ErrRaggedRows is returned when rows differ in length.
	ErrRaggedRows = &InputError{Msg: "must have the same number of slots per item"}

	// ErrMoreItemsThanSlots is returned when columns < rows; an injective
	// assignment cannot exist.
	ErrMoreItemsThanSlots = &InputError{Msg: "Cannot have more items than slots"}

	// ErrNonFinite is returned for NaN or ±Inf entries.
	ErrNonFinite = &InputError{Msg: "values must be finite numbers"}

	// ErrTotalOverflow is returned when the sum of the row maxima does not
	// fit the element type, so some assignment total could wrap.
	ErrTotalOverflow = &InputError{Msg: "total value overflows the element type"}
)

// ErrOutOfRange indicates a row or column index outside the matrix.
// It is an access error, not a validation error.
var ErrOutOfRange = errors.New("matrix: index out of range")

// negativeErr picks the negative-value sentinel matching the matrix kind.
func negativeErr(costs bool) *InputError {
	if costs {
		return ErrNegativeCosts
	}

	return ErrNegativeProfits
}
