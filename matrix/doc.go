// Package matrix provides the immutable value matrix consumed by the
// assignment solver, together with its validation rules.
//
// A Matrix is an n×m grid of non-negative numbers: rows are items,
// columns are slots, and n ≥ 1, m ≥ n. It is frozen at construction —
// the constructor copies the caller's rows into private row-major storage,
// so later mutation of the input has no effect.
//
// Validation runs before anything is allocated for the result and stops at
// the first violation, in this order:
//
//  1. negative entry               → ErrNegativeCosts / ErrNegativeProfits
//  2. no rows                      → ErrNoItems
//  3. row is not a numeric sequence → ErrRowNotSequence (loosely typed input only)
//  4. rows of different length     → ErrRaggedRows
//  5. fewer columns than rows      → ErrMoreItemsThanSlots
//  6. NaN or ±Inf entry            → ErrNonFinite
//  7. row maxima overflow V       → ErrTotalOverflow
//
// Every failure is an *InputError with a fixed message; match with
// errors.Is against the sentinels or errors.As against *InputError.
//
// Element types are any integer or floating-point type (see Number).
package matrix
