// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for the matrix acceptance rules.
//  - Typed ([][]V) and loosely typed ([]any) inputs share the same order of
//    checks, so a given defect always yields the same sentinel.
//  - The last stage bounds every possible total by the sum of the row
//    maxima, so Sum never wraps or overflows in the element type.
//
// Determinism & Performance:
//  - All checks are pure and deterministic; O(n·m) time.
//  - Row lengths are collected in a set; nothing else is allocated.

package matrix

import (
	"math"

	mapset "github.com/deckarep/golang-set/v2"
)

// validateRows applies the acceptance rules to typed input.
// A typed row is always a numeric sequence, so ErrRowNotSequence cannot
// occur here.
func validateRows[V Number](rows [][]V, costs bool) error {
	// Stage 1: values first, over every entry.
	for _, row := range rows {
		for _, v := range row {
			if v < 0 {
				return negativeErr(costs)
			}
		}
	}

	// Stage 2: shape.
	if len(rows) == 0 {
		return ErrNoItems
	}
	lengths := mapset.NewThreadUnsafeSet[int]()
	for _, row := range rows {
		lengths.Add(len(row))
	}
	if err := validateShape(lengths, len(rows), len(rows[0])); err != nil {
		return err
	}

	// Stage 3: finiteness.
	for _, row := range rows {
		for _, v := range row {
			if !isFinite(float64(v)) {
				return ErrNonFinite
			}
		}
	}

	// Stage 4: headroom for the largest possible total.
	return validateHeadroom(rows)
}

// validateHeadroom accumulates the row maxima in V itself. Entries are
// non-negative here, so a wrap shows up as the running total shrinking and
// a float overflow as +Inf.
func validateHeadroom[V Number](rows [][]V) error {
	var total V
	for _, row := range rows {
		var top V
		for _, v := range row {
			top = max(top, v)
		}
		next := total + top
		if next < total || math.IsInf(float64(next), 1) {
			return ErrTotalOverflow
		}
		total = next
	}

	return nil
}

// validateShape checks the uniform-length and n ≤ m rules.
func validateShape(lengths mapset.Set[int], items, slots int) error {
	if lengths.Cardinality() != 1 {
		return ErrRaggedRows
	}
	if slots < items {
		return ErrMoreItemsThanSlots
	}

	return nil
}

// isFinite reports whether f is neither NaN nor ±Inf.
func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
