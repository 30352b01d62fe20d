package matrix

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// FromAny builds a float64 Matrix from loosely typed rows, typically the
// result of decoding YAML or JSON into []any. Each row must be a []any of
// numbers; integers of any Go width and floats are accepted.
//
// The checks run in the same order as New. The negative-value check sees
// every number in the input, including scalars that sit where a row should
// be and numbers nested deeper than two levels.
// Complexity: O(total elements).
func FromAny(rows []any, costs bool) (*Matrix[float64], error) {
	// Stage 1: any negative number anywhere.
	for _, row := range rows {
		if hasNegative(row) {
			return nil, negativeErr(costs)
		}
	}

	// Stage 2: non-empty, every row a numeric sequence.
	if len(rows) == 0 {
		return nil, ErrNoItems
	}
	typed := make([][]float64, len(rows))
	lengths := mapset.NewThreadUnsafeSet[int]()
	for i, row := range rows {
		seq, ok := row.([]any)
		if !ok {
			return nil, ErrRowNotSequence
		}
		vals := make([]float64, len(seq))
		for j, el := range seq {
			f, ok := toFloat(el)
			if !ok {
				return nil, ErrRowNotSequence
			}
			vals[j] = f
		}
		typed[i] = vals
		lengths.Add(len(vals))
	}

	// Stage 3: shape, then the typed path (finiteness + copy).
	if err := validateShape(lengths, len(typed), len(typed[0])); err != nil {
		return nil, err
	}

	return New(typed, costs)
}

// hasNegative walks v (flattening nested sequences) and reports whether any
// number in it is < 0. Non-numeric leaves are ignored.
func hasNegative(v any) bool {
	if seq, ok := v.([]any); ok {
		for _, el := range seq {
			if hasNegative(el) {
				return true
			}
		}

		return false
	}
	f, ok := toFloat(v)

	return ok && f < 0
}

// toFloat converts the numeric kinds produced by common decoders.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}
