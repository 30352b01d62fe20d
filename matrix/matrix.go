package matrix

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types a Matrix may hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Matrix is an immutable, validated n×m grid of non-negative values.
// Rows are items, columns are slots. The zero value is not usable; build
// one with New or FromAny.
type Matrix[V Number] struct {
	r, c  int  // items and slots
	costs bool // true: values are costs (minimize); false: profits (maximize)
	data  []V  // row-major, length r*c, never written after New
}

// New validates rows and returns a frozen copy of them.
// Stage 1 (Validate): see validateRows for the rule order.
// Stage 2 (Prepare): copy rows into flat row-major storage.
// Complexity: O(n·m) time and memory.
func New[V Number](rows [][]V, costs bool) (*Matrix[V], error) {
	if err := validateRows(rows, costs); err != nil {
		return nil, err
	}

	r, c := len(rows), len(rows[0])
	data := make([]V, 0, r*c)
	for _, row := range rows {
		data = append(data, row...)
	}

	return &Matrix[V]{r: r, c: c, costs: costs, data: data}, nil
}

// Rows returns the number of items n.
func (m *Matrix[V]) Rows() int { return m.r }

// Cols returns the number of slots m.
func (m *Matrix[V]) Cols() int { return m.c }

// Costs reports whether the values are costs to minimize rather than
// profits to maximize.
func (m *Matrix[V]) Costs() bool { return m.costs }

// At returns the value of assigning item i to slot t.
// Returns ErrOutOfRange (wrapped with the index) for invalid coordinates.
// Complexity: O(1).
func (m *Matrix[V]) At(i, t int) (V, error) {
	if i < 0 || i >= m.r || t < 0 || t >= m.c {
		var zero V

		return zero, fmt.Errorf("Matrix.At(%d,%d): %w", i, t, ErrOutOfRange)
	}

	return m.data[i*m.c+t], nil
}

// Value is the unchecked form of At for hot loops. An out-of-range
// coordinate panics exactly like slice indexing.
func (m *Matrix[V]) Value(i, t int) V {
	return m.data[i*m.c+t]
}

// Row returns a copy of item i's slot values, or nil if i is out of range.
func (m *Matrix[V]) Row(i int) []V {
	if i < 0 || i >= m.r {
		return nil
	}
	out := make([]V, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out
}

// Sum totals the values picked by assignment, where assignment[i] is the
// slot of item i. Entries outside the grid are ignored. Construction
// guarantees the sum of the row maxima fits V, so the total never wraps.
// Complexity: O(len(assignment)).
func (m *Matrix[V]) Sum(assignment []int) V {
	var total V
	for i, t := range assignment {
		if i >= m.r || t < 0 || t >= m.c {
			continue
		}
		total += m.data[i*m.c+t]
	}

	return total
}
