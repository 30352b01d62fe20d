package assign

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/nopa/matrix"
)

// Solver computes the optimal order-preserving injective assignment for one
// validated matrix. It owns its memo table; a Solver must not be used from
// several goroutines at once, but distinct Solvers share nothing.
type Solver[V matrix.Number] struct {
	mat  *matrix.Matrix[V]
	mode Mode
	eval *evaluator[V]

	computed   bool
	value      V
	assignment []int
}

// New validates rows and prepares a Solver. costs selects minimization;
// the default (false) maximizes profit.
//
// Errors: the *matrix.InputError sentinels of matrix.New, returned as-is.
// No Solver is returned on failure.
// Complexity: O(n·m) validation and memo allocation.
func New[V matrix.Number](rows [][]V, costs bool, opts ...Option) (*Solver[V], error) {
	mat, err := matrix.New(rows, costs)
	if err != nil {
		return nil, err
	}

	return FromMatrix(mat, opts...)
}

// FromMatrix prepares a Solver over an already validated matrix; the mode
// follows mat.Costs().
func FromMatrix[V matrix.Number](mat *matrix.Matrix[V], opts ...Option) (*Solver[V], error) {
	if mat == nil {
		return nil, ErrNilMatrix
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	mode := modeOf(mat.Costs())

	return &Solver[V]{
		mat:  mat,
		mode: mode,
		eval: newEvaluator(mat, mode, o),
	}, nil
}

// Compute solves the problem for coordinate (n-1, m-1), stores the result
// as observable state and returns a copy of it. Later calls return the
// same result without recomputation.
//
// Compute never fails on a validated matrix. An incomplete or unordered
// final assignment is a defect in the recurrence and panics.
func (s *Solver[V]) Compute() Result[V] {
	if !s.computed {
		n, m := s.mat.Rows(), s.mat.Cols()
		cell := s.eval.resolve(Coord{I: n - 1, T: m - 1})
		if err := checkAssignment(cell.Slots, n, m); err != nil {
			panic(err)
		}
		s.assignment = slices.Clone(cell.Slots)
		s.value = s.mat.Sum(s.assignment)
		s.computed = true
	}

	return Result[V]{Value: s.value, Assignment: slices.Clone(s.assignment)}
}

// Computed reports whether Compute has run.
func (s *Solver[V]) Computed() bool { return s.computed }

// Value returns the optimal total, or the zero value before Compute.
func (s *Solver[V]) Value() V { return s.value }

// Assignment returns a copy of the optimal assignment, or nil before Compute.
func (s *Solver[V]) Assignment() []int { return slices.Clone(s.assignment) }

// Mode reports whether the solver maximizes profit or minimizes cost.
func (s *Solver[V]) Mode() Mode { return s.mode }

// Matrix returns the read-only value matrix.
func (s *Solver[V]) Matrix() *matrix.Matrix[V] { return s.mat }

// checkAssignment verifies len == n, every slot in [0, m) and strict order.
func checkAssignment(slots []int, n, m int) error {
	if len(slots) != n {
		return fmt.Errorf("assign: internal error: %d of %d items assigned", len(slots), n)
	}
	for k, t := range slots {
		if t < 0 || t >= m {
			return fmt.Errorf("assign: internal error: item %d has slot %d outside [0,%d)", k, t, m)
		}
		if k > 0 && t <= slots[k-1] {
			return fmt.Errorf("assign: internal error: slots %v not strictly increasing at item %d", slots, k)
		}
	}

	return nil
}
