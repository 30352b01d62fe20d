// Package assign defines coordinates, cell results, modes, options and
// error sentinels for the order-preserving assignment solver.
package assign

import (
	"errors"
	"fmt"
)

// Sentinel errors for solver construction and the exhaustive search.
var (
	// ErrNilMatrix is returned when a nil *matrix.Matrix is supplied.
	ErrNilMatrix = errors.New("assign: matrix is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("assign: invalid option supplied")

	// ErrSearchSpaceTooLarge is returned by Exhaustive when the number of
	// candidate assignments exceeds the configured limit.
	ErrSearchSpaceTooLarge = errors.New("assign: search space too large")
)

// Unassigned marks an item without a slot inside a partial assignment.
const Unassigned = -1

// Coord is a grid coordinate (I, T): items 0..I placed within slots 0..T.
// I == -1 or T == -1 denotes the boundary where nothing is placed yet.
type Coord struct {
	I, T int
}

// String renders the coordinate as "(i,t)".
func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.I, c.T) }

// Cell is the memoized result of one sub-problem.
//
// Known is false for boundary and infeasible cells; Score is then
// meaningless. Slots[k] is the slot chosen for item k, or Unassigned.
// A Cell handed to a hook shares storage with the memo table and must not
// be modified.
type Cell struct {
	Score float64
	Known bool
	Slots []int
}

// Mode selects the optimization direction.
type Mode int

const (
	// Profit maximizes the total of the chosen values.
	Profit Mode = iota

	// Cost minimizes the total of the chosen values.
	Cost
)

// String returns "profit" or "cost".
func (m Mode) String() string {
	if m == Cost {
		return "cost"
	}

	return "profit"
}

// modeOf maps the matrix kind flag to a Mode.
func modeOf(costs bool) Mode {
	if costs {
		return Cost
	}

	return Profit
}

// Result is the outcome of a solve.
//   - Value: optimal total, summed exactly in the matrix element type.
//   - Assignment: Assignment[i] is the slot of item i; strictly increasing,
//     len == number of items.
type Result[V any] struct {
	Value      V
	Assignment []int
}

// Option configures a Solver via functional arguments.
type Option func(*Options)

// Options holds the solver callbacks.
type Options struct {
	// OnPush is called whenever a coordinate is pushed on the work stack,
	// with the stack size after the push.
	OnPush func(c Coord, depth int)

	// OnResolve is called whenever a memo entry is written, base cells
	// included.
	OnResolve func(c Coord, cell Cell)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnPush:    func(Coord, int) {},
		OnResolve: func(Coord, Cell) {},
	}
}

// WithOnPush registers a callback for work-stack pushes.
func WithOnPush(fn func(c Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithOnResolve registers a callback for memo writes.
func WithOnResolve(fn func(c Coord, cell Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnResolve = fn
		}
	}
}
