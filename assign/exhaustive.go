package assign

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/nopa/matrix"
)

// DefaultMaxCombinations bounds Exhaustive unless overridden.
const DefaultMaxCombinations = 1 << 20

// ExhaustiveOption configures Exhaustive.
type ExhaustiveOption func(*ExhaustiveOptions)

// ExhaustiveOptions holds the search limits.
type ExhaustiveOptions struct {
	// MaxCombinations is the largest C(m, n) Exhaustive will enumerate.
	MaxCombinations int

	// internal error recorded during option parsing
	err error
}

// WithMaxCombinations overrides DefaultMaxCombinations.
//
//	k > 0: enumerate at most k assignments
//	k <= 0: invalid option → ErrOptionViolation
func WithMaxCombinations(k int) ExhaustiveOption {
	return func(o *ExhaustiveOptions) {
		if k <= 0 {
			o.err = fmt.Errorf("%w: MaxCombinations must be positive (%d)", ErrOptionViolation, k)

			return
		}
		o.MaxCombinations = k
	}
}

// Exhaustive enumerates every strictly increasing injection of the
// matrix's items into its slots and returns the best one. Candidates are
// visited in lexicographic order and only a strictly better total replaces
// the incumbent, so the lexicographically first optimum wins.
//
// It is the reference used to cross-check Solver on small instances.
//
// Errors: ErrNilMatrix, ErrOptionViolation, ErrSearchSpaceTooLarge.
// Complexity: O(C(m,n)·n) time, O(n) memory.
func Exhaustive[V matrix.Number](mat *matrix.Matrix[V], opts ...ExhaustiveOption) (Result[V], error) {
	if mat == nil {
		return Result[V]{}, ErrNilMatrix
	}
	o := ExhaustiveOptions{MaxCombinations: DefaultMaxCombinations}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result[V]{}, o.err
	}

	n, m := mat.Rows(), mat.Cols()
	if _, ok := binomialUpTo(m, n, o.MaxCombinations); !ok {
		return Result[V]{}, fmt.Errorf("%w: C(%d,%d) > %d", ErrSearchSpaceTooLarge, m, n, o.MaxCombinations)
	}

	better := func(a, b V) bool { return a > b }
	if mat.Costs() {
		better = func(a, b V) bool { return a < b }
	}

	// idx is the current combination; start at [0, 1, …, n-1].
	idx := make([]int, n)
	for k := range idx {
		idx[k] = k
	}

	var (
		best  []int
		value V
	)
	for {
		total := mat.Sum(idx)
		if best == nil || better(total, value) {
			best = append(best[:0], idx...)
			value = total
		}

		// Advance to the next combination: bump the rightmost index that
		// still has room, then reset everything after it.
		k := n - 1
		for k >= 0 && idx[k] == m-n+k {
			k--
		}
		if k < 0 {
			break
		}
		idx[k]++
		for j := k + 1; j < n; j++ {
			idx[j] = idx[j-1] + 1
		}
	}

	return Result[V]{Value: value, Assignment: best}, nil
}

// binomialUpTo computes C(m, n) and reports false once it exceeds limit.
func binomialUpTo(m, n, limit int) (int, bool) {
	if n < 0 || n > m {
		return 0, true
	}
	if n > m-n {
		n = m - n
	}
	c := 1
	for k := 1; k <= n; k++ {
		// c·(m-n+k)/k stays integral at every step; the product is taken in
		// 128 bits so a huge limit cannot make it wrap.
		hi, lo := bits.Mul64(uint64(c), uint64(m-n+k))
		if hi >= uint64(k) {
			return c, false
		}
		q, _ := bits.Div64(hi, lo, uint64(k))
		if q > uint64(limit) {
			return c, false
		}
		c = int(q)
	}

	return c, true
}
