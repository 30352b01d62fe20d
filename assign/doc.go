// Package assign solves the order-preserving injective assignment problem:
// place n items into m ≥ n slots, one slot per item, with slot indices
// strictly increasing in item order, maximizing total profit or minimizing
// total cost.
//
// 🚀 How it works
//
//	Sub-problem (i, t) means "items 0..i placed within slots 0..t".
//	Each one is solved once and memoized in an (n+1)×(m+1) table whose
//	extra row and column hold the boundary (i = -1 or t = -1).
//	A cell takes the best of three neighbors:
//	  carry       (i-1, t)   — keep the neighbor's placement as is
//	  extend      (i, t-1)   — add item i at slot t-1 if still free
//	  assign-here (i-1, t-1) — add item i at slot t
//	Ties prefer carry, then extend, then assign-here.
//
// ✨ Key features:
//   - explicit work stack instead of recursion: stack size is bounded by
//     2n+m, so grids with hundreds of rows and columns are safe
//   - one comparator for both modes, parameterized by ordering + sentinel
//   - OnPush / OnResolve hooks for observing the evaluation
//   - Exhaustive: brute-force reference for small instances
//
// ⚙️ Usage:
//
//	s, err := assign.New(costs, true) // true = minimize
//	if err != nil {
//	  // *matrix.InputError: see package matrix for the fixed messages
//	}
//	res := s.Compute() // res.Value, res.Assignment
//
// Performance:
//
//   - Time:   O(n·m) cells, each copying at most n slot indices
//   - Memory: O(n·m) cells + O(n·m·n) slot copies in the worst case
//
// A Solver is single-threaded; use one per goroutine.
package assign
