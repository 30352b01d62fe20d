// Package nopa computes optimal order-preserving injective assignments:
// n items are placed into m ≥ n slots so that slot indices strictly
// increase with item index, maximizing total profit or minimizing total cost.
//
// 🚀 What is an order-preserving assignment?
//
//	Given a value matrix V (rows = items, columns = slots), choose
//	slot(0) < slot(1) < … < slot(n-1) optimizing Σ V[i][slot(i)].
//	Typical uses:
//	  • aligning subtitles, captions or annotations to a timeline
//	  • placing ordered tasks into ordered time windows
//	  • monotone matching of two sequences of different lengths
//
// ✨ Key features:
//   - strict input validation with fixed, comparable error sentinels
//   - memoized recurrence driven by an explicit work stack (no recursion),
//     safe for grids with hundreds of rows and columns
//   - profit (maximize) and cost (minimize) modes sharing one comparator
//   - exhaustive reference solver for cross-checking small instances
//   - YAML fixtures for scenario-driven tests
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/  — immutable value matrix + validation (InputError)
//	assign/  — memo table, comparator, iterative evaluator, Solver facade
//	fixture/ — YAML loaders for grids and annotated scenarios
//
// Quick example:
//
//	s, err := assign.New([][]int{{7, 6, 2, 5, 6}, {1, 4, 3, 1, 8}}, false)
//	if err != nil {
//	    // handle *matrix.InputError
//	}
//	res := s.Compute() // res.Value == 15, res.Assignment == [0 4]
//
//	go get github.com/katalvlaran/nopa
package nopa
