package assign

import (
	"github.com/oleiade/lane/v2"

	"github.com/katalvlaran/nopa/matrix"
)

// evaluator resolves memo cells bottom-up without recursion.
//
// Algorithm Outline:
//  1. Seed a stack with (i,t), (i-1,t), …, (0,t); (0,t) ends on top so
//     earlier rows resolve first.
//  2. Peek the top (i,t). Drop it if already memoized; write it as a base
//     cell and drop it if it is one.
//  3. Write every base dependency among (i-1,t), (i,t-1), (i-1,t-1).
//  4. Push the first dependency still missing and go back to 2; the top
//     stays below it as the return address.
//  5. With all three memoized, pop (i,t), run compare and store the result.
//
// This visits cells in the same order as post-order recursion while the
// working depth is bounded by the stack, which never exceeds
// (i+1) + (i+t+2) entries.
type evaluator[V matrix.Number] struct {
	mat  *matrix.Matrix[V]
	pol  policy
	memo *memoTable
	opts Options
}

// newEvaluator prepares an evaluator with an empty memo table.
func newEvaluator[V matrix.Number](mat *matrix.Matrix[V], mode Mode, opts Options) *evaluator[V] {
	return &evaluator[V]{
		mat:  mat,
		pol:  policyFor(mode),
		memo: newMemoTable(mat.Rows(), mat.Cols()),
		opts: opts,
	}
}

// resolve returns the memoized cell for target, computing it and every
// cell it depends on first. Already memoized targets return immediately.
// Complexity: O(n·m) cells, each O(n) for the slot copy.
func (e *evaluator[V]) resolve(target Coord) Cell {
	if cell, ok := e.memo.lookup(target); ok {
		return cell
	}
	if e.memo.isBase(target) {
		return e.write(target, e.memo.storeBase(target))
	}

	stack := lane.NewStack[Coord]()
	for j := target.I; j >= 0; j-- {
		e.push(stack, Coord{I: j, T: target.T})
	}

	for {
		top, ok := stack.Head()
		if !ok {
			break
		}

		if e.memo.has(top) {
			stack.Pop()
			continue
		}
		if e.memo.isBase(top) {
			e.write(top, e.memo.storeBase(top))
			stack.Pop()
			continue
		}

		deps := [3]Coord{
			{I: top.I - 1, T: top.T},     // carry
			{I: top.I, T: top.T - 1},     // extend
			{I: top.I - 1, T: top.T - 1}, // assign-here
		}
		for _, d := range deps {
			if !e.memo.has(d) && e.memo.isBase(d) {
				e.write(d, e.memo.storeBase(d))
			}
		}

		pending := false
		for _, d := range deps {
			if !e.memo.has(d) {
				e.push(stack, d)
				pending = true
				break
			}
		}
		if pending {
			continue
		}

		stack.Pop()
		a, _ := e.memo.lookup(deps[0])
		b, _ := e.memo.lookup(deps[1])
		c, _ := e.memo.lookup(deps[2])
		cell := compare(e.pol, e.mat, top.I, top.T, a, b, c)
		e.memo.store(top, cell)
		e.write(top, cell)
	}

	cell, _ := e.memo.lookup(target)

	return cell
}

// push adds c to the stack and reports it to the OnPush hook.
func (e *evaluator[V]) push(stack *lane.Stack[Coord], c Coord) {
	stack.Push(c)
	e.opts.OnPush(c, int(stack.Size()))
}

// write reports a freshly stored cell to the OnResolve hook.
func (e *evaluator[V]) write(c Coord, cell Cell) Cell {
	e.opts.OnResolve(c, cell)

	return cell
}
