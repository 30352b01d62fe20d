package assign

import (
	"math"
	"slices"

	"github.com/katalvlaran/nopa/matrix"
)

// policy parameterizes the comparator by optimization direction.
//   - better(a, b): a strictly improves on b.
//   - sentinel: the value of a disqualified branch; it never beats a
//     feasible total.
type policy struct {
	better   func(a, b float64) bool
	sentinel float64
}

var (
	profitPolicy = policy{
		better:   func(a, b float64) bool { return a > b },
		sentinel: math.Inf(-1),
	}
	costPolicy = policy{
		better:   func(a, b float64) bool { return a < b },
		sentinel: math.Inf(1),
	}
)

// policyFor returns the comparator policy of mode.
func policyFor(mode Mode) policy {
	if mode == Cost {
		return costPolicy
	}

	return profitPolicy
}

// branch names the three recurrence options, in tie-break priority order.
type branch int

const (
	carry      branch = iota // reuse (i-1, t)
	extend                   // reuse (i, t-1), placing item i at t-1 if still free
	assignHere               // take (i-1, t-1) and place item i at t
)

// compare selects the best branch for the non-base cell (i, t) from its
// memoized neighbors a=(i-1,t), b=(i,t-1), c=(i-1,t-1) and returns the new
// cell. Neighbor slot slices are never modified; the winner's is cloned.
//
// Every branch is disqualified when its neighbor already places item i-1
// at slot t. On top of that:
//   - carry is disqualified when a is absent or a's last slot is below t;
//   - extend is disqualified when b is absent;
//   - assign-here starts from zero when c is absent.
//
// Ties resolve carry > extend > assign-here.
// Complexity: O(n) for the slot copy.
func compare[V matrix.Number](p policy, mat *matrix.Matrix[V], i, t int, a, b, c Cell) Cell {
	carryV := p.sentinel
	switch {
	case slotOf(a.Slots, i-1) == t: // item i-1 already sits at t
	case !a.Known:
	case lastSlot(a.Slots) != Unassigned && lastSlot(a.Slots) < t:
	default:
		carryV = a.Score
	}

	extendV := p.sentinel
	fills := false
	switch {
	case slotOf(b.Slots, i-1) == t: // item i-1 already sits at t
	case !b.Known:
	case slotOf(b.Slots, i) == Unassigned:
		extendV = b.Score + float64(mat.Value(i, t-1))
		fills = true
	default:
		extendV = b.Score
	}

	hereV := p.sentinel
	switch {
	case slotOf(c.Slots, i-1) == t: // item i-1 already sits at t
	case !c.Known:
		hereV = float64(mat.Value(i, t))
	default:
		hereV = c.Score + float64(mat.Value(i, t))
	}

	win, best := carry, carryV
	if p.better(extendV, best) {
		win, best = extend, extendV
	}
	if p.better(hereV, best) {
		win, best = assignHere, hereV
	}

	var slots []int
	switch win {
	case carry:
		slots = slices.Clone(a.Slots)
	case extend:
		slots = slices.Clone(b.Slots)
		if fills {
			slots = setSlot(slots, i, t-1)
		}
	default:
		slots = setSlot(slices.Clone(c.Slots), i, t)
	}

	return Cell{Score: best, Known: true, Slots: slots}
}

// slotOf returns slots[k], or Unassigned when k is outside the slice.
func slotOf(slots []int, k int) int {
	if k < 0 || k >= len(slots) {
		return Unassigned
	}

	return slots[k]
}

// lastSlot returns the final entry of slots, or Unassigned if empty.
func lastSlot(slots []int) int {
	if len(slots) == 0 {
		return Unassigned
	}

	return slots[len(slots)-1]
}

// setSlot places item k at slot t, growing slots with Unassigned as needed.
func setSlot(slots []int, k, t int) []int {
	for len(slots) <= k {
		slots = append(slots, Unassigned)
	}
	slots[k] = t

	return slots
}
