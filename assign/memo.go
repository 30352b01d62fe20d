package assign

import "fmt"

// memoTable caches Cell results for every coordinate of an n×m problem,
// boundary row and column included.
//
// Storage is an (n+1)×(m+1) flat grid shifted by one on both axes, so
// coordinate (-1,-1) lives at index 0. Entries are write-once.
type memoTable struct {
	n, m  int
	cells []Cell
	set   []bool
}

// newMemoTable allocates an empty table for n items and m slots.
// Complexity: O(n·m) memory.
func newMemoTable(n, m int) *memoTable {
	size := (n + 1) * (m + 1)

	return &memoTable{
		n:     n,
		m:     m,
		cells: make([]Cell, size),
		set:   make([]bool, size),
	}
}

// index maps c to its flat offset.
func (mt *memoTable) index(c Coord) int {
	return (c.I+1)*(mt.m+1) + (c.T + 1)
}

// isBase reports whether c is resolved without recurrence:
//   - c.I == -1: no items considered;
//   - c.T < c.I: fewer slots than items;
//   - c.T > (m-1) - (n-1-c.I): too few slots left for the items after c.I.
func (mt *memoTable) isBase(c Coord) bool {
	return c.I == -1 ||
		c.T < c.I ||
		c.T > (mt.m-1)-(mt.n-1-c.I)
}

// lookup returns the memoized cell for c, if any.
func (mt *memoTable) lookup(c Coord) (Cell, bool) {
	idx := mt.index(c)
	if !mt.set[idx] {
		return Cell{}, false
	}

	return mt.cells[idx], true
}

// has reports whether c is memoized.
func (mt *memoTable) has(c Coord) bool {
	return mt.set[mt.index(c)]
}

// store writes cell for c. A second write to the same coordinate is a
// recurrence defect and panics.
func (mt *memoTable) store(c Coord, cell Cell) {
	idx := mt.index(c)
	if mt.set[idx] {
		panic(fmt.Sprintf("assign: memo entry %v written twice", c))
	}
	mt.cells[idx] = cell
	mt.set[idx] = true
}

// storeBase writes the (absent, empty) result for a base coordinate.
func (mt *memoTable) storeBase(c Coord) Cell {
	cell := Cell{Slots: []int{}}
	mt.store(c, cell)

	return cell
}
