package assign

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nopa/matrix"
)

// compareFixture is the 2×5 profit grid used by the comparator tests.
func compareFixture(t *testing.T, costs bool) *matrix.Matrix[int] {
	t.Helper()
	m, err := matrix.New([][]int{{7, 6, 2, 5, 6}, {1, 4, 3, 1, 8}}, costs)
	require.NoError(t, err)

	return m
}

// TestCompare_AssignHereFromBoundary: with every neighbor absent only
// assign-here survives and starts from zero.
func TestCompare_AssignHereFromBoundary(t *testing.T) {
	m := compareFixture(t, false)
	absent := Cell{Slots: []int{}}

	got := compare(profitPolicy, m, 1, 2, absent, absent, absent)
	assert.True(t, got.Known)
	assert.Equal(t, 3.0, got.Score)
	assert.Equal(t, []int{Unassigned, 2}, got.Slots)
}

// TestCompare_TiePriority: equal totals resolve carry > extend > assign-here.
func TestCompare_TiePriority(t *testing.T) {
	m := compareFixture(t, false)

	a := Cell{Score: 10, Known: true, Slots: []int{0, 2}}
	b := Cell{Score: 10, Known: true, Slots: []int{0, 1}}
	c := Cell{Score: 7, Known: true, Slots: []int{0}} // 7 + m[1][2] = 10

	got := compare(profitPolicy, m, 1, 2, a, b, c)
	assert.Equal(t, 10.0, got.Score)
	assert.Equal(t, []int{0, 2}, got.Slots, "carry wins a three-way tie")

	a.Known = false
	got = compare(profitPolicy, m, 1, 2, a, b, c)
	assert.Equal(t, []int{0, 1}, got.Slots, "extend beats assign-here on a tie")
}

// TestCompare_ExtendFillsFreeItem: extend adds m[i][t-1] only when item i is
// still unassigned in the neighbor.
func TestCompare_ExtendFillsFreeItem(t *testing.T) {
	m := compareFixture(t, false)
	absent := Cell{Slots: []int{}}

	b := Cell{Score: 5, Known: true, Slots: []int{0}}
	got := compare(profitPolicy, m, 1, 2, absent, b, absent)
	// extend = 5 + m[1][1] = 9 beats assign-here = m[1][2] = 3
	assert.Equal(t, 9.0, got.Score)
	assert.Equal(t, []int{0, 1}, got.Slots)
	assert.Equal(t, []int{0}, b.Slots, "neighbor slots must not change")

	b = Cell{Score: 5, Known: true, Slots: []int{0, 1}}
	got = compare(profitPolicy, m, 1, 2, absent, b, absent)
	assert.Equal(t, 5.0, got.Score)
	assert.Equal(t, []int{0, 1}, got.Slots)
}

// TestCompare_Disqualification covers the "item i-1 already at t" rule on
// every branch and the carry-specific "last slot below t" rule.
func TestCompare_Disqualification(t *testing.T) {
	m := compareFixture(t, false)
	absent := Cell{Slots: []int{}}

	// carry would win with 100, but item 0 already sits at slot 2.
	a := Cell{Score: 100, Known: true, Slots: []int{2}}
	got := compare(profitPolicy, m, 1, 2, a, absent, absent)
	assert.Equal(t, 3.0, got.Score)
	assert.Equal(t, []int{Unassigned, 2}, got.Slots)

	// carry's last slot 1 < t = 2.
	a = Cell{Score: 100, Known: true, Slots: []int{0, 1}}
	got = compare(profitPolicy, m, 1, 2, a, absent, absent)
	assert.Equal(t, 3.0, got.Score)

	// extend and assign-here both blocked; carry is the only option left.
	a = Cell{Score: 1, Known: true, Slots: []int{0, 3}}
	b := Cell{Score: 50, Known: true, Slots: []int{3}}
	c := Cell{Score: 50, Known: true, Slots: []int{3}}
	got = compare(profitPolicy, m, 1, 3, a, b, c)
	assert.Equal(t, 1.0, got.Score)
	assert.Equal(t, []int{0, 3}, got.Slots)
}

// TestCompare_CostMode minimizes and treats disqualified branches as +Inf.
func TestCompare_CostMode(t *testing.T) {
	m := compareFixture(t, true)
	absent := Cell{Slots: []int{}}

	b := Cell{Score: 1, Known: true, Slots: []int{0}}
	c := Cell{Score: 0, Known: true, Slots: []int{1}}
	// extend = 1 + m[1][1] = 5, assign-here = 0 + m[1][2] = 3
	got := compare(costPolicy, m, 1, 2, absent, b, c)
	assert.Equal(t, 3.0, got.Score)
	assert.Equal(t, []int{1, 2}, got.Slots)

	// Nothing feasible: the sentinel propagates, carry keeps priority.
	blocked := Cell{Score: 0, Known: true, Slots: []int{2}}
	got = compare(costPolicy, m, 1, 2, absent, blocked, blocked)
	assert.True(t, math.IsInf(got.Score, 1))
	assert.Empty(t, got.Slots)
}

// TestPolicyFor maps modes to their ordering.
func TestPolicyFor(t *testing.T) {
	assert.True(t, policyFor(Profit).better(2, 1))
	assert.True(t, math.IsInf(policyFor(Profit).sentinel, -1))
	assert.True(t, policyFor(Cost).better(1, 2))
	assert.True(t, math.IsInf(policyFor(Cost).sentinel, 1))
}
