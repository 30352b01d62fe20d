package assign_test

import (
	"math/rand"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/require"
)

// requireValidAssignment asserts len == n, slots within [0, m), distinct
// and strictly increasing.
func requireValidAssignment(t *testing.T, a []int, n, m int) {
	t.Helper()
	require.Len(t, a, n)

	seen := mapset.NewThreadUnsafeSet[int]()
	for k, slot := range a {
		require.GreaterOrEqual(t, slot, 0, "item %d", k)
		require.Less(t, slot, m, "item %d", k)
		require.True(t, seen.Add(slot), "slot %d used twice", slot)
		if k > 0 {
			require.Greater(t, slot, a[k-1], "not increasing at item %d", k)
		}
	}
}

// optimalTotal is the textbook order-preserving recurrence
// f(i,t) = best(f(i,t-1), f(i-1,t-1) + v[i-1][t-1]), used as an oracle.
func optimalTotal(rows [][]int, costs bool) int {
	n, m := len(rows), len(rows[0])
	const inf = int(^uint(0) >> 2)
	worst := -inf
	if costs {
		worst = inf
	}

	prev := make([]int, m+1) // f(0, ·) = 0
	for i := 1; i <= n; i++ {
		cur := make([]int, m+1)
		cur[0] = worst
		for t := 1; t <= m; t++ {
			skip := cur[t-1]
			take := worst
			if prev[t-1] != worst {
				take = prev[t-1] + rows[i-1][t-1]
			}
			if costs {
				cur[t] = min(skip, take)
			} else {
				cur[t] = max(skip, take)
			}
		}
		prev = cur
	}

	return prev[m]
}

// randomRows returns an n×m grid of values in [0, hi], zeros included.
func randomRows(rng *rand.Rand, n, m, hi int) [][]int {
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, m)
		for j := range rows[i] {
			rows[i][j] = rng.Intn(hi + 1)
		}
	}

	return rows
}
