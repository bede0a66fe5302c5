package unique_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/lvlmesh/core"
	"github.com/stretchr/testify/require"
)

// counter records section boundaries and reports cancelled once
// cancelAfter sections were opened (never when cancelAfter == 0).
type counter struct {
	begins, ends int
	cancelAfter  int
}

func (c *counter) Cancelled() bool       { return c.cancelAfter > 0 && c.begins >= c.cancelAfter }
func (c *counter) BeginSection(float64) { c.begins++ }
func (c *counter) EndSection()          { c.ends++ }

// randomSimplices returns n rows of width k drawn from a small vertex pool,
// so duplicates (in any winding) are frequent.
func randomSimplices(t testing.TB, n, k, pool int, seed int64) *core.Table {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	F, err := core.NewTable(n, k)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			F.Put(i, j, rng.Intn(pool))
		}
	}

	return F
}

// canon returns a sorted copy of row.
func canon(row []int) []int {
	out := slices.Clone(row)
	slices.Sort(out)

	return out
}
