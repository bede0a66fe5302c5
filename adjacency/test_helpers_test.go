package adjacency_test

import (
	"testing"

	"github.com/katalvlaran/lvlmesh/core"
	"github.com/stretchr/testify/require"
)

// Shared fixtures.
var (
	// twoTriangles shares edge 0–1 with opposite winding.
	twoTriangles = [][]int{{0, 1, 2}, {1, 0, 3}}

	// fin hangs three triangles off edge 0–1.
	fin = [][]int{{0, 1, 2}, {1, 0, 3}, {0, 1, 4}}
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

// gridMesh triangulates an n×n grid of unit cells: 2n² triangles,
// 2n(n+1)+n² unique edges, 4n of them on the boundary.
func gridMesh(t testing.TB, n int) *core.Table {
	t.Helper()
	F, err := core.NewTable(2*n*n, 3)
	require.NoError(t, err)
	f := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v00 := i*(n+1) + j
			v10, v01 := v00+1, v00+n+1
			v11 := v01 + 1
			require.NoError(t, F.SetRow(f, []int{v00, v10, v11}))
			require.NoError(t, F.SetRow(f+1, []int{v00, v11, v01}))
			f += 2
		}
	}

	return F
}
