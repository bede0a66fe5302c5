package edges_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/lvlmesh/core"
	"github.com/katalvlaran/lvlmesh/edges"
	"github.com/katalvlaran/lvlmesh/interrupt"
	"github.com/stretchr/testify/require"
)

// TestUniqueEdgeMap_Scenarios checks uE, EMAP and UE2E on small meshes.
func TestUniqueEdgeMap_Scenarios(t *testing.T) {
	tests := []struct {
		name            string
		F               [][]int
		wantUE          [][]int
		wantEMAP        []int
		wantUE2E        [][]int
		wantBoundary    []int
		wantNonManifold []int
	}{
		{
			name:         "TwoTriangles",
			F:            twoTriangles,
			wantUE:       [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}},
			wantEMAP:     []int{0, 0, 3, 2, 1, 4},
			wantUE2E:     [][]int{{0, 1}, {4}, {3}, {2}, {5}},
			wantBoundary: []int{1, 2, 3, 4},
		},
		{
			name:         "SingleTriangle",
			F:            [][]int{{0, 1, 2}},
			wantUE:       [][]int{{0, 1}, {0, 2}, {1, 2}},
			wantEMAP:     []int{0, 2, 1},
			wantUE2E:     [][]int{{0}, {2}, {1}},
			wantBoundary: []int{0, 1, 2},
		},
		{
			name:            "ThreeFacesOnOneEdge",
			F:               [][]int{{0, 1, 2}, {1, 0, 3}, {0, 1, 4}},
			wantUE:          [][]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}, {1, 2}, {1, 3}, {1, 4}},
			wantEMAP:        []int{0, 0, 0, 4, 2, 6, 1, 5, 3},
			wantUE2E:        [][]int{{0, 1, 2}, {6}, {4}, {8}, {3}, {7}, {5}},
			wantBoundary:    []int{1, 2, 3, 4, 5, 6},
			wantNonManifold: []int{0},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := edges.UniqueEdgeMap(core.MustTable(tc.F))
			require.NoError(t, err)
			require.NoError(t, m.Validate())
			require.Equal(t, tc.wantUE, m.Unique.ToRows())
			require.Equal(t, tc.wantEMAP, m.EMAP)
			require.Equal(t, tc.wantUE2E, m.UE2E)
			require.Equal(t, tc.wantBoundary, m.Boundary())
			require.Equal(t, tc.wantNonManifold, m.NonManifold())
			require.Equal(t, tc.wantNonManifold == nil, m.IsEdgeManifold())
		})
	}
}

// TestUniqueEdgeMap_Grid checks every structural invariant on a larger
// manifold mesh, in both scheduling modes.
func TestUniqueEdgeMap_Grid(t *testing.T) {
	const n = 25
	F := gridMesh(t, n)

	m, err := edges.UniqueEdgeMap(F, core.WithParallelMin(0), core.WithWorkers(4))
	require.NoError(t, err)
	seq, err := edges.UniqueEdgeMap(F, core.WithWorkers(1))
	require.NoError(t, err)
	require.Equal(t, seq, m)

	require.NoError(t, m.Validate())
	require.Equal(t, 2*n*(n+1)+n*n, m.Len())
	require.Len(t, m.Boundary(), 4*n)
	require.True(t, m.IsEdgeManifold())

	for e, rec := range m.Oriented {
		u := m.EMAP[e]
		require.Equal(t, rec.Key(), [2]int{m.Unique.Get(u, 0), m.Unique.Get(u, 1)})
		require.Contains(t, m.UE2E[u], e)
		require.Equal(t, rec.Face, m.FaceOf(e))
		require.Equal(t, rec.Corner, m.CornerOf(e))
		require.Equal(t, e, m.Position(rec.Face, rec.Corner))
	}
	for u := range m.UE2E {
		require.True(t, slices.IsSorted(m.UE2E[u]))
		require.GreaterOrEqual(t, m.Multiplicity(u), 1)
		require.LessOrEqual(t, m.Multiplicity(u), 2)
		if u > 0 {
			prev, cur := m.Unique.Row(u-1), m.Unique.Row(u)
			require.Negative(t, slices.Compare(prev, cur))
		}
	}
}

// TestUniqueEdgeMap_Empty accepts a face table with no rows.
func TestUniqueEdgeMap_Empty(t *testing.T) {
	F, err := core.NewTable(0, 3)
	require.NoError(t, err)
	m, err := edges.UniqueEdgeMap(F)
	require.NoError(t, err)
	require.Zero(t, m.Len())
	require.Empty(t, m.EMAP)
	require.NoError(t, m.Validate())
}

// TestUniqueEdgeMap_Errors covers preconditions and cancellation.
func TestUniqueEdgeMap_Errors(t *testing.T) {
	_, err := edges.UniqueEdgeMap(nil)
	require.ErrorIs(t, err, core.ErrNilTable)
	_, err = edges.UniqueEdgeMap(core.MustTable([][]int{{0}}))
	require.ErrorIs(t, err, core.ErrFaceWidth)
	_, err = edges.UniqueEdgeMap(core.MustTable(twoTriangles), core.WithWorkers(-1))
	require.ErrorIs(t, err, core.ErrOptionViolation)

	c := &counter{cancelAfter: 1}
	m, err := edges.UniqueEdgeMap(core.MustTable(twoTriangles), core.WithInterrupter(c))
	require.ErrorIs(t, err, interrupt.ErrInterrupted)
	require.Nil(t, m)
	require.Equal(t, 1, c.begins)
}

// TestUniqueEdgeMapWith_Validates applies the same preconditions when the
// caller resolved Options itself.
func TestUniqueEdgeMapWith_Validates(t *testing.T) {
	o, err := core.Gather()
	require.NoError(t, err)

	tests := []struct {
		name    string
		F       *core.Table
		wantErr error
	}{
		{"Nil", nil, core.ErrNilTable},
		{"Points", core.MustTable([][]int{{0}, {1}}), core.ErrFaceWidth},
		{"NegativeIndex", core.MustTable([][]int{{0, 1, -2}}), core.ErrNegativeIndex},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := edges.UniqueEdgeMapWith(tc.F, o)
			require.ErrorIs(t, err, tc.wantErr)
			require.Nil(t, m)
		})
	}

	m, err := edges.UniqueEdgeMapWith(core.MustTable(twoTriangles), o)
	require.NoError(t, err)
	require.Equal(t, 5, m.Len())
}

// TestUniqueEdgeMap_Verbose exercises the logging path on a non-manifold mesh.
func TestUniqueEdgeMap_Verbose(t *testing.T) {
	m, err := edges.UniqueEdgeMap(core.MustTable([][]int{{0, 1, 2}, {1, 0, 3}, {0, 1, 4}}), core.WithVerbose())
	require.NoError(t, err)
	require.False(t, m.IsEdgeManifold())
}

// TestMap_Validate rejects inconsistent maps.
func TestMap_Validate(t *testing.T) {
	fresh := func(t *testing.T) *edges.Map {
		m, err := edges.UniqueEdgeMap(core.MustTable(twoTriangles))
		require.NoError(t, err)
		return m
	}

	var nilMap *edges.Map
	require.ErrorIs(t, nilMap.Validate(), core.ErrNilTable)

	tests := []struct {
		name   string
		tamper func(m *edges.Map)
	}{
		{"ShortEMAP", func(m *edges.Map) { m.EMAP = m.EMAP[:3] }},
		{"ShortOriented", func(m *edges.Map) { m.Oriented = m.Oriented[1:] }},
		{"EMAPOutOfRange", func(m *edges.Map) { m.EMAP[2] = 99 }},
		{"MissingBucket", func(m *edges.Map) { m.UE2E = m.UE2E[:4] }},
		{"WrongFaceCount", func(m *edges.Map) { m.Faces = 3 }},
		{"EmptyBucket", func(m *edges.Map) { m.UE2E[m.EMAP[0]] = []int{} }},
		{"BucketPositionOutOfRange", func(m *edges.Map) { m.UE2E[m.EMAP[0]] = []int{0, 99} }},
		{"NegativeBucketPosition", func(m *edges.Map) { m.UE2E[m.EMAP[0]] = []int{-1, 1} }},
		{"BucketDisagreesWithEMAP", func(m *edges.Map) { m.UE2E[1] = []int{0} }},
		{"RepeatedBucketPosition", func(m *edges.Map) { m.UE2E[0] = []int{0, 0} }},
		{"PositionMissingFromBuckets", func(m *edges.Map) { m.UE2E[0] = []int{0} }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := fresh(t)
			tc.tamper(m)
			require.ErrorIs(t, m.Validate(), core.ErrDimensionMismatch)
		})
	}
}
