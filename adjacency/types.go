package adjacency

import "github.com/katalvlaran/lvlmesh/core"

// None marks a dense slot with no usable neighbor: an open boundary edge,
// a non-manifold edge (more than two uses), or an edge whose other use is on
// the same face. Face indices are always >= 0, so None never collides with
// a real face.
const None = -1

// Section weights of the F-based entry points (sum to 1).
const (
	weightEdgeMap = 0.5
	weightBuild   = 0.5
)

// Dense is the fixed-shape adjacency of m triangles.
//
//   - TT[f][c]:  the face across corner c of face f, or None.
//   - TTi[f][c]: the corner of TT[f][c] that is the shared edge, or None.
//     TTi is nil when slots were not requested.
//
// Dense is a lossy projection: it only records edges used by exactly two
// distinct faces. Use General for non-manifold fidelity.
type Dense struct {
	TT  *core.Table
	TTi *core.Table
}

// General is the variable-length adjacency of m triangles.
//
//   - TT[f][c]:  every other face using the edge at corner c of face f, in
//     position order (the order of the unique edge's UE2E bucket).
//   - TTi[f][c]: the matching corners, same order. Nil when slots were not
//     requested.
//
// Occurrences on face f itself are excluded. General never drops
// information and is a superset of Dense.
type General struct {
	TT  [][][]int
	TTi [][][]int
}

// Degree returns how many neighbors face f has across corner c.
func (g General) Degree(f, c int) int { return len(g.TT[f][c]) }
