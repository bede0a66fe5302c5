// Package adjacency builds triangle-triangle adjacency from the unique-edge
// structure of a triangle mesh.
//
// What
//
//   - General form (TrianglesGeneral, FromEdgeMap): for every face f and
//     corner c, the list of all other faces sharing that edge, plus the
//     matching corners when slots are requested. Valid for any mesh,
//     including edges shared by three or more faces.
//   - Dense form (Triangles, DenseFromEdgeMap): an m×3 table holding the one
//     neighbor across each corner, or None (-1). Only edges used by exactly
//     two distinct faces are recorded; boundary and non-manifold slots stay
//     None. It is a lossy projection of the same buckets as the general form.
//
// Corner convention
//
//	Corner c of face f is the edge F[f][c] → F[f][(c+1) mod 3]. TTi[f][c] is
//	the corner index of the neighbor that names the same edge.
//
// Example, F = [[0,1,2],[1,0,3]] (edge 0–1 shared with reversed winding):
//
//	dense TT  = [[1, -1, -1], [0, -1, -1]]
//	dense TTi = [[0, -1, -1], [0, -1, -1]]
//	general TT[0] = [[1] [] []], general TT[1] = [[0] [] []]
//
// Preconditions
//
//	F must be m×3 with non-negative indices; anything else is reported as
//	core.ErrFaceWidth / core.ErrNegativeIndex, never silently truncated.
//
// Concurrency & cancellation
//
//	The per-face (general) and per-edge (dense) loops fan out through
//	core.ParallelFor once the unique-edge map exists. Entry points taking F
//	bracket two sections of weight 0.5 each: edge map, then build.
//	Cancellation yields interrupt.ErrInterrupted and an empty result.
package adjacency
