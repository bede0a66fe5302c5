// Package edges extracts face-edges from a face table and maps them onto
// unique undirected edges.
//
// 🚀 What
//
//   - All: one Oriented{Lo, Hi, Face, Corner} record per face-edge, at linear
//     position e = face + m·corner (m = number of faces). Corner c of face f
//     spans F[f][c] → F[f][(c+1) mod k]; Lo <= Hi discards orientation.
//   - UniqueEdgeMap: groups the records by (Lo, Hi) into
//     uE (unique edges, lexicographic), EMAP (position → unique edge) and
//     UE2E (unique edge → every position using it).
//   - Map queries: Position / FaceOf / CornerOf arithmetic, Multiplicity,
//     Boundary, NonManifold, IsEdgeManifold, Validate.
//   - AverageLength: mean face-edge length over r3.Vec vertex positions.
//
// ✨ Topology is data, not an error
//
//	A bucket of size 1 is a boundary edge, size 2 a manifold interior edge,
//	size > 2 a non-manifold edge. All are kept intact; adjacency builders
//	decide how to project them.
//
// Example, F = [[0,1,2],[1,0,3]]:
//
//	positions  0:(0,1)f0  1:(0,1)f1  2:(1,2)f0  3:(0,3)f1  4:(0,2)f0  5:(1,3)f1
//	uE         (0,1) (0,2) (0,3) (1,2) (1,3)
//	UE2E       [0 1] [4]   [3]   [2]   [5]
//
// Progress sections: extract 0.2, group 0.8.
//
// Complexity: O(N log N) time, O(N) memory for N = m·k face-edges.
package edges
