// Package lvlmesh is a small toolkit for the combinatorial topology of
// polygon meshes: which faces share which edges, and which faces are
// duplicates of each other.
//
// 🚀 What is lvlmesh?
//
//	A pure-Go library working on plain integer face tables (m faces × k
//	vertex indices per face) that brings together:
//		• Edge extraction: every face-edge in a fixed linear layout
//		• Unique-edge mapping: uE, EMAP and UE2E buckets
//		• Simplex deduplication: order-independent, with IA/IC index maps
//		• Triangle adjacency: dense (m×3, -1 for none) and general (lists)
//		• Cancellation & progress: nested weighted sections, OpenTelemetry spans
//
// ✨ Why choose lvlmesh?
//
//   - Deterministic – every output is fully specified, parallel or not
//   - Non-manifold safe – the general form keeps every neighbor
//   - Cancellable – any stage returns interrupt.ErrInterrupted on request
//   - Tunable – functional options or LVLMESH_* environment variables
//
// Subpackages:
//
//	core/       Table container, sentinel errors, validators, options, ParallelFor
//	interrupt/  Interrupter protocol, Tracker (progress), Traced (spans)
//	unique/     generic sort-and-group primitive, simplex deduplication
//	edges/      All, UniqueEdgeMap, AverageLength
//	adjacency/  Triangles (dense), TrianglesGeneral (lists)
//
// Quick ASCII example:
//
//	    2
//	   / \
//	  0───1      F = [[0,1,2],[1,0,3]]
//	   \ /
//	    3
//
//	edge 0–1 is shared: dense TT = [[1,-1,-1],[0,-1,-1]]
//
//	go get github.com/katalvlaran/lvlmesh
package lvlmesh
