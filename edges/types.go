package edges

import (
	"cmp"

	"github.com/katalvlaran/lvlmesh/core"
	"github.com/pkg/errors"
)

// Oriented is one face-edge record. Lo <= Hi always (orientation is
// discarded); Face and Corner name the face-edge that produced it.
// Corner c of face f spans F[f][c] → F[f][(c+1) mod k].
type Oriented struct {
	Lo, Hi       int
	Face, Corner int
}

// Key returns the canonical undirected vertex pair.
func (e Oriented) Key() [2]int { return [2]int{e.Lo, e.Hi} }

// compareKey orders canonical pairs lexicographically.
func compareKey(a, b [2]int) int {
	if c := cmp.Compare(a[0], b[0]); c != 0 {
		return c
	}

	return cmp.Compare(a[1], b[1])
}

// Map is the unique-edge structure of a face table with m faces of width k.
//
//   - Oriented: the m·k records, Oriented[e] for linear position
//     e = face + m·corner.
//   - Unique:   uE, one (Lo, Hi) row per distinct undirected edge, in
//     lexicographic order.
//   - EMAP:     EMAP[e] is the uE row of position e.
//   - UE2E:     UE2E[u] lists the positions e with EMAP[e] == u, ascending.
//
// Invariants: Unique row EMAP[e] == Oriented[e].Key(); e ∈ UE2E[EMAP[e]];
// len(UE2E[u]) >= 1. Size 1 is a boundary edge, 2 a manifold interior edge,
// more than 2 a non-manifold edge.
type Map struct {
	Faces    int
	Width    int
	Oriented []Oriented
	Unique   *core.Table
	EMAP     []int
	UE2E     [][]int
}

// Len returns the number of unique edges.
func (m *Map) Len() int { return len(m.UE2E) }

// Position returns the linear position of corner c of face f.
func (m *Map) Position(f, c int) int { return f + m.Faces*c }

// FaceOf returns the face of linear position e.
func (m *Map) FaceOf(e int) int { return e % m.Faces }

// CornerOf returns the local corner (edge slot) of linear position e.
func (m *Map) CornerOf(e int) int { return e / m.Faces }

// Multiplicity returns how many face-edges share unique edge u.
func (m *Map) Multiplicity(u int) int { return len(m.UE2E[u]) }

// Boundary returns the unique edges used by exactly one face-edge.
func (m *Map) Boundary() []int { return m.filter(func(n int) bool { return n == 1 }) }

// NonManifold returns the unique edges used by more than two face-edges.
func (m *Map) NonManifold() []int { return m.filter(func(n int) bool { return n > 2 }) }

// IsEdgeManifold reports whether no unique edge has more than two uses.
func (m *Map) IsEdgeManifold() bool {
	for _, b := range m.UE2E {
		if len(b) > 2 {
			return false
		}
	}

	return true
}

func (m *Map) filter(keep func(n int) bool) []int {
	var out []int
	for u, b := range m.UE2E {
		if keep(len(b)) {
			out = append(out, u)
		}
	}

	return out
}

// Validate checks the extents that downstream stages rely on.
//
// Errors:
//   - core.ErrNilTable when Unique is nil,
//   - core.ErrDimensionMismatch for any inconsistent length, an EMAP
//     value outside [0, Len()), an empty bucket, a bucket position outside
//     [0, Faces·Width) or one that EMAP maps elsewhere, a bucket that is
//     not strictly ascending, or buckets that do not cover every position.
func (m *Map) Validate() error {
	if m == nil || m.Unique == nil {
		return errors.Wrap(core.ErrNilTable, "edges: Map.Validate")
	}
	n := m.Faces * m.Width
	if err := core.ValidateLen("edges: Oriented", len(m.Oriented), n); err != nil {
		return err
	}
	if err := core.ValidateLen("edges: EMAP", len(m.EMAP), n); err != nil {
		return err
	}
	if err := core.ValidateLen("edges: Unique rows", m.Unique.Rows(), len(m.UE2E)); err != nil {
		return err
	}
	if m.Unique.Rows() > 0 {
		if err := core.ValidateLen("edges: Unique cols", m.Unique.Cols(), 2); err != nil {
			return err
		}
	}
	for e, u := range m.EMAP {
		if u < 0 || u >= len(m.UE2E) {
			return errors.Wrapf(core.ErrDimensionMismatch, "edges: EMAP[%d] = %d outside [0,%d)", e, u, len(m.UE2E))
		}
	}

	// Buckets must partition the positions exactly as EMAP does.
	total := 0
	for u, bucket := range m.UE2E {
		if len(bucket) == 0 {
			return errors.Wrapf(core.ErrDimensionMismatch, "edges: UE2E[%d] is empty", u)
		}
		for i, e := range bucket {
			if i > 0 && e <= bucket[i-1] {
				return errors.Wrapf(core.ErrDimensionMismatch, "edges: UE2E[%d] is not strictly ascending at %d", u, i)
			}
			if e < 0 || e >= n {
				return errors.Wrapf(core.ErrDimensionMismatch, "edges: UE2E[%d] holds position %d outside [0,%d)", u, e, n)
			}
			if m.EMAP[e] != u {
				return errors.Wrapf(core.ErrDimensionMismatch, "edges: UE2E[%d] holds position %d mapped to %d", u, e, m.EMAP[e])
			}
		}
		total += len(bucket)
	}
	if err := core.ValidateLen("edges: UE2E positions", total, n); err != nil {
		return err
	}

	return nil
}
