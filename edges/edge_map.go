package edges

import (
	"github.com/katalvlaran/lvlmesh/core"
	"github.com/katalvlaran/lvlmesh/interrupt"
	"github.com/katalvlaran/lvlmesh/unique"
)

// Section weights inside UniqueEdgeMap (sum to 1).
const (
	weightExtract = 0.2
	weightGroup   = 0.8
)

// UniqueEdgeMap builds the unique-edge structure of F.
//
// Steps:
//  1. Extract the m·k oriented records (All).
//  2. Group records by (Lo, Hi) with ties broken by position
//     (unique.GroupWith); group ids follow lexicographic key order.
//  3. uE row u is the key of group u; EMAP is the inverse scatter; UE2E[u]
//     lists the group's positions ascending.
//
// Boundary edges get singleton buckets; edges shared by more than two faces
// keep every occurrence. Neither is an error.
//
// Errors:
//   - core.ErrNilTable, core.ErrFaceWidth (k < 2), core.ErrNegativeIndex,
//     core.ErrOptionViolation, interrupt.ErrInterrupted.
//
// Complexity: O(N log N) for N = m·k, dominated by the sort.
func UniqueEdgeMap(F *core.Table, opts ...core.Option) (*Map, error) {
	o, err := core.Gather(opts...)
	if err != nil {
		return nil, err
	}

	return UniqueEdgeMapWith(F, o)
}

// UniqueEdgeMapWith is UniqueEdgeMap for callers that already gathered
// their Options. F is validated here, so the same errors apply.
func UniqueEdgeMapWith(F *core.Table, o core.Options) (*Map, error) {
	if err := core.ValidateFaces(F, core.AnyWidth); err != nil {
		return nil, err
	}
	in := o.Interrupter()

	if interrupt.Begin(in, weightExtract) {
		return nil, interrupt.ErrInterrupted
	}
	E, err := all(F, o)
	if err != nil {
		return nil, err
	}
	if interrupt.End(in) {
		return nil, interrupt.ErrInterrupted
	}

	if interrupt.Begin(in, weightGroup) {
		return nil, interrupt.ErrInterrupted
	}
	keys := make([][2]int, len(E))
	for e := range E {
		keys[e] = E[e].Key()
	}
	g, err := unique.GroupWith(keys, compareKey, o)
	if err != nil {
		return nil, err
	}
	uE, err := core.NewTable(g.Len(), 2)
	if err != nil {
		return nil, err
	}
	for u, rep := range g.Rep {
		uE.Put(u, 0, E[rep].Lo)
		uE.Put(u, 1, E[rep].Hi)
	}
	if interrupt.End(in) {
		return nil, interrupt.ErrInterrupted
	}

	m := &Map{
		Faces:    F.Rows(),
		Width:    F.Cols(),
		Oriented: E,
		Unique:   uE,
		EMAP:     g.Of,
		UE2E:     g.Members,
	}
	if o.Verbose() {
		o.Logf("edges: %d face-edges -> %d unique (%d boundary)", len(E), m.Len(), len(m.Boundary()))
		if nm := m.NonManifold(); len(nm) > 0 {
			o.Warnf("edges: %d non-manifold edges, first %v", len(nm), uE.Row(nm[0]))
		}
	}

	return m, nil
}
