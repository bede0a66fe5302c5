package unique

import (
	"slices"

	"github.com/katalvlaran/lvlmesh/core"
	"github.com/katalvlaran/lvlmesh/interrupt"
	"github.com/pkg/errors"
)

// Section weights inside Simplices (sum to 1).
const (
	weightCanonicalize = 0.2
	weightGroup        = 0.6
	weightGather       = 0.2
)

// Result holds the deduplicated simplex table and its index maps.
//
//   - FF: F without duplicate rows under order-independent vertex-set equality.
//   - IA: FF row i was taken from F row IA[i] (the group's first row).
//   - IC: F row j is represented by FF row IC[j].
//
// Invariants: canon(F[IA[i]]) == canon(FF[i]); canon(FF[IC[j]]) == canon(F[j]).
type Result struct {
	FF *core.Table
	IA []int
	IC []int
}

// Simplices removes duplicate simplices from F, ignoring vertex order:
// [0,1,2] and [2,1,0] are the same simplex.
//
// Implementation:
//   - Stage 1 (weight 0.2): canonicalize each row by sorting a copy of its
//     vertex indices ascending (parallel over rows).
//   - Stage 2 (weight 0.6): group the canonical keys with GroupWith, then
//     renumber by first occurrence unless core.WithKeyOrder() is set.
//   - Stage 3 (weight 0.2): gather FF[i] = F[IA[i]] (parallel over rows).
//
// Inputs:
//   - F:    n×k table, k >= 1, non-negative indices. Not modified.
//   - opts: core options (interrupter, parallelism, verbosity, key order).
//
// Returns:
//   - Result.FF: one row per distinct simplex, copied verbatim (original
//     winding) from the first row of its group.
//   - Result.IA: source row of each FF row; ascending by default, so a
//     table without duplicates comes back unchanged with IA the identity.
//   - Result.IC: FF row of each F row.
//
// Errors:
//   - core.ErrNilTable, core.ErrFaceWidth (zero columns),
//     core.ErrNegativeIndex, core.ErrOptionViolation.
//   - interrupt.ErrInterrupted (Result is empty).
//
// Complexity:
//   - Time O(n·k log k) canonicalization, O(n log n · k) grouping, O(n·k)
//     gather. Space O(n·k).
func Simplices(F *core.Table, opts ...core.Option) (Result, error) {
	o, err := core.Gather(opts...)
	if err != nil {
		return Result{}, err
	}
	if err = validateSimplices(F); err != nil {
		return Result{}, err
	}
	in := o.Interrupter()
	n, k := F.Rows(), F.Cols()

	// 1) Canonical keys: each row sorted ascending, backed by one buffer.
	if interrupt.Begin(in, weightCanonicalize) {
		return Result{}, interrupt.ErrInterrupted
	}
	buf := make([]int, n*k)
	keys := make([][]int, n)
	err = core.ParallelFor(n, o, func(i int) error {
		key := buf[i*k : (i+1)*k : (i+1)*k]
		copy(key, F.Row(i))
		slices.Sort(key)
		keys[i] = key
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	if interrupt.End(in) {
		return Result{}, interrupt.ErrInterrupted
	}

	// 2) Sort and group canonical keys.
	if interrupt.Begin(in, weightGroup) {
		return Result{}, interrupt.ErrInterrupted
	}
	g, err := GroupWith(keys, func(a, b []int) int { return slices.Compare(a, b) }, o)
	if err != nil {
		return Result{}, err
	}
	if !o.KeyOrder() {
		g = g.ByFirstOccurrence()
	}
	if interrupt.End(in) {
		return Result{}, interrupt.ErrInterrupted
	}

	// 3) Gather representatives; each output row is independent.
	if interrupt.Begin(in, weightGather) {
		return Result{}, interrupt.ErrInterrupted
	}
	FF, err := core.NewTable(g.Len(), k)
	if err != nil {
		return Result{}, err
	}
	err = core.ParallelFor(g.Len(), o, func(i int) error {
		copy(FF.Row(i), F.Row(g.Rep[i]))
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	if interrupt.End(in) {
		return Result{}, interrupt.ErrInterrupted
	}

	o.Logf("unique: %d simplices of width %d -> %d unique", n, k, g.Len())

	return Result{FF: FF, IA: g.Rep, IC: g.Of}, nil
}

// SimplicesOnly is Simplices returning just the deduplicated table.
func SimplicesOnly(F *core.Table, opts ...core.Option) (*core.Table, error) {
	res, err := Simplices(F, opts...)
	if err != nil {
		return nil, err
	}

	return res.FF, nil
}

// validateSimplices accepts any width >= 1 (vertices, edges, triangles, tets).
func validateSimplices(F *core.Table) error {
	if err := core.ValidateNotNil(F); err != nil {
		return err
	}
	if F.Cols() < 1 {
		return errors.Wrap(core.ErrFaceWidth, "unique: simplices need at least one column")
	}

	return core.ValidateIndices(F)
}
