package adjacency

import (
	"github.com/katalvlaran/lvlmesh/core"
	"github.com/katalvlaran/lvlmesh/edges"
	"github.com/katalvlaran/lvlmesh/interrupt"
	"github.com/pkg/errors"
)

// Triangles computes the dense adjacency of the triangle table F.
//
// Implementation:
//   - Stage 1 (weight 0.5): edges.UniqueEdgeMapWith(F).
//   - Stage 2 (weight 0.5): for every unique edge used by exactly two
//     distinct faces, write each face into the other's slot (parallel over
//     unique edges; every position belongs to one bucket, so writes never
//     overlap).
//
// Inputs:
//   - F:         m×3 table with non-negative indices. Not modified.
//   - withSlots: also build TTi.
//   - opts:      core options (interrupter, parallelism, verbosity).
//
// Returns:
//   - Dense.TT:  m×3, the face across each corner or None.
//   - Dense.TTi: m×3, the matching corner or None; nil without slots.
//
// Errors:
//   - core.ErrNilTable, core.ErrFaceWidth (F is not m×3),
//     core.ErrNegativeIndex, core.ErrOptionViolation.
//   - interrupt.ErrInterrupted (result is empty).
//
// Complexity:
//   - Time O(N log N) for the edge map (N = 3m), O(U) for the projection
//     over U unique edges. Space O(N).
//
// Notes:
//   - Dense comes from the same buckets as the general form: a slot holds a
//     neighbor exactly when its general list has length one. Boundary and
//     non-manifold slots stay None.
func Triangles(F *core.Table, withSlots bool, opts ...core.Option) (Dense, error) {
	o, err := core.Gather(opts...)
	if err != nil {
		return Dense{}, err
	}
	if err = core.ValidateFaces(F, core.TriangleWidth); err != nil {
		return Dense{}, err
	}
	in := o.Interrupter()

	if interrupt.Begin(in, weightEdgeMap) {
		return Dense{}, interrupt.ErrInterrupted
	}
	em, err := edges.UniqueEdgeMapWith(F, o)
	if err != nil {
		return Dense{}, err
	}
	if interrupt.End(in) {
		return Dense{}, interrupt.ErrInterrupted
	}

	if interrupt.Begin(in, weightBuild) {
		return Dense{}, interrupt.ErrInterrupted
	}
	d, err := dense(em, withSlots, o)
	if err != nil {
		return Dense{}, err
	}
	if interrupt.End(in) {
		return Dense{}, interrupt.ErrInterrupted
	}

	return d, nil
}

// DenseFromEdgeMap projects a precomputed unique-edge map of a triangle
// table onto the dense form. Same errors as FromEdgeMap.
func DenseFromEdgeMap(em *edges.Map, withSlots bool, opts ...core.Option) (Dense, error) {
	o, err := core.Gather(opts...)
	if err != nil {
		return Dense{}, err
	}
	if err = validateMap(em); err != nil {
		return Dense{}, err
	}

	return dense(em, withSlots, o)
}

// dense fans out over unique edges. Every position belongs to exactly one
// bucket, so each iteration writes slots no other iteration touches.
func dense(em *edges.Map, withSlots bool, o core.Options) (Dense, error) {
	m := em.Faces
	TT, err := core.NewFilledTable(m, core.TriangleWidth, None)
	if err != nil {
		return Dense{}, err
	}
	var TTi *core.Table
	if withSlots {
		if TTi, err = core.NewFilledTable(m, core.TriangleWidth, None); err != nil {
			return Dense{}, err
		}
	}

	err = core.ParallelFor(em.Len(), o, func(u int) error {
		bucket := em.UE2E[u]
		if len(bucket) != 2 {
			return nil
		}
		f1, c1 := em.FaceOf(bucket[0]), em.CornerOf(bucket[0])
		f2, c2 := em.FaceOf(bucket[1]), em.CornerOf(bucket[1])
		if f1 == f2 {
			return nil
		}
		TT.Put(f1, c1, f2)
		TT.Put(f2, c2, f1)
		if withSlots {
			TTi.Put(f1, c1, c2)
			TTi.Put(f2, c2, c1)
		}
		return nil
	})
	if err != nil {
		return Dense{}, err
	}
	if o.Verbose() {
		if nm := em.NonManifold(); len(nm) > 0 {
			o.Warnf("adjacency: %d non-manifold edges left at None in dense form", len(nm))
		}
		o.Logf("adjacency: dense form for %d faces (slots=%t)", m, withSlots)
	}

	return Dense{TT: TT, TTi: TTi}, nil
}

// validateMap checks a caller-supplied edge map before adjacency is built.
func validateMap(em *edges.Map) error {
	if em == nil {
		return errors.Wrap(core.ErrNilTable, "adjacency: nil edge map")
	}
	if em.Width != core.TriangleWidth {
		return errors.Wrapf(core.ErrFaceWidth, "adjacency: edge map of width %d, want %d", em.Width, core.TriangleWidth)
	}

	return em.Validate()
}
