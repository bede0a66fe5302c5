package adjacency

import (
	"github.com/katalvlaran/lvlmesh/core"
	"github.com/katalvlaran/lvlmesh/edges"
	"github.com/katalvlaran/lvlmesh/interrupt"
)

// TrianglesGeneral computes the general (non-manifold safe) adjacency of the
// triangle table F. withSlots selects whether TTi is built; skipping it
// halves the per-edge work when only face adjacency is needed.
//
// Steps:
//  1. Section 0.5: edges.UniqueEdgeMapWith(F).
//  2. Section 0.5: for every face f and corner c, position e = f + m·c,
//     scan UE2E[EMAP[e]] and keep every occurrence on another face.
//
// Errors:
//   - core.ErrNilTable, core.ErrFaceWidth (F is not m×3),
//     core.ErrNegativeIndex, core.ErrOptionViolation,
//   - interrupt.ErrInterrupted (result is empty).
//
// Complexity: O(N log N) for the edge map plus O(Σ bucket²) for the scan,
// which is O(m) on manifold input. The scan fans out over faces.
func TrianglesGeneral(F *core.Table, withSlots bool, opts ...core.Option) (General, error) {
	o, err := core.Gather(opts...)
	if err != nil {
		return General{}, err
	}
	if err = core.ValidateFaces(F, core.TriangleWidth); err != nil {
		return General{}, err
	}
	in := o.Interrupter()

	if interrupt.Begin(in, weightEdgeMap) {
		return General{}, interrupt.ErrInterrupted
	}
	em, err := edges.UniqueEdgeMapWith(F, o)
	if err != nil {
		return General{}, err
	}
	if interrupt.End(in) {
		return General{}, interrupt.ErrInterrupted
	}

	if interrupt.Begin(in, weightBuild) {
		return General{}, interrupt.ErrInterrupted
	}
	g, err := general(em, withSlots, o)
	if err != nil {
		return General{}, err
	}
	if interrupt.End(in) {
		return General{}, interrupt.ErrInterrupted
	}

	return g, nil
}

// FromEdgeMap computes the general adjacency from a precomputed unique-edge
// map of a triangle table.
//
// Errors:
//   - core.ErrFaceWidth when em.Width != 3,
//   - core.ErrNilTable / core.ErrDimensionMismatch from em.Validate,
//   - core.ErrOptionViolation, interrupt.ErrInterrupted.
func FromEdgeMap(em *edges.Map, withSlots bool, opts ...core.Option) (General, error) {
	o, err := core.Gather(opts...)
	if err != nil {
		return General{}, err
	}
	if err = validateMap(em); err != nil {
		return General{}, err
	}

	return general(em, withSlots, o)
}

// general assumes em was validated and describes triangles.
// Each face's lists are owned by that face's iteration.
func general(em *edges.Map, withSlots bool, o core.Options) (General, error) {
	m := em.Faces
	g := General{TT: make([][][]int, m)}
	if withSlots {
		g.TTi = make([][][]int, m)
	}

	err := core.ParallelFor(m, o, func(f int) error {
		tt := make([][]int, core.TriangleWidth)
		var tti [][]int
		if withSlots {
			tti = make([][]int, core.TriangleWidth)
		}
		for c := 0; c < core.TriangleWidth; c++ {
			bucket := em.UE2E[em.EMAP[em.Position(f, c)]]
			tt[c] = make([]int, 0, len(bucket)-1)
			if withSlots {
				tti[c] = make([]int, 0, len(bucket)-1)
			}
			for _, ne := range bucket {
				nf := em.FaceOf(ne)
				if nf == f {
					continue
				}
				tt[c] = append(tt[c], nf)
				if withSlots {
					tti[c] = append(tti[c], em.CornerOf(ne))
				}
			}
		}
		g.TT[f] = tt
		if withSlots {
			g.TTi[f] = tti
		}
		return nil
	})
	if err != nil {
		return General{}, err
	}
	o.Logf("adjacency: general form for %d faces (slots=%t)", m, withSlots)

	return g, nil
}
