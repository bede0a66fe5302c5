package edges

import (
	"github.com/katalvlaran/lvlmesh/core"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"
)

// AverageLength returns the mean length of every face-edge of F over the
// vertex positions V. An edge shared by two faces counts twice, once per
// face, so the denominator is m·k.
//
// Errors:
//   - core.ErrNilTable, core.ErrFaceWidth (k < 2), core.ErrNegativeIndex,
//   - ErrVertexOutOfRange when a face index has no position in V,
//   - core.ErrOptionViolation, interrupt.ErrInterrupted.
//
// Returns 0 for a face table with no rows.
//
// Complexity: O(m·k). Per-face sums fan out; the final sum runs in face
// order so the result does not depend on scheduling.
func AverageLength(V []r3.Vec, F *core.Table, opts ...core.Option) (float64, error) {
	o, err := core.Gather(opts...)
	if err != nil {
		return 0, err
	}
	if err = core.ValidateFaces(F, core.AnyWidth); err != nil {
		return 0, err
	}
	m, k := F.Rows(), F.Cols()
	if m == 0 {
		return 0, nil
	}
	for f := 0; f < m; f++ {
		for c, v := range F.Row(f) {
			if v >= len(V) {
				return 0, errors.Wrapf(ErrVertexOutOfRange, "edges: F[%d][%d] = %d, have %d positions", f, c, v, len(V))
			}
		}
	}

	sums := make([]float64, m)
	err = core.ParallelFor(m, o, func(f int) error {
		row := F.Row(f)
		s := 0.0
		for c := 0; c < k; c++ {
			s += r3.Norm(r3.Sub(V[row[(c+1)%k]], V[row[c]]))
		}
		sums[f] = s
		return nil
	})
	if err != nil {
		return 0, err
	}

	total := 0.0
	for _, s := range sums {
		total += s
	}

	return total / float64(m*k), nil
}
