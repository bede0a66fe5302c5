package edges

import "github.com/katalvlaran/lvlmesh/core"

// All extracts every face-edge of F as an Oriented record.
//
// For m faces of width k the result has m·k records; the record of corner c
// of face f sits at linear position f + m·c and holds
// (min, max) of F[f][c] and F[f][(c+1) mod k].
//
// Errors:
//   - core.ErrNilTable, core.ErrFaceWidth (k < 2), core.ErrNegativeIndex,
//     core.ErrOptionViolation, interrupt.ErrInterrupted.
//
// Complexity: O(m·k). Records are independent, so faces fan out.
func All(F *core.Table, opts ...core.Option) ([]Oriented, error) {
	o, err := core.Gather(opts...)
	if err != nil {
		return nil, err
	}
	if err = core.ValidateFaces(F, core.AnyWidth); err != nil {
		return nil, err
	}

	return all(F, o)
}

// all assumes F was validated.
func all(F *core.Table, o core.Options) ([]Oriented, error) {
	m, k := F.Rows(), F.Cols()
	E := make([]Oriented, m*k)
	err := core.ParallelFor(m, o, func(f int) error {
		row := F.Row(f)
		for c := 0; c < k; c++ {
			v1, v2 := row[c], row[(c+1)%k]
			if v1 > v2 {
				v1, v2 = v2, v1
			}
			E[f+m*c] = Oriented{Lo: v1, Hi: v2, Face: f, Corner: c}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return E, nil
}
