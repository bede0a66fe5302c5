// SPDX-License-Identifier: MIT

package core

import (
	"context"

	"github.com/katalvlaran/lvlmesh/interrupt"
	"golang.org/x/sync/errgroup"
)

// reportStride is how many iterations pass between fine-grained progress
// reports. Cancellation is still polled every iteration.
const reportStride = 256

// ParallelFor calls fn(i) for every i in [0, n).
//
// Implementation:
//   - Stage 1: n <= o.ParallelMin() or o.Workers() <= 1 → one sequential loop.
//   - Stage 2: otherwise split [0, n) into contiguous chunks, one per worker.
//   - Stage 3: run the chunks through an errgroup capped at o.Workers().
//
// Inputs:
//   - n:  loop length; n <= 0 is a no-op.
//   - o:  resolved Options (interrupter, threshold, worker cap).
//   - fn: body; must only write output slots owned by i and only read
//     shared inputs. No lock is taken around fn.
//
// Returns:
//   - nil when every iteration ran.
//
// Errors:
//   - the first error returned by fn; other workers stop at their next
//     iteration.
//   - interrupt.ErrInterrupted once o.Interrupter() reports cancellation.
//     Slots already written are left as they are.
//
// Complexity:
//   - Time O(n · cost(fn) / workers), Space O(workers).
//
// Notes:
//   - Cancellation is polled before every iteration; progress within the
//     current section is reported every reportStride iterations per worker.
func ParallelFor(n int, o Options, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}
	in := o.Interrupter()
	workers := o.Workers()
	if n <= o.ParallelMin() || workers <= 1 {
		return runRange(context.Background(), in, 0, n, fn)
	}
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		start, end := lo, min(lo+chunk, n)
		g.Go(func() error {
			return runRange(ctx, in, start, end, fn)
		})
	}

	return g.Wait()
}

// runRange is one worker's loop over [start, end).
func runRange(ctx context.Context, in interrupt.Interrupter, start, end int, fn func(i int) error) error {
	span := float64(end - start)
	for i := start; i < end; i++ {
		if ctx.Err() != nil {
			return nil // a sibling failed; its error is the one reported
		}
		if (i-start)%reportStride == 0 {
			if interrupt.CheckAt(in, float64(i-start)/span) {
				return interrupt.ErrInterrupted
			}
		} else if interrupt.Check(in) {
			return interrupt.ErrInterrupted
		}
		if err := fn(i); err != nil {
			return err
		}
	}

	return nil
}
