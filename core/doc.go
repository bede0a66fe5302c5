// SPDX-License-Identifier: MIT

// Package core provides the shared building blocks of lvlmesh: the integer
// Table container, the sentinel error set, precondition validators,
// functional options, environment configuration, verbose logging and the
// data-parallel loop used by every stage.
//
// Table
//
//	A rows×cols row-major []int. It stores face tables (F, FF), unique edges
//	(uE) and dense adjacency (TT, TTi). Checked accessors At/Set return
//	ErrOutOfRange; Get/Put are unchecked for hot loops validated up front.
//
//	    F := core.MustTable([][]int{{0, 1, 2}, {1, 0, 3}})
//	    F.Rows(), F.Cols() // 2, 3
//
// Validators
//
//	ValidateFaces(F, width) runs NotNil → width → non-negative indices and
//	returns wrapped sentinels (ErrNilTable, ErrFaceWidth, ErrNegativeIndex).
//	Every stage calls it before any allocation.
//
// Options
//
//	– WithInterrupter(in)   cancellation/progress handle (nil = none)
//	– WithParallelMin(n)    fan-out threshold (default 1000)
//	– WithWorkers(n)        worker cap (0 = GOMAXPROCS, 1 = sequential)
//	– WithVerbose()         klog stage summaries
//	– WithKeyOrder()        deduplicated rows in canonical key order
//	– WithConfig(cfg)       apply LoadConfig() from the environment
//
// Concurrency
//
//	ParallelFor fans independent iterations out over an errgroup when the
//	loop is long enough. Workers own disjoint output slots and read shared
//	inputs only, so no lock is needed; cancellation is polled per iteration.
//
// Errors
//
//	ErrNilTable, ErrBadShape, ErrOutOfRange, ErrRagged, ErrFaceWidth,
//	ErrNegativeIndex, ErrDimensionMismatch, ErrOptionViolation.
package core
