// SPDX-License-Identifier: MIT

// Package core: functional configuration shared by every pipeline stage.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors; invalid values are recorded and surfaced as
//     ErrOptionViolation by Gather (no panics on user input),
//   - Gather, the single entry point stages use to resolve ...Option.

package core

import (
	"runtime"

	"github.com/katalvlaran/lvlmesh/interrupt"
	"github.com/pkg/errors"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultParallelMin is the minimum loop length for data-parallel
	// fan-out. Below it the dispatch overhead outweighs the gain and loops
	// run sequentially.
	DefaultParallelMin = 1000

	// DefaultWorkers of 0 resolves to runtime.GOMAXPROCS(0).
	DefaultWorkers = 0

	// DefaultVerbose keeps stages silent.
	DefaultVerbose = false

	// DefaultKeyOrder=false emits deduplicated rows in first-occurrence order.
	DefaultKeyOrder = false
)

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
// Fields are unexported; stages read them through accessors.
type Options struct {
	in          interrupt.Interrupter
	parallelMin int
	workers     int
	verbose     bool
	keyOrder    bool

	err error // first invalid option, surfaced by Gather
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		parallelMin: DefaultParallelMin,
		workers:     DefaultWorkers,
		verbose:     DefaultVerbose,
		keyOrder:    DefaultKeyOrder,
	}
}

// Gather applies opts over DefaultOptions.
//
// Errors:
//   - ErrOptionViolation (wrapped) for the first invalid option.
func Gather(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}

// reject records the first option violation.
func (o *Options) reject(format string, args ...interface{}) {
	if o.err == nil {
		o.err = errors.Wrapf(ErrOptionViolation, format, args...)
	}
}

// ---------- Constructors (WithX) ----------

// WithInterrupter threads a cancellation/progress handle through the stage.
// A nil handle means "never cancelled, no progress tracking".
func WithInterrupter(in interrupt.Interrupter) Option {
	return func(o *Options) { o.in = in }
}

// WithParallelMin sets the minimum loop length that triggers fan-out.
//
//	n >= 0: loops of length <= n run sequentially
//	n <  0: invalid → ErrOptionViolation
func WithParallelMin(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.reject("ParallelMin cannot be negative (%d)", n)
			return
		}
		o.parallelMin = n
	}
}

// WithWorkers caps the number of concurrent workers.
//
//	n == 0: GOMAXPROCS
//	n == 1: always sequential
//	n <  0: invalid → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.reject("Workers cannot be negative (%d)", n)
			return
		}
		o.workers = n
	}
}

// WithVerbose enables klog stage summaries.
func WithVerbose() Option {
	return func(o *Options) { o.verbose = true }
}

// WithKeyOrder makes deduplicators emit groups in canonical key order
// instead of first-occurrence order.
func WithKeyOrder() Option {
	return func(o *Options) { o.keyOrder = true }
}

// WithConfig applies an environment-loaded Config.
func WithConfig(cfg Config) Option {
	return func(o *Options) {
		WithParallelMin(cfg.ParallelMin)(o)
		WithWorkers(cfg.Workers)(o)
		if cfg.Verbose {
			o.verbose = true
		}
	}
}

// ---------- Accessors ----------

// Interrupter returns the configured handle (possibly nil).
func (o Options) Interrupter() interrupt.Interrupter { return o.in }

// ParallelMin returns the fan-out threshold.
func (o Options) ParallelMin() int { return o.parallelMin }

// Workers returns the resolved worker count (>= 1).
func (o Options) Workers() int {
	if o.workers > 0 {
		return o.workers
	}

	return runtime.GOMAXPROCS(0)
}

// Verbose reports whether stage logging is on.
func (o Options) Verbose() bool { return o.verbose }

// KeyOrder reports whether deduplicated output follows canonical key order.
func (o Options) KeyOrder() bool { return o.keyOrder }
