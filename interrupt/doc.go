// Package interrupt provides the cooperative cancellation and progress
// protocol threaded through every lvlmesh pipeline stage.
//
// What
//
//   - Interrupter is an explicit, optionally-absent capability handed to each
//     stage entry point (never global state). It answers one question,
//     Cancelled(), and receives section brackets, BeginSection(weight) and
//     EndSection().
//   - A section weight is the fraction of the enclosing section's expected
//     cost. Weights of sibling sections inside one stage sum to 1.0, so an
//     observer can fold nested brackets into one overall completion fraction.
//   - Reporter is an optional extension for fine-grained progress inside a
//     section (per-face, per-row loops).
//
// Nil handles
//
//	Every helper (Begin, End, Check, CheckAt) accepts a nil Interrupter and
//	then behaves as "never cancelled, nothing tracked". Call sites never
//	branch on nil themselves.
//
// Semantics
//
//   - Cancellation is advisory: a stage polls at loop boundaries and returns
//     ErrInterrupted as soon as it observes Cancelled() == true. A single
//     long step (one big sort) is not preempted.
//   - Outputs of an interrupted stage are discarded; nothing is rolled back.
//   - Cancelled() is read concurrently by parallel workers and must be safe
//     for that (Tracker uses an atomic flag).
//
// Implementations
//
//	Tracker: context-aware handle with nested weighted progress and an
//	         optional progress callback.
//	Traced: wraps any Interrupter and opens an OpenTelemetry span per
//	        section, so pipeline phases show up in traces.
//	Func: adapts a bare predicate (no bookkeeping).
//
// Usage
//
//	tr := interrupt.NewTracker(ctx, interrupt.WithOnProgress(func(p float64) {
//		fmt.Printf("%.0f%%\n", 100*p)
//	}))
//	res, err := adjacency.TrianglesGeneral(F, true, core.WithInterrupter(tr))
//	if errors.Is(err, interrupt.ErrInterrupted) {
//		// caller asked to stop; res is empty
//	}
package interrupt
