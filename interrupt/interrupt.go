package interrupt

import "errors"

// ErrInterrupted is returned by a stage that observed cancellation.
// It is not a failure of the input: the caller asked the work to stop.
var ErrInterrupted = errors.New("interrupt: operation cancelled")

// Interrupter is the cancellation-and-progress capability consumed by every
// pipeline stage.
type Interrupter interface {
	// Cancelled reports whether the caller requested an early return.
	Cancelled() bool

	// BeginSection opens a nested section carrying the given relative weight
	// (fraction of the enclosing section, in [0,1]).
	BeginSection(weight float64)

	// EndSection closes the innermost open section.
	EndSection()
}

// Reporter is implemented by interrupters that accept fine-grained progress
// inside the current section. fraction is in [0,1].
type Reporter interface {
	Report(fraction float64)
}

// Begin opens a section on in and then polls it.
// Returns true when the stage must return ErrInterrupted.
func Begin(in Interrupter, weight float64) bool {
	if in == nil {
		return false
	}
	in.BeginSection(weight)

	return in.Cancelled()
}

// End closes the current section on in and then polls it.
// Returns true when the stage must return ErrInterrupted.
func End(in Interrupter) bool {
	if in == nil {
		return false
	}
	in.EndSection()

	return in.Cancelled()
}

// Check polls in for cancellation; a nil handle is never cancelled.
func Check(in Interrupter) bool {
	return in != nil && in.Cancelled()
}

// CheckAt forwards fraction to in when it is a Reporter, then polls it.
func CheckAt(in Interrupter, fraction float64) bool {
	if in == nil {
		return false
	}
	if r, ok := in.(Reporter); ok {
		r.Report(fraction)
	}

	return in.Cancelled()
}

// Func adapts a predicate into an Interrupter with no section bookkeeping.
type Func func() bool

// Cancelled calls f; a nil Func is never cancelled.
func (f Func) Cancelled() bool {
	if f == nil {
		return false
	}

	return f()
}

// BeginSection is a no-op.
func (Func) BeginSection(float64) {}

// EndSection is a no-op.
func (Func) EndSection() {}
