package interrupt

import (
	"context"
	"math"
	"sync"
	"sync/atomic"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// frame is one open section in absolute progress units.
//   - start:  overall fraction at which the section began.
//   - span:   overall fraction the section accounts for.
//   - cursor: overall fraction reached by the section's closed children.
type frame struct {
	start, span, cursor float64
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithOnProgress registers a callback invoked whenever overall progress
// increases. It is called outside the tracker lock, possibly from several
// worker goroutines.
func WithOnProgress(fn func(progress float64)) TrackerOption {
	return func(t *Tracker) {
		if fn != nil {
			t.onProgress = fn
		}
	}
}

// Tracker is a context-aware Interrupter that folds nested weighted
// sections into a single monotonic completion fraction.
//
// Cancellation is observed when Cancel was called or the context is done.
// Cancelled and Report are safe for concurrent use by parallel workers;
// Begin/EndSection are expected on the stage's own goroutine but are locked
// as well.
type Tracker struct {
	ctx       context.Context
	cancelled atomic.Bool

	mu         sync.Mutex
	frames     *arraystack.Stack // of *frame; bottom is the root [0,1]
	progress   float64
	onProgress func(float64)
}

var (
	_ Interrupter = (*Tracker)(nil)
	_ Reporter    = (*Tracker)(nil)
)

// NewTracker returns a Tracker bound to ctx (Background when nil).
func NewTracker(ctx context.Context, opts ...TrackerOption) *Tracker {
	if ctx == nil {
		ctx = context.Background()
	}
	t := &Tracker{
		ctx:    ctx,
		frames: arraystack.New(),
	}
	t.frames.Push(&frame{start: 0, span: 1})
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Cancel requests cancellation. Idempotent.
func (t *Tracker) Cancel() {
	if t != nil {
		t.cancelled.Store(true)
	}
}

// Cancelled reports whether Cancel was called or the context is done.
func (t *Tracker) Cancelled() bool {
	if t == nil {
		return false
	}
	if t.cancelled.Load() {
		return true
	}
	if t.ctx.Err() != nil {
		t.cancelled.Store(true)
		return true
	}

	return false
}

// BeginSection pushes a child section worth weight of the current one.
// Weights outside [0,1] are clamped.
func (t *Tracker) BeginSection(weight float64) {
	if t == nil {
		return
	}
	weight = clamp01(weight)

	t.mu.Lock()
	top := t.top()
	t.frames.Push(&frame{
		start:  top.cursor,
		span:   top.span * weight,
		cursor: top.cursor,
	})
	t.mu.Unlock()
}

// EndSection pops the current section and advances its parent past it.
// An EndSection without a matching BeginSection is ignored.
func (t *Tracker) EndSection() {
	if t == nil {
		return
	}

	t.mu.Lock()
	if t.frames.Size() <= 1 {
		t.mu.Unlock()
		return
	}
	v, _ := t.frames.Pop()
	child := v.(*frame)
	parent := t.top()
	parent.cursor = child.start + child.span
	fn, p, moved := t.advance(parent.cursor)
	t.mu.Unlock()

	if moved {
		fn(p)
	}
}

// Report records fine-grained progress inside the current section.
func (t *Tracker) Report(fraction float64) {
	if t == nil {
		return
	}
	fraction = clamp01(fraction)

	t.mu.Lock()
	top := t.top()
	fn, p, moved := t.advance(top.start + fraction*top.span)
	t.mu.Unlock()

	if moved {
		fn(p)
	}
}

// Progress returns the overall completion fraction in [0,1].
func (t *Tracker) Progress() float64 {
	if t == nil {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.progress
}

// Depth returns the number of currently open sections.
func (t *Tracker) Depth() int {
	if t == nil {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.frames.Size() - 1
}

// top returns the innermost frame. Caller holds mu.
func (t *Tracker) top() *frame {
	v, _ := t.frames.Peek()

	return v.(*frame)
}

// advance raises progress to p if it grows; reports whether the callback
// must fire. Caller holds mu.
func (t *Tracker) advance(p float64) (func(float64), float64, bool) {
	if p <= t.progress {
		return nil, 0, false
	}
	t.progress = p
	if t.onProgress == nil {
		return nil, 0, false
	}

	return t.onProgress, p, true
}

func clamp01(x float64) float64 {
	switch {
	case x < 0 || math.IsNaN(x):
		return 0
	case x > 1:
		return 1
	}

	return x
}
