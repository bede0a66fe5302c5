package interrupt

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/katalvlaran/lvlmesh/interrupt"

// Span attribute keys and event names.
const (
	attrWeight     = "section.weight"
	attrDepth      = "section.depth"
	eventCancelled = "cancelled"
)

// Traced wraps an Interrupter and mirrors its sections as OpenTelemetry
// spans: BeginSection starts a child span of the innermost open one and
// EndSection ends it. The first observed cancellation is recorded as an
// event on the innermost span.
//
// Stages return without closing their sections when interrupted; call
// Close afterwards to end the dangling spans.
type Traced struct {
	inner  Interrupter
	tracer trace.Tracer
	name   string

	mu       sync.Mutex
	ctxs     []context.Context // ctxs[0] is the caller's context
	spans    []trace.Span
	recorded bool
}

var (
	_ Interrupter = (*Traced)(nil)
	_ Reporter    = (*Traced)(nil)
)

// NewTraced wraps inner (may be nil). A nil tracer falls back to the global
// provider. name is used as the span name of every section.
func NewTraced(ctx context.Context, inner Interrupter, tracer trace.Tracer, name string) *Traced {
	if ctx == nil {
		ctx = context.Background()
	}
	if tracer == nil {
		tracer = otel.Tracer(instrumentationName)
	}

	return &Traced{
		inner:  inner,
		tracer: tracer,
		name:   name,
		ctxs:   []context.Context{ctx},
	}
}

// Cancelled polls the wrapped interrupter.
func (t *Traced) Cancelled() bool {
	if !Check(t.inner) {
		return false
	}

	t.mu.Lock()
	if !t.recorded {
		t.recorded = true
		if n := len(t.spans); n > 0 {
			t.spans[n-1].AddEvent(eventCancelled)
		}
	}
	t.mu.Unlock()

	return true
}

// BeginSection forwards to the wrapped interrupter and starts a span.
func (t *Traced) BeginSection(weight float64) {
	if t.inner != nil {
		t.inner.BeginSection(weight)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	parent := t.ctxs[len(t.ctxs)-1]
	ctx, span := t.tracer.Start(parent, t.name, trace.WithAttributes(
		attribute.Float64(attrWeight, weight),
		attribute.Int(attrDepth, len(t.spans)+1),
	))
	t.ctxs = append(t.ctxs, ctx)
	t.spans = append(t.spans, span)
}

// EndSection forwards to the wrapped interrupter and ends the innermost span.
func (t *Traced) EndSection() {
	if t.inner != nil {
		t.inner.EndSection()
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	n := len(t.spans)
	if n == 0 {
		return
	}
	t.spans[n-1].End()
	t.spans = t.spans[:n-1]
	t.ctxs = t.ctxs[:n]
}

// Report forwards fine-grained progress when the wrapped handle accepts it.
func (t *Traced) Report(fraction float64) {
	if r, ok := t.inner.(Reporter); ok {
		r.Report(fraction)
	}
}

// Close ends every span still open, innermost first, marking them as
// interrupted. Safe to call after a normal run (no-op).
func (t *Traced) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := len(t.spans) - 1; i >= 0; i-- {
		t.spans[i].SetStatus(codes.Error, ErrInterrupted.Error())
		t.spans[i].End()
	}
	t.spans = t.spans[:0]
	t.ctxs = t.ctxs[:1]
}
