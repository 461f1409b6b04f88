package instrument

import (
	"context"
	"sync"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/embedded"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vango-dev/reactive/pkg/reactive"
)

// countingTracer records span names and delegates span creation to a
// noop tracer.
type countingTracer struct {
	embedded.Tracer

	mu    sync.Mutex
	names []string
	noop  trace.Tracer
}

func newCountingTracer() *countingTracer {
	return &countingTracer{noop: noop.NewTracerProvider().Tracer("test")}
}

func (t *countingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	t.mu.Lock()
	t.names = append(t.names, name)
	t.mu.Unlock()
	return t.noop.Start(ctx, name, opts...)
}

func (t *countingTracer) spanCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.names)
}

func TestTraceUpdatesRecordsSpanPerWrite(t *testing.T) {
	tracer := newCountingTracer()

	n := reactive.New(0)
	TraceUpdates(n, "counter", WithTracer(tracer), WithIncludeValue(true))

	if tracer.spanCount() != 0 {
		t.Errorf("attaching must not record a span, got %d", tracer.spanCount())
	}

	n.Set(1)
	n.Update(func(v int) int { return v + 1 })

	if tracer.spanCount() != 2 {
		t.Errorf("expected 2 spans, got %d", tracer.spanCount())
	}
	if tracer.names[0] != "reactive.update" {
		t.Errorf("unexpected span name %q", tracer.names[0])
	}
}

func TestTraceUpdatesGlobalTracerDefault(t *testing.T) {
	// Without an explicit tracer the global provider (noop unless
	// configured) is used; writes must still fan out normally.
	n := reactive.New("x")
	TraceUpdates(n, "label")

	n.Set("y")
	if n.Get() != "y" {
		t.Errorf("expected committed value, got %q", n.Get())
	}
}
