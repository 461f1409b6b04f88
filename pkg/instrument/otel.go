package instrument

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/reactive/pkg/reactive"
)

// Default tracer name for reactive instrumentation.
const defaultTracerName = "reactive"

// TraceConfig configures the OpenTelemetry instrumentation.
type TraceConfig struct {
	// TracerName is the name of the tracer (default: "reactive").
	TracerName string

	// Attributes are added to every recorded span.
	Attributes []attribute.KeyValue

	// IncludeValue records the committed value's string form on the
	// span. Values may contain sensitive data - disabled by default.
	IncludeValue bool

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// TraceOption configures the OpenTelemetry instrumentation.
type TraceOption func(*TraceConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TraceOption {
	return func(c *TraceConfig) {
		c.TracerName = name
	}
}

// WithAttributes sets attributes added to every span.
func WithAttributes(attrs ...attribute.KeyValue) TraceOption {
	return func(c *TraceConfig) {
		c.Attributes = attrs
	}
}

// WithIncludeValue enables recording the committed value on the span.
func WithIncludeValue(include bool) TraceOption {
	return func(c *TraceConfig) {
		c.IncludeValue = include
	}
}

// WithTracer sets an explicit tracer instead of resolving one from the
// global tracer provider.
func WithTracer(tracer trace.Tracer) TraceOption {
	return func(c *TraceConfig) {
		c.tracer = tracer
	}
}

// defaultTraceConfig returns the default trace configuration.
func defaultTraceConfig() TraceConfig {
	return TraceConfig{
		TracerName: defaultTracerName,
	}
}

// TraceUpdates attaches an observer that records one span per committed
// write, carrying the node name and optionally the committed value.
//
// The tracer is resolved from the global OpenTelemetry tracer provider
// unless WithTracer is given. Configure the provider in your main()
// before the first write:
//
//	otel.SetTracerProvider(tp)
//	instrument.TraceUpdates(orders, "orders",
//	    instrument.WithIncludeValue(true),
//	)
//
// The span covers only the recording itself, not downstream propagation:
// by the time an observer runs, the value is already committed.
func TraceUpdates[T any](n *reactive.Node[T], name string, opts ...TraceOption) {
	config := defaultTraceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	tracer := config.tracer
	if tracer == nil {
		tracer = otel.Tracer(config.TracerName)
	}

	n.Observe(func(v T) {
		attrs := make([]attribute.KeyValue, 0, len(config.Attributes)+2)
		attrs = append(attrs, attribute.String("reactive.node", name))
		if config.IncludeValue {
			attrs = append(attrs, attribute.String("reactive.value", fmt.Sprint(v)))
		}
		attrs = append(attrs, config.Attributes...)

		_, span := tracer.Start(context.Background(), "reactive.update",
			trace.WithAttributes(attrs...))
		span.End()
	})
}
