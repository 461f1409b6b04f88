package instrument

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/reactive/pkg/reactive"
)

// MetricsConfig configures the Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "reactive").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace:   "reactive",
		Subsystem:   "",
		ConstLabels: nil,
		Registry:    prometheus.DefaultRegisterer,
	}
}

// Metrics holds the metric families shared by every instrumented node.
// Create one per registry; attaching is done with CountUpdates and
// GaugeValue, which are free functions because Go methods cannot carry
// their own type parameters.
type Metrics struct {
	updatesTotal *prometheus.CounterVec
	value        *prometheus.GaugeVec
}

// NewMetrics registers the reactive metric families with the configured
// registry and returns a handle for attaching nodes to them.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		updatesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "updates_total",
			Help:        "Total number of values committed to the node",
			ConstLabels: config.ConstLabels,
		}, []string{"node"}),

		value: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "value",
			Help:        "Current value of the node",
			ConstLabels: config.ConstLabels,
		}, []string{"node"}),
	}
}

// CountUpdates attaches an observer that increments the updates_total
// counter for the named node once per committed write. The counter is
// returned for direct inspection.
func CountUpdates[T any](m *Metrics, n *reactive.Node[T], name string) prometheus.Counter {
	counter := m.updatesTotal.WithLabelValues(name)
	n.Observe(func(T) {
		counter.Inc()
	})
	return counter
}

// Number covers the numeric kinds a node can mirror into a gauge.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// GaugeValue mirrors the node's numeric value into the value gauge for
// the named node: the gauge is seeded from the current value and then
// follows every committed write. Seeding and subscription happen in one
// critical section on the node, so a concurrent write cannot leave the
// gauge stale.
func GaugeValue[T Number](m *Metrics, n *reactive.Node[T], name string) prometheus.Gauge {
	gauge := m.value.WithLabelValues(name)
	n.ObserveWithCurrent(func(v T) {
		gauge.Set(float64(v))
	})
	return gauge
}
