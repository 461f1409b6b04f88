// Package instrument attaches observability to reactive nodes.
//
// Everything here rides the core's observer mechanism: attaching
// instrumentation is just another subscription, so it shares the
// subscription's lifetime semantics (it cannot be removed, and it keeps
// firing for as long as the node is written to).
//
// Prometheus:
//
//	m := instrument.NewMetrics(instrument.WithNamespace("myapp"))
//	instrument.CountUpdates(m, temperature, "temperature")
//	instrument.GaugeValue(m, temperature, "temperature")
//
// OpenTelemetry:
//
//	instrument.TraceUpdates(temperature, "temperature")
package instrument
