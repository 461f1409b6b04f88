package instrument

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vango-dev/reactive/pkg/reactive"
)

func TestCountUpdates(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg))

	n := reactive.New(0)
	counter := CountUpdates(m, n, "counter")

	if got := testutil.ToFloat64(counter); got != 0 {
		t.Errorf("attaching must not count the current value, got %v", got)
	}

	n.Set(1)
	n.Update(func(v int) int { return v + 1 })
	n.UpdateInPlace(func(v *int) { *v++ })

	if got := testutil.ToFloat64(counter); got != 3 {
		t.Errorf("expected 3 updates counted, got %v", got)
	}
}

func TestCountUpdatesMultipleNodes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg))

	a := reactive.New(0)
	b := reactive.New("")
	ca := CountUpdates(m, a, "a")
	cb := CountUpdates(m, b, "b")

	a.Set(1)
	a.Set(2)
	b.Set("x")

	if got := testutil.ToFloat64(ca); got != 2 {
		t.Errorf("node a: expected 2, got %v", got)
	}
	if got := testutil.ToFloat64(cb); got != 1 {
		t.Errorf("node b: expected 1, got %v", got)
	}
}

func TestGaugeValue(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg), WithNamespace("test"), WithSubsystem("core"))

	n := reactive.New(1.5)
	gauge := GaugeValue(m, n, "temperature")

	// Seeded from the current value.
	if got := testutil.ToFloat64(gauge); got != 1.5 {
		t.Errorf("expected seed 1.5, got %v", got)
	}

	n.Set(20.5)
	if got := testutil.ToFloat64(gauge); got != 20.5 {
		t.Errorf("expected 20.5, got %v", got)
	}
}

func TestGaugeValueFollowsDerived(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg))

	base := reactive.New(10)
	doubled := reactive.Derive(base, func(v int) int { return v * 2 })
	gauge := GaugeValue(m, doubled, "doubled")

	base.Set(21)
	if got := testutil.ToFloat64(gauge); got != 42 {
		t.Errorf("expected 42, got %v", got)
	}
}
