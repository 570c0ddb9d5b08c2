package goTelemetry

import (
	"testing"
	"time"
)

func TestMetricsIncAndValue(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	m.Inc(MetricEventsLogged)
	m.Inc(MetricEventsLogged)
	m.Inc(MetricBackendFailures)

	if got := m.Value(MetricEventsLogged); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if got := m.Value(MetricBackendFailures); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if got := m.Value(MetricBackendPanics); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestMetricsDisabledIsNoOp(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: false})

	m.Inc(MetricEventsLogged)
	m.Observe(MetricFanoutLatency, time.Millisecond)

	if m.Enabled() {
		t.Fatal("expected disabled metrics")
	}
	if got := m.Value(MetricEventsLogged); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}

	snapshot := m.Snapshot()
	if len(snapshot.Counters) != 0 || len(snapshot.Histograms) != 0 {
		t.Fatal("expected an empty snapshot from disabled metrics")
	}
}

func TestMetricsNilReceiverSafe(t *testing.T) {
	var m *Metrics

	m.Inc(MetricEventsLogged)
	m.Observe(MetricFanoutLatency, time.Millisecond)

	if m.Enabled() {
		t.Fatal("expected nil metrics to report disabled")
	}
	if m.Value(MetricEventsLogged) != 0 {
		t.Fatal("expected 0 from nil metrics")
	}
	snapshot := m.Snapshot()
	if len(snapshot.Counters) != 0 {
		t.Fatal("expected an empty snapshot from nil metrics")
	}
}

func TestMetricsObserveRequiresLatencyEnabled(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	m.Observe(MetricFanoutLatency, 3*time.Millisecond)

	if buckets, ok := m.Snapshot().Histograms[MetricFanoutLatency]; ok {
		t.Fatalf("expected no histogram without latency enabled, got %v", buckets)
	}
}

func TestMetricsObserveFillsBuckets(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true, EnableLatencyHistograms: true})

	m.Observe(MetricFanoutLatency, 3*time.Millisecond)
	m.Observe(MetricFanoutLatency, 40*time.Millisecond)
	m.Observe(MetricFanoutLatency, time.Second)

	buckets := m.Snapshot().Histograms[MetricFanoutLatency]
	if len(buckets) != histBucketCount {
		t.Fatalf("expected %d buckets, got %d", histBucketCount, len(buckets))
	}
	if buckets[0] != 1 {
		t.Fatalf("expected one sample in the <=5ms bucket, got %d", buckets[0])
	}
	if buckets[3] != 1 {
		t.Fatalf("expected one sample in the <=50ms bucket, got %d", buckets[3])
	}
	if buckets[7] != 1 {
		t.Fatalf("expected one sample in the overflow bucket, got %d", buckets[7])
	}
}

func TestBucketIndexBoundaries(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want int
	}{
		{0, 0},
		{5 * time.Millisecond, 0},
		{6 * time.Millisecond, 1},
		{10 * time.Millisecond, 1},
		{25 * time.Millisecond, 2},
		{50 * time.Millisecond, 3},
		{100 * time.Millisecond, 4},
		{250 * time.Millisecond, 5},
		{500 * time.Millisecond, 6},
		{501 * time.Millisecond, 7},
		{time.Minute, 7},
	}

	for _, tc := range cases {
		if got := bucketIndex(tc.d); got != tc.want {
			t.Errorf("bucketIndex(%v) = %d, want %d", tc.d, got, tc.want)
		}
	}
}
