package internaldefs

import (
	goTelemetry "github.com/MrEthical07/goTelemetry"
)

// CounterDef binds a pipeline counter to its stable exported name.
type CounterDef struct {
	ID   goTelemetry.MetricID
	Name string
	Help string
}

// HistogramDef binds a pipeline histogram to its stable exported name.
type HistogramDef struct {
	ID   goTelemetry.MetricID
	Name string
	Help string
}

// CounterDefs lists every exported counter in snapshot order.
var CounterDefs = []CounterDef{
	{ID: goTelemetry.MetricEventsLogged, Name: "gotelemetry_events_logged_total", Help: "Events accepted by Log while dispatch was enabled."},
	{ID: goTelemetry.MetricFanoutCompleted, Name: "gotelemetry_fanout_completed_total", Help: "Fully executed fan-outs."},
	{ID: goTelemetry.MetricBackendSuccesses, Name: "gotelemetry_backend_success_total", Help: "Backend sends that returned success."},
	{ID: goTelemetry.MetricBackendFailures, Name: "gotelemetry_backend_failure_total", Help: "Backend sends that returned an error."},
	{ID: goTelemetry.MetricBackendPanics, Name: "gotelemetry_backend_panic_total", Help: "Backend sends contained by the panic guard."},
}

// HistogramDefs lists every exported histogram.
var HistogramDefs = []HistogramDef{
	{ID: goTelemetry.MetricFanoutLatency, Name: "gotelemetry_fanout_latency_seconds", Help: "Fan-out duration histogram."},
}

// HistogramBounds are the upper bucket bounds in Prometheus label form.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix are the bounds in metric-name-safe form for backends
// that cannot express labels.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets pads or truncates a raw snapshot slice to the fixed bucket
// count.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets converts per-bucket counts to cumulative counts.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
