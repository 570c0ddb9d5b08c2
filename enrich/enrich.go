package enrich

import (
	"context"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/google/uuid"

	goTelemetry "github.com/MrEthical07/goTelemetry"
)

// Static returns an enricher that contributes a fixed attribute set. The set
// is copied on every call so backends can never observe caller mutation.
func Static(attrs goTelemetry.Attributes) goTelemetry.AttributeEnricher {
	fixed := make(goTelemetry.Attributes, len(attrs))
	for k, v := range attrs {
		fixed[k] = v
	}
	return goTelemetry.EnricherFunc(func(context.Context) goTelemetry.Attributes {
		out := make(goTelemetry.Attributes, len(fixed))
		for k, v := range fixed {
			out[k] = v
		}
		return out
	})
}

// Chain merges the output of several enrichers in order; later enrichers win
// on key collision.
func Chain(enrichers ...goTelemetry.AttributeEnricher) goTelemetry.AttributeEnricher {
	return goTelemetry.EnricherFunc(func(ctx context.Context) goTelemetry.Attributes {
		out := goTelemetry.Attributes{}
		for _, e := range enrichers {
			if e == nil {
				continue
			}
			for k, v := range e.Attributes(ctx) {
				out[k] = v
			}
		}
		return out
	})
}

// Device contributes host and runtime attributes. The values are computed
// once; device stats of this kind do not change over a process lifetime.
func Device() goTelemetry.AttributeEnricher {
	host, _ := os.Hostname()
	fixed := goTelemetry.Attributes{
		"device_host": host,
		"device_os":   runtime.GOOS,
		"device_arch": runtime.GOARCH,
		"device_cpus": strconv.Itoa(runtime.NumCPU()),
	}
	return Static(fixed)
}

// Instance contributes a process-unique identifier, generated once at
// construction, so downstream consumers can correlate events from one run.
func Instance() goTelemetry.AttributeEnricher {
	return Static(goTelemetry.Attributes{
		"instance_id": uuid.NewString(),
	})
}

// Session contributes the current session identifier by consulting lookup on
// every dispatch. Freshness matters: the session may rotate between events,
// so the value is never cached. An empty lookup result contributes nothing.
func Session(lookup func() string) goTelemetry.AttributeEnricher {
	return goTelemetry.EnricherFunc(func(context.Context) goTelemetry.Attributes {
		if lookup == nil {
			return nil
		}
		id := lookup()
		if id == "" {
			return nil
		}
		return goTelemetry.Attributes{"session": id}
	})
}

// Clock contributes the dispatch timestamp in RFC 3339 form with nanosecond
// precision, taken when the fan-out computes the enriched event.
func Clock() goTelemetry.AttributeEnricher {
	return goTelemetry.EnricherFunc(func(context.Context) goTelemetry.Attributes {
		return goTelemetry.Attributes{
			"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		}
	})
}
