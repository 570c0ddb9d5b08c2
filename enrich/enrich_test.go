package enrich

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	goTelemetry "github.com/MrEthical07/goTelemetry"
)

func TestStaticCopiesPerCall(t *testing.T) {
	enricher := Static(goTelemetry.Attributes{"app": "tv"})

	first := enricher.Attributes(context.Background())
	first["app"] = "mutated"

	second := enricher.Attributes(context.Background())
	if second["app"] != "tv" {
		t.Fatalf("expected mutation isolation, got %q", second["app"])
	}
}

func TestStaticDetachesFromCallerMap(t *testing.T) {
	source := goTelemetry.Attributes{"app": "tv"}
	enricher := Static(source)

	source["app"] = "mutated"

	if got := enricher.Attributes(context.Background())["app"]; got != "tv" {
		t.Fatalf("expected the enricher to snapshot the input, got %q", got)
	}
}

func TestChainLaterWins(t *testing.T) {
	enricher := Chain(
		Static(goTelemetry.Attributes{"a": "1", "b": "1"}),
		nil,
		Static(goTelemetry.Attributes{"b": "2", "c": "2"}),
	)

	attrs := enricher.Attributes(context.Background())
	if attrs["a"] != "1" || attrs["b"] != "2" || attrs["c"] != "2" {
		t.Fatalf("unexpected merge result: %v", attrs)
	}
}

func TestDeviceContributesRuntimeKeys(t *testing.T) {
	attrs := Device().Attributes(context.Background())

	for _, key := range []string{"device_host", "device_os", "device_arch", "device_cpus"} {
		if _, ok := attrs[key]; !ok {
			t.Fatalf("expected key %q in device attributes: %v", key, attrs)
		}
	}
	if attrs["device_os"] == "" {
		t.Fatal("expected a non-empty device_os")
	}
}

func TestInstanceIsStableAndValid(t *testing.T) {
	enricher := Instance()

	first := enricher.Attributes(context.Background())["instance_id"]
	second := enricher.Attributes(context.Background())["instance_id"]

	if first != second {
		t.Fatalf("expected a stable instance id, got %q and %q", first, second)
	}
	if _, err := uuid.Parse(first); err != nil {
		t.Fatalf("expected a valid uuid, got %q: %v", first, err)
	}
}

func TestSessionLooksUpFreshValue(t *testing.T) {
	current := "s1"
	enricher := Session(func() string { return current })

	if got := enricher.Attributes(context.Background())["session"]; got != "s1" {
		t.Fatalf("expected session s1, got %q", got)
	}

	current = "s2"
	if got := enricher.Attributes(context.Background())["session"]; got != "s2" {
		t.Fatalf("expected the session to be re-read per dispatch, got %q", got)
	}
}

func TestSessionEmptyContributesNothing(t *testing.T) {
	if attrs := Session(func() string { return "" }).Attributes(context.Background()); len(attrs) != 0 {
		t.Fatalf("expected no attributes for an empty session, got %v", attrs)
	}
	if attrs := Session(nil).Attributes(context.Background()); len(attrs) != 0 {
		t.Fatalf("expected no attributes for a nil lookup, got %v", attrs)
	}
}

func TestClockEmitsParsableTimestamp(t *testing.T) {
	attrs := Clock().Attributes(context.Background())

	ts, ok := attrs["timestamp"]
	if !ok {
		t.Fatal("expected a timestamp attribute")
	}
	parsed, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		t.Fatalf("expected an RFC3339Nano timestamp, got %q: %v", ts, err)
	}
	if since := time.Since(parsed); since < 0 || since > time.Minute {
		t.Fatalf("timestamp implausible: %v", parsed)
	}
}
