package redisstream

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	goTelemetry "github.com/MrEthical07/goTelemetry"
)

func newTestClient(t *testing.T) (redis.UniversalClient, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs: []string{mr.Addr()},
	})
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

func TestSendAppendsFlattenedEvent(t *testing.T) {
	client, _ := newTestClient(t)
	backend := NewBackend(client, Config{Stream: "telemetry:test"})

	err := backend.Send(context.Background(), goTelemetry.EnrichedEvent{
		Category: "player",
		Action:   "play",
		Attributes: goTelemetry.Attributes{
			"assetId": "42",
		},
	})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	entries, err := client.XRange(context.Background(), "telemetry:test", "-", "+").Result()
	if err != nil {
		t.Fatalf("XRange failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one stream entry, got %d", len(entries))
	}

	values := entries[0].Values
	if values["event_action"] != "play" {
		t.Fatalf("expected event_action=play, got %v", values["event_action"])
	}
	if values["category"] != "player" {
		t.Fatalf("expected category=player, got %v", values["category"])
	}
	if values["assetId"] != "42" {
		t.Fatalf("expected assetId=42, got %v", values["assetId"])
	}
}

func TestSendUsesDefaultStream(t *testing.T) {
	client, _ := newTestClient(t)
	backend := NewBackend(client, Config{})

	if err := backend.Send(context.Background(), goTelemetry.EnrichedEvent{Action: "e"}); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	n, err := client.XLen(context.Background(), DefaultStream).Result()
	if err != nil {
		t.Fatalf("XLen failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected one entry on the default stream, got %d", n)
	}
}

func TestSendNilClientIsNoOp(t *testing.T) {
	backend := NewBackend(nil, Config{Stream: "s"})

	if err := backend.Send(context.Background(), goTelemetry.EnrichedEvent{Action: "e"}); err != nil {
		t.Fatalf("expected unconfigured backend to be a silent no-op, got %v", err)
	}
}

func TestSendReportsTransportFailure(t *testing.T) {
	client, mr := newTestClient(t)
	backend := NewBackend(client, Config{Stream: "telemetry:test"})

	mr.Close()

	err := backend.Send(context.Background(), goTelemetry.EnrichedEvent{Action: "e"})
	if !errors.Is(err, ErrRedisUnavailable) {
		t.Fatalf("expected ErrRedisUnavailable, got %v", err)
	}
}

func TestNewBackendFromConfigAppendsToConfiguredStream(t *testing.T) {
	client, _ := newTestClient(t)
	backend := NewBackendFromConfig(client, goTelemetry.RedisConfig{
		Enabled: true,
		Stream:  "telemetry:config",
		MaxLen:  100,
	})

	if err := backend.Send(context.Background(), goTelemetry.EnrichedEvent{Action: "e"}); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	n, err := client.XLen(context.Background(), "telemetry:config").Result()
	if err != nil {
		t.Fatalf("XLen failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected one entry on the configured stream, got %d", n)
	}
}

func TestNewBackendFromConfigDisabledIsNoOp(t *testing.T) {
	client, _ := newTestClient(t)
	backend := NewBackendFromConfig(client, goTelemetry.RedisConfig{
		Enabled: false,
		Stream:  "telemetry:config",
	})

	if err := backend.Send(context.Background(), goTelemetry.EnrichedEvent{Action: "e"}); err != nil {
		t.Fatalf("expected disabled config to be a silent no-op, got %v", err)
	}

	n, err := client.XLen(context.Background(), "telemetry:config").Result()
	if err != nil {
		t.Fatalf("XLen failed: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected no entries from a disabled config, got %d", n)
	}
}

func TestSendWithMaxLen(t *testing.T) {
	client, _ := newTestClient(t)
	backend := NewBackend(client, Config{Stream: "telemetry:capped", MaxLen: 100})

	for i := 0; i < 5; i++ {
		if err := backend.Send(context.Background(), goTelemetry.EnrichedEvent{Action: "e"}); err != nil {
			t.Fatalf("Send failed: %v", err)
		}
	}

	n, err := client.XLen(context.Background(), "telemetry:capped").Result()
	if err != nil {
		t.Fatalf("XLen failed: %v", err)
	}
	if n != 5 {
		t.Fatalf("expected 5 entries, got %d", n)
	}
}
