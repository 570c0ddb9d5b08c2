package redisstream

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	goTelemetry "github.com/MrEthical07/goTelemetry"
	"github.com/MrEthical07/goTelemetry/internal/payload"
)

// DefaultStream is the fallback stream key when the config omits one.
const DefaultStream = "telemetry:events"

// ErrRedisUnavailable wraps transport-level failures from the Redis client.
var ErrRedisUnavailable = errors.New("redis unavailable")

// Config controls the stream destination. MaxLen caps the stream with
// approximate trimming; zero keeps the stream unbounded.
type Config struct {
	Stream string
	MaxLen int64
}

// Backend appends enriched telemetry events to a Redis Stream, one XADD per
// event with the flattened payload as field/value pairs.
type Backend struct {
	client redis.UniversalClient
	stream string
	maxLen int64
}

// NewBackend creates a Redis Stream backend.
func NewBackend(client redis.UniversalClient, cfg Config) *Backend {
	stream := cfg.Stream
	if stream == "" {
		stream = DefaultStream
	}
	return &Backend{
		client: client,
		stream: stream,
		maxLen: cfg.MaxLen,
	}
}

// NewBackendFromConfig creates a backend from the root configuration section.
// A disabled section yields an unconfigured backend whose sends are silent
// no-ops, so the registry shape can stay fixed while Redis delivery is off.
func NewBackendFromConfig(client redis.UniversalClient, cfg goTelemetry.RedisConfig) *Backend {
	if !cfg.Enabled {
		client = nil
	}
	return NewBackend(client, Config{
		Stream: cfg.Stream,
		MaxLen: cfg.MaxLen,
	})
}

// Name implements goTelemetry.Backend.
func (b *Backend) Name() string { return "redis-stream" }

// Send implements goTelemetry.Backend. A nil client means the backend is not
// configured and the send is a silent no-op.
func (b *Backend) Send(ctx context.Context, event goTelemetry.EnrichedEvent) error {
	if b == nil || b.client == nil {
		return nil
	}

	flat := payload.Flatten(event.Category, event.Action, event.Attributes)
	values := make(map[string]interface{}, len(flat))
	for k, v := range flat {
		values[k] = v
	}

	args := &redis.XAddArgs{
		Stream: b.stream,
		Values: values,
	}
	if b.maxLen > 0 {
		args.MaxLen = b.maxLen
		args.Approx = true
	}

	if err := b.client.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("%w: xadd %s: %w", ErrRedisUnavailable, b.stream, err)
	}
	return nil
}
