package goTelemetry

import (
	"context"
	"encoding/json"
	"io"
	"sync"
)

// Backend is a delivery target for enriched telemetry events.
//
// Send must be synchronous from the dispatcher's point of view: a backend
// needing internal asynchrony must await it before returning, or the
// dispatcher's no-interleaving guarantee is void. Send must not retain the
// event beyond the call. "Not configured" and "tracking disabled" are silent
// successful no-ops (return nil), distinguished from genuine transport
// failure, which is returned and reported with the backend's Name.
type Backend interface {
	Name() string
	Send(ctx context.Context, event EnrichedEvent) error
}

// NoOpBackend discards events.
type NoOpBackend struct{}

// Name implements [Backend].
func (NoOpBackend) Name() string { return "noop" }

// Send implements [Backend].
func (NoOpBackend) Send(context.Context, EnrichedEvent) error { return nil }

// ChannelBackend writes enriched events into a buffered channel. It is
// primarily useful for tests and for consumers that bridge events into their
// own processing loops.
type ChannelBackend struct {
	events chan EnrichedEvent
}

// NewChannelBackend creates a ChannelBackend with the given buffer.
func NewChannelBackend(buffer int) *ChannelBackend {
	if buffer <= 0 {
		buffer = 1
	}
	return &ChannelBackend{
		events: make(chan EnrichedEvent, buffer),
	}
}

// Name implements [Backend].
func (s *ChannelBackend) Name() string { return "channel" }

// Send implements [Backend].
func (s *ChannelBackend) Send(ctx context.Context, event EnrichedEvent) error {
	select {
	case s.events <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Events returns the receive side of the backend's channel.
func (s *ChannelBackend) Events() <-chan EnrichedEvent {
	return s.events
}

// JSONWriterBackend writes one JSON object per line to an io.Writer.
type JSONWriterBackend struct {
	writer io.Writer
	mu     sync.Mutex
}

// NewJSONWriterBackend creates a backend that serializes events as JSON lines.
func NewJSONWriterBackend(w io.Writer) *JSONWriterBackend {
	return &JSONWriterBackend{
		writer: w,
	}
}

// Name implements [Backend].
func (s *JSONWriterBackend) Name() string { return "json-writer" }

// Send implements [Backend]. A nil writer is a silent no-op.
func (s *JSONWriterBackend) Send(_ context.Context, event EnrichedEvent) error {
	if s == nil || s.writer == nil {
		return nil
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.writer.Write(data); err != nil {
		return err
	}
	_, err = s.writer.Write([]byte("\n"))
	return err
}
