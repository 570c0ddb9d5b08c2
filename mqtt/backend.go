package mqtt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	goTelemetry "github.com/MrEthical07/goTelemetry"
	"github.com/MrEthical07/goTelemetry/internal/payload"
)

// DefaultTopic is the fallback destination when settings omit a topic.
const DefaultTopic = "telemetry/events"

var (
	// ErrNotConnected is returned when the broker connection is down at send time.
	ErrNotConnected = errors.New("mqtt client not connected")
	// ErrPublishTimeout is returned when the broker does not acknowledge a
	// publish within the configured timeout.
	ErrPublishTimeout = errors.New("mqtt publish timeout")
)

// Settings are the transport parameters for one send. They are resolved per
// event through a [SettingsProvider], never cached at backend construction,
// because tracking consent and destination may change between events.
type Settings struct {
	Enabled bool
	Topic   string
	QoS     byte
}

// SettingsProvider supplies the current transport settings.
type SettingsProvider interface {
	Settings() Settings
}

// StaticSettings is a SettingsProvider that always returns the same value.
type StaticSettings Settings

// Settings implements [SettingsProvider].
func (s StaticSettings) Settings() Settings { return Settings(s) }

// Client is the subset of the paho client surface the backend needs. The
// concrete paho.Client satisfies it.
type Client interface {
	IsConnectionOpen() bool
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
}

// Backend publishes enriched telemetry events to an MQTT broker as flat JSON
// objects keyed by event_action, category, and the merged attributes.
type Backend struct {
	client   Client
	provider SettingsProvider
	timeout  time.Duration
}

// NewBackend creates an MQTT backend. publishTimeout bounds every broker
// round-trip; values <= 0 fall back to 2s so a dead broker can never stall
// the dispatch worker indefinitely.
func NewBackend(client Client, provider SettingsProvider, publishTimeout time.Duration) *Backend {
	if publishTimeout <= 0 {
		publishTimeout = 2 * time.Second
	}
	return &Backend{
		client:   client,
		provider: provider,
		timeout:  publishTimeout,
	}
}

// NewBackendFromConfig creates an MQTT backend from the root configuration
// section: Enabled, Topic, and QoS become static send settings and
// PublishTimeout bounds each publish. Callers that need send-time settings
// resolution use [NewBackend] with their own provider instead.
func NewBackendFromConfig(client Client, cfg goTelemetry.MQTTConfig) *Backend {
	return NewBackend(client, StaticSettings{
		Enabled: cfg.Enabled,
		Topic:   cfg.Topic,
		QoS:     cfg.QoS,
	}, cfg.PublishTimeout)
}

// Name implements goTelemetry.Backend.
func (b *Backend) Name() string { return "mqtt" }

// Send implements goTelemetry.Backend. Tracking disabled or absent settings
// is a silent successful no-op; the transport client is not touched.
func (b *Backend) Send(_ context.Context, event goTelemetry.EnrichedEvent) error {
	settings, ok := b.resolve()
	if !ok {
		return nil
	}
	if !b.client.IsConnectionOpen() {
		return ErrNotConnected
	}

	body, err := json.Marshal(payload.Flatten(event.Category, event.Action, event.Attributes))
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	token := b.client.Publish(settings.Topic, settings.QoS, false, body)
	if !token.WaitTimeout(b.timeout) {
		return ErrPublishTimeout
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish to %s: %w", settings.Topic, err)
	}

	return nil
}

func (b *Backend) resolve() (Settings, bool) {
	if b == nil || b.client == nil || b.provider == nil {
		return Settings{}, false
	}
	settings := b.provider.Settings()
	if !settings.Enabled {
		return Settings{}, false
	}
	if settings.Topic == "" {
		settings.Topic = DefaultTopic
	}
	return settings, true
}
