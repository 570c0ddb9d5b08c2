package goTelemetry

import (
	"errors"
	"time"
)

// Config defines the static configuration of the telemetry pipeline. It is
// supplied once at construction through [Builder.WithConfig] and treated as
// immutable for the process lifetime; there is no dynamic reconfiguration.
type Config struct {
	Dispatch DispatchConfig
	MQTT     MQTTConfig
	Redis    RedisConfig
	Metrics  MetricsConfig
}

/*
====================================
DISPATCH CONFIG
====================================
*/

// DispatchConfig controls the dispatcher's enablement and queue behavior.
//
// Enabled false makes every Log call a complete no-op. BufferSize bounds the
// number of events waiting for fan-out. BlockIfFull trades the fire-and-forget
// drop policy for caller backpressure: when true, Log blocks until queue space
// frees up, which violates the never-block guarantee and should only be used
// by callers that prefer latency over loss.
type DispatchConfig struct {
	Enabled     bool
	BufferSize  int
	BlockIfFull bool
}

/*
====================================
TRANSPORT CONFIG
====================================
*/

// MQTTConfig carries the default transport settings consumed by the mqtt
// backend. Topic and QoS may be overridden per send through a settings
// provider; PublishTimeout bounds every broker round-trip so a slow broker
// cannot stall the fan-out worker indefinitely.
type MQTTConfig struct {
	Enabled        bool
	Topic          string
	QoS            byte
	PublishTimeout time.Duration
}

// RedisConfig carries the settings consumed by the redisstream backend.
// MaxLen caps the stream length (approximate trimming); zero disables
// trimming.
type RedisConfig struct {
	Enabled bool
	Stream  string
	MaxLen  int64
}

// MetricsConfig controls the pipeline's internal counters and the fan-out
// latency histogram.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

/*
====================================
DEFAULT CONFIG
====================================
*/

func defaultConfig() Config {
	return Config{
		Dispatch: DispatchConfig{
			Enabled:     true,
			BufferSize:  1024,
			BlockIfFull: false,
		},
		MQTT: MQTTConfig{
			Enabled:        false,
			Topic:          "telemetry/events",
			QoS:            1,
			PublishTimeout: 2 * time.Second,
		},
		Redis: RedisConfig{
			Enabled: false,
			Stream:  "telemetry:events",
			MaxLen:  10000,
		},
		Metrics: MetricsConfig{
			Enabled:                 false,
			EnableLatencyHistograms: false,
		},
	}
}

func cloneConfig(cfg Config) Config {
	// All sections are value types; a shallow copy is a deep copy.
	return cfg
}

/*
====================================
VALIDATION
====================================
*/

// Validate checks the configuration for internally inconsistent values.
func (c *Config) Validate() error {
	if c.Dispatch.Enabled {
		if c.Dispatch.BufferSize <= 0 {
			return errors.New("Dispatch BufferSize must be > 0 when dispatch is enabled")
		}
	}

	if c.MQTT.Enabled {
		if c.MQTT.QoS > 2 {
			return errors.New("MQTT QoS must be 0, 1, or 2")
		}
		if c.MQTT.PublishTimeout <= 0 {
			return errors.New("MQTT PublishTimeout must be > 0")
		}
	}

	if c.Redis.Enabled {
		if c.Redis.Stream == "" {
			return errors.New("Redis Stream is required when the redis backend is enabled")
		}
		if c.Redis.MaxLen < 0 {
			return errors.New("Redis MaxLen must be >= 0")
		}
	}

	if c.Metrics.EnableLatencyHistograms && !c.Metrics.Enabled {
		return errors.New("Metrics EnableLatencyHistograms requires Metrics Enabled")
	}

	return nil
}
