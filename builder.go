package goTelemetry

import (
	"log/slog"
)

// Builder assembles a [Dispatcher]. The backend registry is fixed at Build
// time: there is no runtime registration or discovery, and the dispatcher
// never exposes the registry afterwards.
type Builder struct {
	config   Config
	backends []Backend
	enricher AttributeEnricher
	logger   *slog.Logger

	built bool
}

// New returns a Builder seeded with the default configuration.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the builder's configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithBackends sets the ordered backend registry. Registration order is
// fan-out iteration order. An empty registry is legal and yields a no-op
// fan-out.
func (b *Builder) WithBackends(backends ...Backend) *Builder {
	b.backends = backends
	return b
}

// WithEnricher sets the attribute enricher consulted once per dispatch.
func (b *Builder) WithEnricher(enricher AttributeEnricher) *Builder {
	b.enricher = enricher
	return b
}

// WithLogger sets the logger used to report backend failures. When unset,
// failures are counted but not logged.
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	b.logger = logger
	return b
}

// WithMetricsEnabled toggles the pipeline counters.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLatencyHistograms toggles the fan-out latency histogram. Histograms
// require metrics to be enabled; Build rejects the combination otherwise, the
// same way Validate does for a configuration supplied via WithConfig.
func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// Build validates the configuration and returns the dispatcher. The builder
// is single-use.
func (b *Builder) Build() (*Dispatcher, error) {
	if b.built {
		return nil, ErrBuilderReused
	}

	cfg := cloneConfig(b.config)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	backends := make([]Backend, len(b.backends))
	for i, backend := range b.backends {
		if backend == nil {
			return nil, ErrNilBackend
		}
		backends[i] = backend
	}

	metrics := NewMetrics(cfg.Metrics)
	dispatcher := newDispatcher(cfg.Dispatch, backends, b.enricher, b.logger, metrics)

	b.built = true

	return dispatcher, nil
}
