package goTelemetry

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Dispatcher is the single choke point for all telemetry. Call sites hand it
// events through Log; a dedicated worker goroutine enriches each event once
// and fans it out to every registered backend in registration order. The
// worker is the only goroutine that touches backends, so fan-outs of distinct
// events can never interleave.
type Dispatcher struct {
	cfg      DispatchConfig
	backends []Backend
	enricher AttributeEnricher
	logger   *slog.Logger
	metrics  *Metrics

	ch        chan Event
	done      chan struct{}
	wg        sync.WaitGroup
	dropped   atomic.Uint64
	closed    atomic.Bool
	closeOnce sync.Once
}

func newDispatcher(cfg DispatchConfig, backends []Backend, enricher AttributeEnricher, logger *slog.Logger, metrics *Metrics) *Dispatcher {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	d := &Dispatcher{
		cfg:      cfg,
		backends: backends,
		enricher: enricher,
		logger:   logger,
		metrics:  metrics,
		ch:       make(chan Event, cfg.BufferSize),
		done:     make(chan struct{}),
	}

	if cfg.Enabled {
		d.wg.Add(1)
		go d.run()
	}

	return d
}

func (d *Dispatcher) run() {
	defer d.wg.Done()

	for {
		select {
		case event := <-d.ch:
			d.dispatch(event)
		case <-d.done:
			for {
				select {
				case event := <-d.ch:
					d.dispatch(event)
				default:
					return
				}
			}
		}
	}
}

// Log schedules one asynchronous dispatch of the given event and returns
// immediately, without performing backend I/O on the calling goroutine.
// Delivery outcomes are not reported back; telemetry is best-effort. The
// caller only blocks if BlockIfFull was opted into and the queue is full.
//
// When dispatch is disabled, Log is a complete no-op. When the queue is full
// under the default drop policy, the event is discarded and counted in
// Dropped. Two Log calls racing from different goroutines enter the queue in
// unspecified relative order; once queued, fan-outs run strictly one at a
// time.
func (d *Dispatcher) Log(ctx context.Context, category, action string, params Attributes) {
	if d == nil || !d.cfg.Enabled || d.closed.Load() {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// Params are copied so a caller reusing its map cannot race the worker.
	event := Event{
		Category: category,
		Action:   action,
		Params:   cloneAttributes(params),
	}
	d.metrics.Inc(MetricEventsLogged)

	if d.cfg.BlockIfFull {
		select {
		case d.ch <- event:
		case <-ctx.Done():
		case <-d.done:
		}
		return
	}

	select {
	case d.ch <- event:
	case <-d.done:
	default:
		d.dropped.Add(1)
		d.metrics.Inc(MetricEventsDropped)
	}
}

// dispatch runs one full fan-out on the worker goroutine.
func (d *Dispatcher) dispatch(event Event) {
	start := time.Now()
	enriched := d.enrich(event)

	for _, backend := range d.backends {
		d.send(backend, enriched)
	}

	d.metrics.Inc(MetricFanoutCompleted)
	d.metrics.Observe(MetricFanoutLatency, time.Since(start))
}

// enrich computes the EnrichedEvent exactly once per dispatch. Event params
// overlay enricher attributes on key collision.
func (d *Dispatcher) enrich(event Event) EnrichedEvent {
	attrs := make(Attributes, len(event.Params)+8)
	if d.enricher != nil {
		for k, v := range d.enricher.Attributes(context.Background()) {
			attrs[k] = v
		}
	}
	for k, v := range event.Params {
		attrs[k] = v
	}

	return EnrichedEvent{
		Category:   event.Category,
		Action:     event.Action,
		Attributes: attrs,
	}
}

// send wraps one backend invocation. An error or panic is contained here so
// the fan-out continues with the next backend and the process never crashes
// on a misbehaving transport.
func (d *Dispatcher) send(backend Backend, event EnrichedEvent) {
	defer func() {
		if r := recover(); r != nil {
			d.metrics.Inc(MetricBackendPanics)
			d.logger.Error("telemetry backend panicked",
				"backend", backend.Name(),
				"action", event.Action,
				"panic", r)
		}
	}()

	if err := backend.Send(context.Background(), event); err != nil {
		d.metrics.Inc(MetricBackendFailures)
		d.logger.Warn("telemetry backend send failed",
			"backend", backend.Name(),
			"action", event.Action,
			"error", err)
		return
	}
	d.metrics.Inc(MetricBackendSuccesses)
}

// Close drains queued events through a final fan-out pass and stops the
// worker. It is idempotent; Log after Close is a safe no-op.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	d.closeOnce.Do(func() {
		d.closed.Store(true)
		close(d.done)
		d.wg.Wait()
	})
}

// Dropped reports how many events were discarded because the queue was full.
func (d *Dispatcher) Dropped() uint64 {
	if d == nil {
		return 0
	}
	return d.dropped.Load()
}

// MetricsSnapshot returns a point-in-time copy of the pipeline counters and
// histograms for exporters.
func (d *Dispatcher) MetricsSnapshot() MetricsSnapshot {
	if d == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return d.metrics.Snapshot()
}
