// Package prometheus renders goTelemetry pipeline metrics in Prometheus text
// exposition format. The exporter is pull-based: it snapshots the dispatcher
// on every scrape and holds no state of its own.
package prometheus
