// Package otel bridges goTelemetry pipeline metrics to OpenTelemetry
// observable instruments. Collection is pull-based through a registered
// callback that snapshots the dispatcher; the exporter holds no state.
package otel
