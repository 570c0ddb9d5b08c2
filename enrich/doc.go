// Package enrich provides ready-made AttributeEnricher implementations:
// static attribute sets, host/runtime device stats, process instance ids,
// live session lookup, and dispatch timestamps. Compose them with [Chain].
package enrich
