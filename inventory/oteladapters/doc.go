// Package oteladapters provides OpenTelemetry adapters for the inventory observability interfaces.
//
//   - MetricsCollector maps inventory.MetricsCollector onto otel instruments
//   - NewSlogBridgeLogger returns a *slog.Logger (an inventory.Logger) which emits otel log records
package oteladapters
