// Package helper provides testing utilities for the inventory observability instrumentation.
//
// It contains a slog.Handler that captures log records, so tests can hand a real *slog.Logger
// to the Manager and inspect what was logged, and a spy for the MetricsCollector interface.
package helper
