package oteladapters

import (
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/log"

	"github.com/AntonStoeckl/library-inventory-go/inventory"
)

// NewSlogBridgeLogger creates a logger using the OpenTelemetry slog bridge.
// If provider is nil, the global OpenTelemetry LoggerProvider is used.
func NewSlogBridgeLogger(name string, provider log.LoggerProvider) *slog.Logger {
	if provider == nil {
		return otelslog.NewLogger(name)
	}

	return otelslog.NewLogger(name, otelslog.WithLoggerProvider(provider))
}

// Ensure *slog.Logger implements inventory.Logger.
var _ inventory.Logger = (*slog.Logger)(nil)
