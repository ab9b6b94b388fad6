// Package config provides environment configuration and OpenTelemetry provider setup
// for the example: Book circulation in a public library
//
// The demo reads its settings from environment variables (see Config) and builds
// its slog logger, notification output, and optional OTLP metric and trace
// exporters from them.
//
// This package is part of the shell (infrastructure) layer.
package config
