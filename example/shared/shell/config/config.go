package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
)

const (
	// LogFormatText selects slog's text handler.
	LogFormatText = "text"

	// LogFormatJSON selects slog's JSON handler.
	LogFormatJSON = "json"

	// NotificationOutputStdout writes notifications to standard output.
	NotificationOutputStdout = "stdout"

	// NotificationOutputStderr writes notifications to standard error.
	NotificationOutputStderr = "stderr"
)

var (
	// ErrInvalidLogFormat is returned when LOG_FORMAT is neither text nor json.
	ErrInvalidLogFormat = errors.New("invalid log format")

	// ErrInvalidNotificationOutput is returned when NOTIFICATION_OUTPUT is neither stdout nor stderr.
	ErrInvalidNotificationOutput = errors.New("invalid notification output")
)

// Config holds the demo's environment configuration.
type Config struct {
	LogLevel              slog.Level `env:"LOG_LEVEL"               envDefault:"info"`
	LogFormat             string     `env:"LOG_FORMAT"              envDefault:"text"`
	OTELMetricsEnabled    bool       `env:"OTEL_METRICS_ENABLED"    envDefault:"false"`
	OTELCollectorEndpoint string     `env:"OTEL_COLLECTOR_ENDPOINT" envDefault:"localhost:4317"`
	OTELServiceName       string     `env:"OTEL_SERVICE_NAME"       envDefault:"library-inventory-demo"`
	NotificationOutput    string     `env:"NOTIFICATION_OUTPUT"     envDefault:"stdout"`
}

// Load parses the process environment into a Config and validates it.
func Load() (Config, error) {
	return LoadFrom(nil)
}

// LoadFrom parses the given environment instead of the process environment.
// A nil map falls back to the process environment.
func LoadFrom(environment map[string]string) (Config, error) {
	var cfg Config

	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environment}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}

	switch c.NotificationOutput {
	case NotificationOutputStdout, NotificationOutputStderr:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidNotificationOutput, c.NotificationOutput)
	}

	return nil
}

// NewLogger builds a slog logger writing to w with the configured level and format.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: c.LogLevel,
	}

	var handler slog.Handler
	if c.LogFormat == LogFormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// NotificationWriter returns the stream the notification sink writes to.
func (c Config) NotificationWriter() io.Writer {
	if c.NotificationOutput == NotificationOutputStderr {
		return os.Stderr
	}

	return os.Stdout
}
