package config_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-inventory-go/example/shared/shell/config"
)

func Test_LoadFrom_Defaults(t *testing.T) {
	// act
	cfg, err := config.LoadFrom(map[string]string{})

	// assert
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, config.LogFormatText, cfg.LogFormat)
	assert.False(t, cfg.OTELMetricsEnabled)
	assert.Equal(t, "localhost:4317", cfg.OTELCollectorEndpoint)
	assert.Equal(t, "library-inventory-demo", cfg.OTELServiceName)
	assert.Equal(t, config.NotificationOutputStdout, cfg.NotificationOutput)
}

func Test_Load_FromEnvironment(t *testing.T) {
	// arrange
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("OTEL_METRICS_ENABLED", "true")
	t.Setenv("OTEL_COLLECTOR_ENDPOINT", "collector:4317")
	t.Setenv("OTEL_SERVICE_NAME", "branch-north")
	t.Setenv("NOTIFICATION_OUTPUT", "stderr")

	// act
	cfg, err := config.Load()

	// assert
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, config.LogFormatJSON, cfg.LogFormat)
	assert.True(t, cfg.OTELMetricsEnabled)
	assert.Equal(t, "collector:4317", cfg.OTELCollectorEndpoint)
	assert.Equal(t, "branch-north", cfg.OTELServiceName)
	assert.Equal(t, config.NotificationOutputStderr, cfg.NotificationOutput)
}

func Test_LoadFrom_Defaults_IgnoreProcessEnvironment(t *testing.T) {
	// arrange
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("OTEL_SERVICE_NAME", "ambient")

	// act
	cfg, err := config.LoadFrom(map[string]string{})

	// assert
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, config.LogFormatText, cfg.LogFormat)
	assert.Equal(t, "library-inventory-demo", cfg.OTELServiceName)
}

func Test_LoadFrom_Invalid(t *testing.T) {
	testCases := []struct {
		description string
		key         string
		value       string
		wantErr     error
	}{
		{description: "log format", key: "LOG_FORMAT", value: "xml", wantErr: config.ErrInvalidLogFormat},
		{description: "notification output", key: "NOTIFICATION_OUTPUT", value: "printer", wantErr: config.ErrInvalidNotificationOutput},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// act
			_, err := config.LoadFrom(map[string]string{tc.key: tc.value})

			// assert
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func Test_LoadFrom_UnparsableValue(t *testing.T) {
	// act
	_, err := config.LoadFrom(map[string]string{"OTEL_METRICS_ENABLED": "maybe"})

	// assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func Test_Config_NewLogger(t *testing.T) {
	testCases := []struct {
		description string
		format      string
		wantPrefix  string
	}{
		{description: "json", format: config.LogFormatJSON, wantPrefix: "{"},
		{description: "text", format: config.LogFormatText, wantPrefix: "time="},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// arrange
			buf := new(bytes.Buffer)
			cfg := config.Config{LogLevel: slog.LevelWarn, LogFormat: tc.format}
			logger := cfg.NewLogger(buf)

			// act
			logger.Info("filtered out")
			logger.Warn("kept")

			// assert
			assert.NotContains(t, buf.String(), "filtered out")
			assert.Contains(t, buf.String(), "kept")
			assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte(tc.wantPrefix)))
		})
	}
}
