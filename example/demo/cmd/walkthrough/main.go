package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"go.opentelemetry.io/otel"

	"github.com/AntonStoeckl/library-inventory-go/example/shared/shell"
	"github.com/AntonStoeckl/library-inventory-go/example/shared/shell/config"
	"github.com/AntonStoeckl/library-inventory-go/inventory"
	"github.com/AntonStoeckl/library-inventory-go/inventory/oteladapters"
)

const instrumentationName = "library-inventory-demo"

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("Walkthrough failed: %v", err)
	}
}

// run never exits the process, so deferred provider shutdowns always run.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logger := cfg.NewLogger(os.Stderr)
	var managerLogger inventory.Logger = logger
	var managerOptions []inventory.Option

	if cfg.OTELMetricsEnabled {
		providers, err := config.NewObservabilityProviders(ctx, cfg)
		if err != nil {
			return fmt.Errorf("create observability providers: %w", err)
		}
		defer func() {
			if err := providers.Shutdown(ctx); err != nil {
				log.Printf("Error during observability shutdown: %v", err)
			}
		}()

		metricsCollector := oteladapters.NewMetricsCollector(providers.MeterProvider.Meter(instrumentationName))
		managerOptions = append(managerOptions, inventory.WithMetrics(metricsCollector))
		managerLogger = oteladapters.NewSlogBridgeLogger(instrumentationName, providers.LoggerProvider)
		logger.Info("observability enabled", "collector_endpoint", cfg.OTELCollectorEndpoint)
	}

	managerOptions = append(managerOptions, inventory.WithLogger(managerLogger))

	notifications, err := shell.NewJSONLinesNotificationSink(
		cfg.NotificationWriter(),
		shell.WithSinkLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("create notification sink: %w", err)
	}

	users := shell.NewUserDirectory()

	manager, err := inventory.NewManager(users, notifications, managerOptions...)
	if err != nil {
		return fmt.Errorf("create inventory manager: %w", err)
	}

	return newWalkthrough(manager, users, logger, otel.Tracer(instrumentationName)).run(ctx)
}
