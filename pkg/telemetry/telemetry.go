// Package telemetry installs the OpenTelemetry trace pipeline.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.uber.org/zap"
)

type Config struct {
	ServiceName string
	Environment string
	// Endpoint is the OTLP/gRPC collector address. Empty disables tracing.
	Endpoint string
}

// Init returns a shutdown func that flushes pending spans. When no endpoint
// is configured both are no-ops.
func Init(ctx context.Context, cfg Config, log *zap.Logger) (func(context.Context), error) {
	if cfg.Endpoint == "" {
		log.Info("OpenTelemetry endpoint not set, tracing disabled")
		return func(context.Context) {}, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.DeploymentEnvironment(cfg.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create otel resource: %w", err)
	}

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(cfg.Endpoint),
	)
	if err != nil {
		return nil, fmt.Errorf("create otel trace exporter: %w", err)
	}

	provider := trace.NewTracerProvider(
		trace.WithResource(res),
		trace.WithBatcher(exporter),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	log.Info("OpenTelemetry tracing enabled", zap.String("endpoint", cfg.Endpoint))

	return func(ctx context.Context) {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		if err := provider.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}, nil
}
