// Package telemetry wires OpenTelemetry tracing for stepsort binaries.
// Library packages only ever call otel.Tracer; this package decides where
// the spans go.
package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amp-labs/stepsort/envutil"
	"github.com/amp-labs/stepsort/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

const (
	defaultServiceVersion = "1.0.0"
	defaultTimeout        = 5 * time.Second
)

var tracerProvider *sdktrace.TracerProvider //nolint:gochecknoglobals

// Config holds the OpenTelemetry configuration.
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	Endpoint       string
	Enabled        bool
	Timeout        time.Duration
}

// LoadConfigFromEnv reads OTEL_ENABLED, OTEL_SERVICE_NAME,
// OTEL_SERVICE_VERSION, OTEL_EXPORTER_OTLP_TRACES_ENDPOINT and
// OTEL_EXPORTER_OTLP_TRACES_TIMEOUT. Tracing is off unless OTEL_ENABLED is set.
func LoadConfigFromEnv(ctx context.Context, runningEnv string) (*Config, error) {
	enabled := envutil.Bool(ctx, "OTEL_ENABLED", envutil.Default(false)).ValueOrElse(false)

	svcName, err := envutil.String(ctx, "OTEL_SERVICE_NAME",
		envutil.Default(logger.GetSubsystem(ctx))).Value()
	if err != nil {
		return nil, err
	}

	svcVersion, err := envutil.String(ctx, "OTEL_SERVICE_VERSION",
		envutil.Default(defaultServiceVersion)).Value()
	if err != nil {
		return nil, err
	}

	endpoint, err := envutil.String(ctx, "OTEL_EXPORTER_OTLP_TRACES_ENDPOINT",
		envutil.Default("")).Value()
	if err != nil {
		return nil, err
	}

	timeout, err := envutil.Duration(ctx, "OTEL_EXPORTER_OTLP_TRACES_TIMEOUT",
		envutil.Default(defaultTimeout)).Value()
	if err != nil {
		return nil, err
	}

	return &Config{
		ServiceName:    svcName,
		ServiceVersion: svcVersion,
		Environment:    runningEnv,
		Endpoint:       endpoint,
		Enabled:        enabled,
		Timeout:        timeout,
	}, nil
}

// Initialize installs a batching OTLP/HTTP tracer provider as the global
// one. It is a no-op when tracing is disabled or has no endpoint.
func Initialize(ctx context.Context, config *Config) error {
	if !config.Enabled {
		logger.Get(ctx).Debug("OpenTelemetry tracing is disabled")

		return nil
	}

	if config.Endpoint == "" {
		logger.Get(ctx).Warn("OpenTelemetry endpoint not configured, tracing will be disabled")

		return nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(config.ServiceName),
			semconv.ServiceVersionKey.String(config.ServiceVersion),
			semconv.DeploymentEnvironmentKey.String(config.Environment),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(config.Endpoint),
		otlptracehttp.WithTimeout(config.Timeout),
	)
	if err != nil {
		return fmt.Errorf("failed to create OTLP trace exporter: %w", err)
	}

	tracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.Get(ctx).Info("OpenTelemetry tracing initialized",
		"service", config.ServiceName,
		"version", config.ServiceVersion,
		"environment", config.Environment,
		"endpoint", config.Endpoint,
	)

	return nil
}

// Shutdown flushes and stops the tracer provider, if one was installed.
func Shutdown(ctx context.Context) error {
	if tracerProvider == nil {
		return nil
	}

	slog.Debug("Shutting down OpenTelemetry tracer provider")

	return tracerProvider.Shutdown(ctx)
}
