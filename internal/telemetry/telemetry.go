// Package telemetry configures the process-wide trace provider. Spans are
// emitted by the media enumerator and the scanner; with no exporter
// configured they cost nothing.
package telemetry

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"

	"github.com/sashworth/tonepick/internal/log"
)

// Exporter selection values for Config.Exporter.
const (
	ExporterNone   = "none"
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// Config selects the span exporter.
type Config struct {
	// Exporter is one of none, stdout, or otlp.
	Exporter string `mapstructure:"exporter"`

	// Endpoint is the OTLP gRPC collector address, host:port.
	Endpoint string `mapstructure:"endpoint"`

	// StdoutPath receives stdout-exporter spans. Empty writes to stderr,
	// which would corrupt the terminal UI, so set it when previewing spans
	// alongside the picker.
	StdoutPath string `mapstructure:"stdout_path"`
}

// Setup installs the global tracer provider and returns its shutdown
// function. With Exporter == none the default no-op provider stays in
// place and shutdown does nothing.
func Setup(ctx context.Context, cfg Config) (func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	exporter, closer, err := newExporter(ctx, cfg)
	if err != nil {
		return noop, err
	}
	if exporter == nil {
		return noop, nil
	}

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName("tonepick"),
	))
	if err != nil {
		return noop, fmt.Errorf("failed to build resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)
	log.Info(log.CatConfig, "Tracing enabled", "exporter", cfg.Exporter)

	return func(ctx context.Context) error {
		err := provider.Shutdown(ctx)
		if closer != nil {
			_ = closer.Close()
		}
		return err
	}, nil
}

func newExporter(ctx context.Context, cfg Config) (sdktrace.SpanExporter, io.Closer, error) {
	switch cfg.Exporter {
	case "", ExporterNone:
		return nil, nil, nil

	case ExporterStdout:
		var opts []stdouttrace.Option
		var closer io.Closer
		if cfg.StdoutPath != "" {
			f, err := os.OpenFile(cfg.StdoutPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to open span file: %w", err)
			}
			opts = append(opts, stdouttrace.WithWriter(f))
			closer = f
		}
		exporter, err := stdouttrace.New(opts...)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create stdout exporter: %w", err)
		}
		return exporter, closer, nil

	case ExporterOTLP:
		if cfg.Endpoint == "" {
			return nil, nil, fmt.Errorf("otlp exporter requires an endpoint")
		}
		exporter, err := otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(cfg.Endpoint),
			otlptracegrpc.WithInsecure(),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create otlp exporter: %w", err)
		}
		return exporter, nil, nil

	default:
		return nil, nil, fmt.Errorf("unknown exporter %q", cfg.Exporter)
	}
}
