package internal

import (
	"context"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const otlpEndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"

// SetupTracing installs a global OTLP/HTTP tracer provider when OTEL_EXPORTER_OTLP_ENDPOINT
// is set. Otherwise the otel no-op provider stays in place and the returned shutdown
// func does nothing.
func SetupTracing(ctx context.Context) (func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	if os.Getenv(otlpEndpointEnv) == "" {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	GetLogger().Infof("OTLP tracing enabled, exporting to %s", os.Getenv(otlpEndpointEnv))

	return tp.Shutdown, nil
}
