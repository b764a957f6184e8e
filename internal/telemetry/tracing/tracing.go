package tracing

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/honeycombio/honeycomb-opentelemetry-go"
	"github.com/honeycombio/otel-config-go/otelconfig"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var GlobalTracer = otel.Tracer("fittrack-backend")

// HoneycombSetup configures the OpenTelemetry SDK through the honeycomb distro.
// When disabled, the returned shutdown func is a no-op and the global tracer stays a no-op.
// A non-nil redis client gets its commands traced.
func HoneycombSetup(enabled bool, serviceName string, rdb *redis.Client) (func(), error) {
	if rdb != nil {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	if !enabled {
		return func() {}, nil
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	// api key and endpoint are read from HONEYCOMB_API_KEY / OTEL_* env vars
	otelShutdown, err := otelconfig.ConfigureOpenTelemetry(
		otelconfig.WithSpanProcessor(honeycomb.NewBaggageSpanProcessor()),
		otelconfig.WithServiceName(serviceName),
	)
	if err != nil {
		return nil, fmt.Errorf("configure opentelemetry: %w", err)
	}
	log.Debugf("honeycomb tracing set up for [%s]", serviceName)

	return otelShutdown, nil
}

// EndSpanWithErrCheck marks the span as failed when err is set, then ends it.
func EndSpanWithErrCheck(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	}
	span.End()
}

// StartSpan is a shorthand for GlobalTracer.Start.
func StartSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return GlobalTracer.Start(ctx, name)
}
