// Copyright (c) 2026 Syloma. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package tracing installs the OpenTelemetry tracer provider.
package tracing

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// ShutdownFunc flushes and stops the provider.
type ShutdownFunc func(context.Context) error

func noop(context.Context) error { return nil }

/*
Setup configures the global tracer provider.

With an empty endpoint the global no-op provider is left in place and the
returned shutdown is a no-op.

Parameters:
  - context: Used to build the exporter
  - endpoint: OTLP/HTTP collector URL (e.g. http://otel-collector:4318)
  - service: service.name resource attribute
  - version: service.version resource attribute
*/
func Setup(context context.Context, endpoint, service, version string, logger *slog.Logger) (ShutdownFunc, error) {
	if endpoint == "" {
		logger.Debug("tracing_disabled")
		return noop, nil
	}

	exporter, err := otlptracehttp.New(context, otlptracehttp.WithEndpointURL(endpoint))
	if err != nil {
		return nil, fmt.Errorf("tracing: create exporter: %w", err)
	}

	res, err := resource.Merge(resource.Default(), resource.NewSchemaless(
		attribute.String("service.name", service),
		attribute.String("service.version", version),
	))
	if err != nil {
		return nil, fmt.Errorf("tracing: build resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.Info("tracing_enabled", slog.String("endpoint", endpoint))
	return provider.Shutdown, nil
}
