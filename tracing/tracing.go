// Package tracing provides OpenTelemetry tracing for the MikroTik MCP server.
// It configures trace exporters and provides helpers for tool and device spans.
package tracing

import (
	"context"
	"io"
	"os"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	TracerName = "mikrotik-mcp-server"
)

// Config holds tracing configuration
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	Enabled        bool
	OTLPEndpoint   string // If set, uses OTLP exporter; otherwise Console
	SampleRate     float64

	// Console receives spans when no OTLP endpoint is set. It must not be
	// stdout, which carries the stdio transport.
	Console io.Writer
}

// DefaultConfig reads OTEL_ENABLED, OTEL_EXPORTER_OTLP_ENDPOINT,
// OTEL_ENVIRONMENT and OTEL_TRACES_SAMPLER_ARG.
func DefaultConfig() Config {
	return Config{
		ServiceName:    "mikrotik-mcp-server",
		ServiceVersion: "1.0.0",
		Environment:    getEnvOrDefault("OTEL_ENVIRONMENT", "development"),
		Enabled:        os.Getenv("OTEL_ENABLED") == "true" || os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "",
		OTLPEndpoint:   os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		SampleRate:     sampleRate(os.Getenv("OTEL_TRACES_SAMPLER_ARG")),
		Console:        os.Stderr,
	}
}

// sampleRate parses a ratio in [0, 1]. Anything else samples every trace.
func sampleRate(arg string) float64 {
	rate, err := strconv.ParseFloat(arg, 64)
	if err != nil || rate < 0 || rate > 1 {
		return 1.0
	}
	return rate
}

// Setup initializes OpenTelemetry tracing and returns a shutdown function
func Setup(ctx context.Context, config Config) (func(context.Context) error, error) {
	if !config.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	// Build resource with service information
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(config.ServiceName),
			semconv.ServiceVersion(config.ServiceVersion),
			attribute.String("environment", config.Environment),
		),
	)
	if err != nil {
		return nil, err
	}

	// Create appropriate exporter
	var exporter sdktrace.SpanExporter
	if config.OTLPEndpoint != "" {
		exporter, err = otlptracehttp.New(ctx,
			otlptracehttp.WithEndpoint(config.OTLPEndpoint),
			otlptracehttp.WithInsecure(),
		)
	} else {
		console := config.Console
		if console == nil {
			console = os.Stderr
		}
		exporter, err = stdouttrace.New(stdouttrace.WithWriter(console), stdouttrace.WithPrettyPrint())
	}
	if err != nil {
		return nil, err
	}

	// Callers that already sample (an HTTP client with a traceparent) decide
	// for the whole trace; root spans follow SampleRate.
	sampler := sdktrace.ParentBased(sdktrace.TraceIDRatioBased(config.SampleRate))

	// Create trace provider
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler),
	)

	// Set global providers
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}

// Tracer returns the named tracer for the server
func Tracer() trace.Tracer {
	return otel.Tracer(TracerName)
}

// StartSpan starts a new span with the given name and returns the context and span
func StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return Tracer().Start(ctx, name, opts...)
}

// AddToolAttributes tags a tool call span with the tool and its preset.
func AddToolAttributes(span trace.Span, toolName, category, preset string) {
	span.SetAttributes(
		attribute.String("mcp.tool.name", toolName),
		attribute.String("mcp.tool.category", category),
		attribute.String("mcp.tool.preset", preset),
	)
}

// AddDeviceAttributes adds RouterOS command attributes to a span. The full
// command line is not recorded since it may carry key material.
func AddDeviceAttributes(span trace.Span, host, menu, verb, execID string) {
	span.SetAttributes(
		attribute.String("routeros.host", host),
		attribute.String("routeros.verb", verb),
		attribute.String("routeros.exec_id", execID),
	)
	if menu != "" {
		span.SetAttributes(attribute.String("routeros.menu", menu))
	}
}

// AddOutcome records the classified result of a device command.
func AddOutcome(span trace.Span, outcome string) {
	span.SetAttributes(attribute.String("routeros.outcome", outcome))
}

// RecordError marks the span failed with err. A nil err marks it ok.
func RecordError(span trace.Span, err error) {
	if err == nil {
		span.SetStatus(codes.Ok, "")
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
