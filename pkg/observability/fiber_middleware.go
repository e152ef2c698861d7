package observability

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	otelmetric "go.opentelemetry.io/otel/metric"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/nutrivida/nutrivida_backend/pkg/observability"

// FiberMiddleware creates a Fiber middleware for OpenTelemetry tracing and metrics
func FiberMiddleware() fiber.Handler {
	tracer := otel.Tracer(tracerName)
	meter := otel.Meter(tracerName)

	requestCounter, _ := meter.Int64Counter(
		"http_server_request_count",
		otelmetric.WithDescription("Total number of HTTP requests"),
	)

	requestDuration, _ := meter.Float64Histogram(
		"http_server_request_duration_ms",
		otelmetric.WithDescription("HTTP request duration in milliseconds"),
		otelmetric.WithUnit("ms"),
	)

	return func(c fiber.Ctx) error {
		start := time.Now()

		ctx, span := tracer.Start(c.Context(), c.Method()+" "+c.Path(),
			oteltrace.WithSpanKind(oteltrace.SpanKindServer),
			oteltrace.WithAttributes(
				attribute.String("http.method", c.Method()),
				attribute.String("http.route", c.Path()),
				attribute.String("http.target", c.OriginalURL()),
				attribute.String("http.scheme", c.Protocol()),
				attribute.String("net.host.name", c.Hostname()),
			),
		)
		defer span.End()

		c.SetContext(ctx)

		err := c.Next()

		statusCode := c.Response().StatusCode()
		duration := float64(time.Since(start).Microseconds()) / 1000.0

		attrs := []attribute.KeyValue{
			attribute.String("http.method", c.Method()),
			attribute.String("http.route", c.Path()),
			attribute.Int("http.status_code", statusCode),
		}

		span.SetAttributes(attribute.Int("http.status_code", statusCode))
		if statusCode >= 500 {
			span.SetStatus(codes.Error, strconv.Itoa(statusCode))
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}

		requestCounter.Add(ctx, 1, otelmetric.WithAttributes(attrs...))
		requestDuration.Record(ctx, duration, otelmetric.WithAttributes(attrs...))

		c.Set("X-Trace-Id", span.SpanContext().TraceID().String())

		return err
	}
}
