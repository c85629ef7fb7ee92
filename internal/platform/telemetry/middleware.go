package telemetry

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	scope = "github.com/plazasales/storefront/telemetry"

	// HeaderTraceID lets the storefront quote a trace when reporting an error.
	HeaderTraceID = "X-Trace-ID"
)

// Gin returns the tracing and request-metrics handlers, in that order.
// Operational routes under /-/ are neither traced nor measured.
func Gin(serviceName string) []gin.HandlerFunc {
	return []gin.HandlerFunc{
		otelgin.Middleware(serviceName, otelgin.WithFilter(func(r *http.Request) bool {
			return !isProbe(r.URL.Path)
		})),
		requestMetrics(otel.Meter(scope)),
	}
}

func isProbe(path string) bool {
	return strings.HasPrefix(path, "/-/")
}

type serverInstruments struct {
	duration metric.Float64Histogram
	inFlight metric.Int64UpDownCounter
}

func newServerInstruments(meter metric.Meter) (*serverInstruments, error) {
	duration, err := meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Storefront API request latency."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30),
	)
	if err != nil {
		return nil, err
	}

	inFlight, err := meter.Int64UpDownCounter("http.server.active_requests",
		metric.WithDescription("Storefront API requests in flight."),
	)
	if err != nil {
		return nil, err
	}

	return &serverInstruments{duration: duration, inFlight: inFlight}, nil
}

// requestMetrics records latency by route and status. The histogram count
// doubles as the request total. Instrument errors go to otel's error handler
// and leave the handler as a pass-through that still sets X-Trace-ID.
func requestMetrics(meter metric.Meter) gin.HandlerFunc {
	inst, err := newServerInstruments(meter)
	if err != nil {
		otel.Handle(err)
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
			c.Header(HeaderTraceID, sc.TraceID().String())
		}

		if inst == nil || isProbe(c.Request.URL.Path) {
			c.Next()
			return
		}

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		base := metric.WithAttributes(
			attribute.String("http.request.method", c.Request.Method),
			attribute.String("http.route", route),
		)

		start := time.Now()

		inst.inFlight.Add(ctx, 1, base)
		defer inst.inFlight.Add(ctx, -1, base)

		c.Next()

		inst.duration.Record(ctx, time.Since(start).Seconds(), base,
			metric.WithAttributes(attribute.Int("http.response.status_code", c.Writer.Status())))
	}
}
