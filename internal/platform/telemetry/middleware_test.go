package telemetry

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func durationPoints(t *testing.T, reader *sdkmetric.ManualReader) []metricdata.HistogramDataPoint[float64] {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(t.Context(), &rm))

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == "http.server.request.duration" {
				hist, ok := m.Data.(metricdata.Histogram[float64])
				require.True(t, ok)

				return hist.DataPoints
			}
		}
	}

	return nil
}

func TestRequestMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	engine := gin.New()
	engine.Use(requestMetrics(provider.Meter("test")))
	engine.GET("/api/v1/products/:slug", func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.GET("/-/live", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/api/v1/products/reefer", "/api/v1/products/mk3", "/-/live", "/nowhere"} {
		engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	points := durationPoints(t, reader)
	require.Len(t, points, 2)

	byRoute := map[string]metricdata.HistogramDataPoint[float64]{}
	for _, p := range points {
		route, _ := p.Attributes.Value(attribute.Key("http.route"))
		byRoute[route.AsString()] = p
	}

	products := byRoute["/api/v1/products/:slug"]
	assert.Equal(t, uint64(2), products.Count)

	status, ok := products.Attributes.Value("http.response.status_code")
	require.True(t, ok)
	assert.Equal(t, int64(http.StatusOK), status.AsInt64())

	assert.Equal(t, uint64(1), byRoute["unmatched"].Count)
}

func TestRequestMetrics_EchoesTraceID(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })

	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		ctx, span := tp.Tracer("test").Start(c.Request.Context(), "request")
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})
	engine.Use(requestMetrics(sdkmetric.NewMeterProvider().Meter("test")))

	var traceID string
	engine.GET("/api/v1/brands", func(c *gin.Context) {
		traceID = trace.SpanContextFromContext(c.Request.Context()).TraceID().String()
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/brands", nil))

	require.NotEmpty(t, traceID)
	assert.Equal(t, traceID, w.Header().Get(HeaderTraceID))
}

func TestGin_SkipsProbes(t *testing.T) {
	handlers := Gin("storefront")
	require.Len(t, handlers, 2)

	assert.True(t, isProbe("/-/ready"))
	assert.False(t, isProbe("/api/v1/pages/home"))
}
