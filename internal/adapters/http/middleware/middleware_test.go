package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plazasales/storefront/internal/adapters/http/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// syncBuffer lets handlers log while the test reads.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func jsonLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func logLines(t *testing.T, out string) []map[string]any {
	t.Helper()

	var lines []map[string]any

	for _, l := range strings.Split(strings.TrimSpace(out), "\n") {
		if l == "" {
			continue
		}

		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(l), &m))
		lines = append(lines, m)
	}

	return lines
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		inbound  string
		wantKeep bool
	}{
		{name: "generates when absent", inbound: ""},
		{name: "keeps a well formed id", inbound: "req-abc-123", wantKeep: true},
		{name: "replaces ids with spaces", inbound: "req abc"},
		{name: "replaces control characters", inbound: "req\x01abc"},
		{name: "replaces non ascii", inbound: "réq"},
		{name: "replaces oversized ids", inbound: strings.Repeat("a", maxIDLength+1)},
		{name: "keeps ids at the limit", inbound: strings.Repeat("a", maxIDLength), wantKeep: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var fromGin, fromCtx string

			router := gin.New()
			router.Use(RequestID())
			router.GET("/x", func(c *gin.Context) {
				fromGin = GetRequestID(c)
				fromCtx = RequestIDFromContext(c.Request.Context())
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tt.inbound != "" {
				req.Header.Set(HeaderRequestID, tt.inbound)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, fromGin, fromCtx)
			assert.Equal(t, fromGin, w.Header().Get(HeaderRequestID))

			if tt.wantKeep {
				assert.Equal(t, tt.inbound, fromGin)
				return
			}

			_, err := uuid.Parse(fromGin)
			assert.NoError(t, err, "expected a generated uuid, got %q", fromGin)
		})
	}
}

func TestCorrelationID(t *testing.T) {
	t.Parallel()

	run := func(t *testing.T, headers map[string]string) (requestID, correlationID string, w *httptest.ResponseRecorder) {
		t.Helper()

		router := gin.New()
		router.Use(RequestID(), CorrelationID())
		router.GET("/x", func(c *gin.Context) {
			requestID = GetRequestID(c)
			correlationID = CorrelationIDFromContext(c.Request.Context())
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)

		return requestID, correlationID, w
	}

	t.Run("propagates inbound id", func(t *testing.T) {
		t.Parallel()

		_, corr, w := run(t, map[string]string{HeaderCorrelationID: "journey-42"})

		assert.Equal(t, "journey-42", corr)
		assert.Equal(t, "journey-42", w.Header().Get(HeaderCorrelationID))
	})

	t.Run("falls back to request id", func(t *testing.T) {
		t.Parallel()

		reqID, corr, _ := run(t, nil)

		assert.NotEmpty(t, corr)
		assert.Equal(t, reqID, corr)
	})

	t.Run("invalid inbound id uses request id", func(t *testing.T) {
		t.Parallel()

		reqID, corr, _ := run(t, map[string]string{
			HeaderRequestID:     "req-1",
			HeaderCorrelationID: "bad id",
		})

		assert.Equal(t, "req-1", reqID)
		assert.Equal(t, "req-1", corr)
	})

	t.Run("generates without request id middleware", func(t *testing.T) {
		t.Parallel()

		var corr string

		router := gin.New()
		router.Use(CorrelationID())
		router.GET("/x", func(c *gin.Context) {
			corr = GetCorrelationID(c)
		})

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

		_, err := uuid.Parse(corr)
		assert.NoError(t, err)
	})
}

func TestGetIDs_Unset(t *testing.T) {
	t.Parallel()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Empty(t, GetRequestID(c))
	assert.Empty(t, GetCorrelationID(c))
}

func TestRecovery(t *testing.T) {
	t.Parallel()

	t.Run("passes through", func(t *testing.T) {
		t.Parallel()

		router := gin.New()
		router.Use(Recovery(slog.New(slog.NewTextHandler(io.Discard, nil))))
		router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("panic becomes generic envelope", func(t *testing.T) {
		t.Parallel()

		var buf syncBuffer

		router := gin.New()
		router.Use(Recovery(jsonLogger(&buf)), RequestID())
		router.GET("/products/:slug", func(*gin.Context) {
			panic("nil map write")
		})

		req := httptest.NewRequest(http.MethodGet, "/products/reefer", nil)
		req.Header.Set(HeaderRequestID, "req-panic")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusInternalServerError, w.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrorCodeInternal, resp.Error.Code)
		assert.Equal(t, "Something went wrong", resp.Error.Message)
		assert.NotContains(t, w.Body.String(), "nil map write")

		out := buf.String()
		assert.Contains(t, out, "panic recovered")
		assert.Contains(t, out, "nil map write")
		assert.Contains(t, out, "/products/:slug")
	})

	t.Run("prefers the request logger", func(t *testing.T) {
		t.Parallel()

		var fallback, seeded syncBuffer

		router := gin.New()
		router.Use(Recovery(jsonLogger(&fallback)), Logger(jsonLogger(&seeded)), RequestID())
		router.GET("/x", func(*gin.Context) { panic("boom") })

		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(HeaderRequestID, "req-7")

		router.ServeHTTP(httptest.NewRecorder(), req)

		assert.Empty(t, fallback.String())
		assert.Contains(t, seeded.String(), `"request_id":"req-7"`)
	})

	t.Run("keeps a partially written response", func(t *testing.T) {
		t.Parallel()

		router := gin.New()
		router.Use(Recovery(slog.New(slog.NewTextHandler(io.Discard, nil))))
		router.GET("/x", func(c *gin.Context) {
			c.String(http.StatusOK, "partial")
			panic("late")
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "partial", w.Body.String())
	})
}

func TestTimeout(t *testing.T) {
	t.Parallel()

	t.Run("sets a deadline", func(t *testing.T) {
		t.Parallel()

		var remaining time.Duration

		router := gin.New()
		router.Use(Timeout(5*time.Second, nil))
		router.GET("/x", func(c *gin.Context) {
			dl, ok := c.Request.Context().Deadline()
			require.True(t, ok)
			remaining = time.Until(dl)
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.InDelta(t, float64(5*time.Second), float64(remaining), float64(time.Second))
	})

	t.Run("route override", func(t *testing.T) {
		t.Parallel()

		var remaining time.Duration

		router := gin.New()
		router.Use(Timeout(time.Second, map[string]time.Duration{"/careers/:slug/apply": time.Minute}))
		router.POST("/careers/:slug/apply", func(c *gin.Context) {
			dl, _ := c.Request.Context().Deadline()
			remaining = time.Until(dl)
			c.Status(http.StatusAccepted)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/careers/engineer/apply", nil))

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Greater(t, remaining, 30*time.Second)
	})

	t.Run("zero disables", func(t *testing.T) {
		t.Parallel()

		var hasDeadline bool

		router := gin.New()
		router.Use(Timeout(0, nil))
		router.GET("/x", func(c *gin.Context) {
			_, hasDeadline = c.Request.Context().Deadline()
		})

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.False(t, hasDeadline)
	})

	t.Run("expired deadline yields 504", func(t *testing.T) {
		t.Parallel()

		router := gin.New()
		router.Use(Timeout(10*time.Millisecond, nil))
		router.GET("/x", func(c *gin.Context) {
			<-c.Request.Context().Done()
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		require.Equal(t, http.StatusGatewayTimeout, w.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrorCodeTimeout, resp.Error.Code)
	})

	t.Run("handler response wins over deadline", func(t *testing.T) {
		t.Parallel()

		router := gin.New()
		router.Use(Timeout(10*time.Millisecond, nil))
		router.GET("/x", func(c *gin.Context) {
			<-c.Request.Context().Done()
			dto.RespondWithError(c, context.DeadlineExceeded)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, http.StatusGatewayTimeout, w.Code)
		assert.Equal(t, 1, strings.Count(w.Body.String(), `"code"`))
	})
}

func TestLogging(t *testing.T) {
	t.Parallel()

	serveLogged := func(t *testing.T, path string, status int, skip ...string) []map[string]any {
		t.Helper()

		var buf syncBuffer

		router := gin.New()
		router.Use(Logger(jsonLogger(&buf)), RequestID(), Logging(skip...))
		router.GET("/api/v1/products/:slug", func(c *gin.Context) { c.Status(status) })
		router.GET("/-/ready", func(c *gin.Context) { c.Status(status) })
		router.GET("/metrics", func(c *gin.Context) { c.Status(status) })

		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set(HeaderRequestID, "req-log")

		router.ServeHTTP(httptest.NewRecorder(), req)

		return logLines(t, buf.String())
	}

	levels := []struct {
		status int
		level  string
	}{
		{http.StatusOK, "INFO"},
		{http.StatusNotFound, "WARN"},
		{http.StatusBadGateway, "ERROR"},
	}

	for _, tt := range levels {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()

			lines := serveLogged(t, "/api/v1/products/reefer?ref=home", tt.status)
			require.Len(t, lines, 1)

			line := lines[0]
			assert.Equal(t, tt.level, line["level"])
			assert.Equal(t, "request completed", line["msg"])
			assert.Equal(t, "/api/v1/products/:slug", line["route"])
			assert.Equal(t, "/api/v1/products/reefer", line["path"])
			assert.Equal(t, "req-log", line["request_id"])
			assert.InDelta(t, tt.status, line["status"], 0)
		})
	}

	t.Run("skips operational paths", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, serveLogged(t, "/-/ready", http.StatusOK))
	})

	t.Run("skips listed paths", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, serveLogged(t, "/metrics", http.StatusOK, "/metrics"))
	})
}

func TestBodyLimit(t *testing.T) {
	t.Parallel()

	router := gin.New()
	router.Use(BodyLimit(16, map[string]int64{"/upload": 1024}))

	read := func(c *gin.Context) {
		b, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}

		c.String(http.StatusOK, "%d", len(b))
	}
	router.POST("/form", read)
	router.POST("/upload", read)

	tests := []struct {
		path string
		size int
		want int
	}{
		{"/form", 16, http.StatusOK},
		{"/form", 17, http.StatusRequestEntityTooLarge},
		{"/upload", 512, http.StatusOK},
		{"/upload", 2048, http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(strings.Repeat("x", tt.size))))

		assert.Equal(t, tt.want, w.Code, "%s with %d bytes", tt.path, tt.size)
	}
}
