package clients

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plazasales/storefront/internal/adapters/http/middleware"
	"github.com/plazasales/storefront/internal/platform/config"
)

func testConfig(baseURL string) *Config {
	return &Config{
		BaseURL:     baseURL,
		ServiceName: "backend-api",
		Timeout:     2 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 5 * time.Millisecond,
			MaxInterval:     20 * time.Millisecond,
			Multiplier:      2,
		},
		Circuit: config.CircuitBreakerConfig{MaxFailures: 5, Timeout: time.Second, HalfOpenLimit: 1},
	}
}

// newBackend serves h and returns a client for it plus a hit counter.
func newBackend(t *testing.T, h http.HandlerFunc, mutate ...func(*Config)) (*Client, *atomic.Int32) {
	t.Helper()

	var hits atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		h(w, r)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	for _, m := range mutate {
		m(cfg)
	}

	c, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(c.http.CloseIdleConnections)

	return c, &hits
}

func status(code int) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(code) }
}

func TestNew(t *testing.T) {
	_, err := New(nil)
	require.EqualError(t, err, "config is required")

	_, err = New(&Config{BaseURL: "http://backend"})
	require.EqualError(t, err, "service name is required")

	c, err := New(&Config{BaseURL: "https://api.plazasales.test/api/v1/", ServiceName: "backend-api"})
	require.NoError(t, err)
	assert.Equal(t, "https://api.plazasales.test/api/v1", c.baseURL)
	assert.Equal(t, 1, c.retry.MaxAttempts)
	assert.InDelta(t, defaultJitter, c.retry.JitterFactor, 0)
	assert.Equal(t, defaultTimeout, c.http.Timeout)
	assert.Equal(t, "backend-api", c.ServiceName())
}

func TestClient_RetryPolicy(t *testing.T) {
	tests := []struct {
		name     string
		call     func(*Client) (*http.Response, error)
		handler  http.HandlerFunc
		wantCode int
		wantHits int32
	}{
		{
			name:     "404 is final",
			call:     func(c *Client) (*http.Response, error) { return c.Get(context.Background(), "/product/gone", nil) },
			handler:  status(http.StatusNotFound),
			wantCode: http.StatusNotFound,
			wantHits: 1,
		},
		{
			name:     "5xx listing is retried then returned",
			call:     func(c *Client) (*http.Response, error) { return c.Get(context.Background(), "/brand/get-all-brands", nil) },
			handler:  status(http.StatusServiceUnavailable),
			wantCode: http.StatusServiceUnavailable,
			wantHits: 3,
		},
		{
			name:     "429 listing is retried then returned",
			call:     func(c *Client) (*http.Response, error) { return c.Get(context.Background(), "/product/get-all-products", nil) },
			handler:  status(http.StatusTooManyRequests),
			wantCode: http.StatusTooManyRequests,
			wantHits: 3,
		},
		{
			name: "429 submission gets one attempt",
			call: func(c *Client) (*http.Response, error) {
				return c.PostJSON(context.Background(), "/contact", map[string]string{"fullname": "Sita"}, nil)
			},
			handler:  status(http.StatusTooManyRequests),
			wantCode: http.StatusTooManyRequests,
			wantHits: 1,
		},
		{
			name: "submission gets one attempt",
			call: func(c *Client) (*http.Response, error) {
				return c.PostJSON(context.Background(), "/contact", map[string]string{"fullname": "Sita"}, nil)
			},
			handler:  status(http.StatusBadGateway),
			wantCode: http.StatusBadGateway,
			wantHits: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, hits := newBackend(t, tt.handler)

			resp, err := tt.call(c)
			require.NoError(t, err)
			resp.Body.Close()

			assert.Equal(t, tt.wantCode, resp.StatusCode)
			assert.Equal(t, tt.wantHits, hits.Load())
		})
	}

	t.Run("recovers on a later attempt", func(t *testing.T) {
		var n atomic.Int32

		c, hits := newBackend(t, func(w http.ResponseWriter, _ *http.Request) {
			if n.Add(1) < 3 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			_, _ = io.WriteString(w, `{"brands":[]}`)
		})

		resp, err := c.Get(t.Context(), "/brand/get-all-brands", nil)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, int32(3), hits.Load())
		assert.Equal(t, StateClosed, c.CircuitState())
	})

	t.Run("unreachable backend exhausts retries", func(t *testing.T) {
		srv := httptest.NewServer(status(http.StatusOK))
		addr := srv.URL
		srv.Close()

		c, err := New(testConfig(addr))
		require.NoError(t, err)

		_, err = c.Get(t.Context(), "/blog/get-all-blogs", nil)
		require.ErrorIs(t, err, ErrMaxRetriesExceeded)
		assert.Equal(t, 1, c.CircuitSnapshot().Failures)
	})
}

func TestClient_Breaker(t *testing.T) {
	c, hits := newBackend(t, status(http.StatusInternalServerError), func(cfg *Config) {
		cfg.Retry.MaxAttempts = 1
		cfg.Circuit.MaxFailures = 2
	})

	for range 2 {
		resp, err := c.Get(t.Context(), "/category/get-all-categories", nil)
		require.NoError(t, err)
		resp.Body.Close()
	}

	require.Equal(t, StateOpen, c.CircuitState())

	_, err := c.Get(t.Context(), "/category/get-all-categories", nil)
	require.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, int32(2), hits.Load(), "open breaker must not reach the backend")
	assert.Positive(t, c.CircuitSnapshot().RetryAfter)
}

func TestClient_RateLimitLeavesBreakerClosed(t *testing.T) {
	c, hits := newBackend(t, status(http.StatusTooManyRequests), func(cfg *Config) {
		cfg.Retry.MaxAttempts = 1
		cfg.Circuit.MaxFailures = 2
	})

	for range 3 {
		resp, err := c.Get(t.Context(), "/category/get-all-categories", nil)
		require.NoError(t, err)
		resp.Body.Close()
	}

	assert.Equal(t, StateClosed, c.CircuitState())
	assert.Equal(t, int32(3), hits.Load())
}

func TestClient_CallerCancellation(t *testing.T) {
	release := make(chan struct{})

	c, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, func(cfg *Config) { cfg.Circuit.MaxFailures = 1 })
	t.Cleanup(func() { close(release) })

	ctx, cancel := context.WithTimeout(t.Context(), 30*time.Millisecond)
	defer cancel()

	_, err := c.Get(ctx, "/career/get-all-careers", nil)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotErrorIs(t, err, ErrMaxRetriesExceeded)
	assert.Equal(t, StateClosed, c.CircuitState(), "abandoned calls do not trip the breaker")
}

func TestClient_AttemptTimeout(t *testing.T) {
	release := make(chan struct{})

	c, hits := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, func(cfg *Config) {
		cfg.Timeout = 30 * time.Millisecond
		cfg.Retry.MaxAttempts = 2
	})
	t.Cleanup(func() { close(release) })

	_, err := c.Get(t.Context(), "/ads", nil)
	require.ErrorIs(t, err, ErrMaxRetriesExceeded)
	assert.Equal(t, int32(2), hits.Load())
}

func TestClient_OutboundHeaders(t *testing.T) {
	got := make(chan *http.Request, 1)

	c, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		got <- r.Clone(context.Background())
	})

	ctx := middleware.ContextWithRequestID(t.Context(), "req-7")
	ctx = middleware.ContextWithCorrelationID(ctx, "corr-7")

	resp, err := c.Get(ctx, "product/search", url.Values{"search": {"ice lined"}, "page": {"2"}})
	require.NoError(t, err)
	resp.Body.Close()

	r := <-got
	assert.Equal(t, "/product/search", r.URL.Path)
	assert.Equal(t, "page=2&search=ice+lined", r.URL.RawQuery)
	assert.Equal(t, "req-7", r.Header.Get(middleware.HeaderRequestID))
	assert.Equal(t, "corr-7", r.Header.Get(middleware.HeaderCorrelationID))
	assert.Equal(t, "application/json", r.Header.Get("Accept"))
	assert.Equal(t, defaultUserAgent, r.Header.Get("User-Agent"))
}

func TestClient_Bodies(t *testing.T) {
	t.Run("json with extra headers", func(t *testing.T) {
		c, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "tok", r.Header.Get("X-Recaptcha-Token"))
			assert.JSONEq(t, `{"email":"sita@example.com"}`, string(body))
			w.WriteHeader(http.StatusCreated)
		})

		resp, err := c.PostJSON(t.Context(), "/subscriber", map[string]string{"email": "sita@example.com"},
			http.Header{"X-Recaptcha-Token": {"tok"}})
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("form to the base url", func(t *testing.T) {
		c, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "/", r.URL.Path)
			assert.Equal(t, "s3cret", r.PostForm.Get("secret"))
		})

		resp, err := c.PostForm(t.Context(), "", url.Values{"secret": {"s3cret"}})
		require.NoError(t, err)
		resp.Body.Close()
	})

	t.Run("multipart skips empty fields", func(t *testing.T) {
		c, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, "Sita Rai", r.FormValue("name"))
			assert.Equal(t, "https://files.test/cv.pdf", r.FormValue("resumeUrl"))
			_, present := r.MultipartForm.Value["coverLetterUrl"]
			assert.False(t, present)
		})

		resp, err := c.PostMultipart(t.Context(), "/career/apply", map[string]string{
			"name":           "Sita Rai",
			"resumeUrl":      "https://files.test/cv.pdf",
			"coverLetterUrl": "",
		})
		require.NoError(t, err)
		resp.Body.Close()
	})
}

func TestCalculateBackoff(t *testing.T) {
	c, err := New(&Config{
		ServiceName: "backend-api",
		Retry: config.RetryConfig{
			MaxAttempts:     5,
			InitialInterval: 100 * time.Millisecond,
			MaxInterval:     time.Second,
			Multiplier:      2,
			JitterFactor:    0.25,
		},
	})
	require.NoError(t, err)

	for attempt, base := range []time.Duration{100, 200, 400, 800, 1000, 1000} {
		base *= time.Millisecond
		got := c.calculateBackoff(attempt)

		assert.GreaterOrEqual(t, got, base*3/4, "attempt %d", attempt)
		assert.LessOrEqual(t, got, base*5/4, "attempt %d", attempt)
	}
}

type fakeNetError struct{ timeout bool }

func (e fakeNetError) Error() string   { return "net" }
func (e fakeNetError) Timeout() bool   { return e.timeout }
func (e fakeNetError) Temporary() bool { return false }

func TestIsRetryableError(t *testing.T) {
	assert.False(t, isRetryableError(nil))
	assert.False(t, isRetryableError(context.Canceled))
	assert.False(t, isRetryableError(fakeNetError{}))
	assert.True(t, isRetryableError(fakeNetError{timeout: true}))
	assert.True(t, isRetryableError(&net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}))
}

func TestRedactQuery(t *testing.T) {
	u, err := url.Parse("https://user:pw@api.plazasales.test/product/search?search=vaccine+fridge")
	require.NoError(t, err)

	assert.Equal(t, "https://api.plazasales.test/product/search", redactQuery(u))
}
