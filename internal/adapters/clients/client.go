package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"mime/multipart"
	"net"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/plazasales/storefront/internal/adapters/http/middleware"
	"github.com/plazasales/storefront/internal/platform/config"
	"github.com/plazasales/storefront/internal/platform/logging"
)

const (
	scope = "github.com/plazasales/storefront/internal/adapters/clients"

	defaultTimeout   = 30 * time.Second
	defaultJitter    = 0.25
	defaultUserAgent = "plazasales-storefront"
)

// Config configures one downstream.
type Config struct {
	// BaseURL prefixes every path, e.g. https://api.plazasales.com.np/api/v1.
	BaseURL string

	// ServiceName labels logs, spans, metrics and domain errors.
	ServiceName string

	// Timeout bounds each attempt, not the whole retried call.
	Timeout time.Duration

	Retry     config.RetryConfig
	Circuit   config.CircuitBreakerConfig
	Transport config.TransportConfig

	UserAgent string
	Logger    *slog.Logger
}

// Client talks to one downstream. GET, HEAD and OPTIONS are retried with
// jittered exponential backoff. Every call goes through the circuit breaker,
// gets a client span and forwards the request and correlation IDs.
type Client struct {
	http      *http.Client
	baseURL   string
	name      string
	userAgent string
	retry     config.RetryConfig
	logger    *slog.Logger
	cb        *CircuitBreaker
	tracer    trace.Tracer
	duration  metric.Float64Histogram
}

// New builds a client. Zero timeouts and attempts fall back to defaults.
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	if cfg.ServiceName == "" {
		return nil, errors.New("service name is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	retry := cfg.Retry
	retry.MaxAttempts = max(retry.MaxAttempts, 1)

	if retry.JitterFactor == 0 {
		retry.JitterFactor = defaultJitter
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	cb := NewCircuitBreaker(CircuitBreakerConfig{
		MaxFailures:   cfg.Circuit.MaxFailures,
		Timeout:       cfg.Circuit.Timeout,
		HalfOpenLimit: cfg.Circuit.HalfOpenLimit,
	})
	cb.OnStateChange(func(from, to State) {
		logger.Warn("downstream circuit changed state",
			slog.String("downstream", cfg.ServiceName),
			slog.String("from", from.String()),
			slog.String("to", to.String()))
	})

	duration, err := otel.Meter(scope).Float64Histogram("http.client.request.duration",
		metric.WithDescription("Downstream call latency including retries."),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating client histogram: %w", err)
	}

	return &Client{
		http:      &http.Client{Timeout: timeout, Transport: newTransport(cfg.Transport)},
		baseURL:   strings.TrimSuffix(cfg.BaseURL, "/"),
		name:      cfg.ServiceName,
		userAgent: userAgent,
		retry:     retry,
		logger:    logger,
		cb:        cb,
		tracer:    otel.Tracer(scope),
		duration:  duration,
	}, nil
}

func newTransport(tc config.TransportConfig) *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone() //nolint:forcetypeassert // stdlib default

	if tc.MaxIdleConns > 0 {
		t.MaxIdleConns = tc.MaxIdleConns
	}

	if tc.MaxIdleConnsPerHost > 0 {
		t.MaxIdleConnsPerHost = tc.MaxIdleConnsPerHost
	}

	if tc.IdleConnTimeout > 0 {
		t.IdleConnTimeout = tc.IdleConnTimeout
	}

	return t
}

// Do sends req. Any status code comes back as a response, a 5xx only after
// the last attempt; the error is set only when no response was obtained.
// 5xx responses and transport failures count against the breaker.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	log := logging.FromContextOr(ctx, c.logger).With(
		slog.String("downstream", c.name),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
	)

	if !c.cb.Allow() {
		c.observe(ctx, req.Method, start, "circuit_open", 0)
		log.Warn("downstream call short-circuited")

		return nil, ErrCircuitOpen
	}

	ctx, span := c.tracer.Start(ctx, req.Method+" "+c.name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("url.full", redactQuery(req.URL)),
			attribute.String("peer.service", c.name),
		),
	)
	defer span.End()

	c.stampHeaders(ctx, req)

	attempts := 1
	if isIdempotent(req.Method) {
		attempts = c.retry.MaxAttempts
	}

	resp, err := c.send(ctx, req, attempts, log)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())

		// the caller gave up; that says nothing about the downstream
		if ctx.Err() != nil {
			c.cb.Release()
			c.observe(ctx, req.Method, start, "canceled", 0)
			return nil, err
		}

		c.cb.RecordFailure()
		c.observe(ctx, req.Method, start, "error", 0)
		log.Error("downstream call failed", slog.Duration("duration", time.Since(start)), slog.Any("error", err))

		return nil, fmt.Errorf("%w: %w", ErrMaxRetriesExceeded, err)
	}

	// A 429 means the backend is shedding load, not failing.
	if resp.StatusCode >= http.StatusInternalServerError {
		c.cb.RecordFailure()
	} else {
		c.cb.RecordSuccess()
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode >= http.StatusBadRequest {
		span.SetStatus(codes.Error, resp.Status)
	}

	c.observe(ctx, req.Method, start, strconv.Itoa(resp.StatusCode/100)+"xx", resp.StatusCode)
	log.Debug("downstream call completed",
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)))

	return resp, nil
}

func (c *Client) send(ctx context.Context, req *http.Request, attempts int, log *slog.Logger) (*http.Response, error) {
	var lastErr error

	for attempt := range attempts {
		if attempt > 0 {
			if err := c.pause(ctx, req, attempt, log); err != nil {
				return nil, err
			}
		}

		resp, err := c.http.Do(req.WithContext(ctx))
		final := attempt == attempts-1

		switch {
		case err != nil:
			if final || ctx.Err() != nil || !isRetryableError(err) {
				return nil, err
			}

			lastErr = err
			log.Log(ctx, logging.LevelTrace, "downstream attempt failed",
				slog.Int("attempt", attempt+1), slog.Any("error", err))

		case !retryableStatus(resp.StatusCode) || final:
			return resp, nil

		default:
			lastErr = fmt.Errorf("retryable status: %d", resp.StatusCode)
			log.Log(ctx, logging.LevelTrace, "downstream attempt returned retryable status",
				slog.Int("attempt", attempt+1), slog.Int("status", resp.StatusCode))
			drain(resp.Body)
		}
	}

	return nil, lastErr
}

// retryableStatus reports whether an idempotent request should be sent again.
func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// pause sleeps out the backoff for attempt and rewinds the body.
func (c *Client) pause(ctx context.Context, req *http.Request, attempt int, log *slog.Logger) error {
	wait := c.calculateBackoff(attempt)
	log.Debug("retrying downstream call", slog.Int("attempt", attempt+1), slog.Duration("backoff", wait))

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	if req.GetBody == nil {
		return nil
	}

	body, err := req.GetBody()
	if err != nil {
		return fmt.Errorf("rewinding request body: %w", err)
	}

	req.Body = body

	return nil
}

// Get sends a GET for path with query.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL(path, query), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	return c.Do(ctx, req)
}

// PostJSON sends body as JSON with the extra header entries.
func (c *Client) PostJSON(ctx context.Context, path string, body any, header http.Header) (*http.Response, error) {
	var buf []byte

	if body != nil {
		var err error
		if buf, err = json.Marshal(body); err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
	}

	return c.post(ctx, path, "application/json", buf, header)
}

// PostForm sends a urlencoded form.
func (c *Client) PostForm(ctx context.Context, path string, form url.Values) (*http.Response, error) {
	return c.post(ctx, path, "application/x-www-form-urlencoded", []byte(form.Encode()), nil)
}

// PostMultipart sends fields as multipart/form-data, skipping empty values.
// Fields are written in key order.
func (c *Client) PostMultipart(ctx context.Context, path string, fields map[string]string) (*http.Response, error) {
	var buf bytes.Buffer

	w := multipart.NewWriter(&buf)

	for _, name := range sortedKeys(fields) {
		if fields[name] == "" {
			continue
		}

		if err := w.WriteField(name, fields[name]); err != nil {
			return nil, fmt.Errorf("writing field %s: %w", name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart body: %w", err)
	}

	return c.post(ctx, path, w.FormDataContentType(), buf.Bytes(), nil)
}

func (c *Client) post(ctx context.Context, path, contentType string, body []byte, header http.Header) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.buildURL(path, nil), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	req.Header.Set("Content-Type", contentType)

	return c.Do(ctx, req)
}

// CircuitState is the breaker's current state.
func (c *Client) CircuitState() State {
	return c.cb.State()
}

// CircuitSnapshot is the breaker state with its failure bookkeeping.
func (c *Client) CircuitSnapshot() Snapshot {
	return c.cb.Snapshot()
}

// ServiceName is the downstream label from Config.
func (c *Client) ServiceName() string {
	return c.name
}

// stampHeaders forwards request identity and trace context.
func (c *Client) stampHeaders(ctx context.Context, req *http.Request) {
	if id := middleware.RequestIDFromContext(ctx); id != "" {
		req.Header.Set(middleware.HeaderRequestID, id)
	}

	if id := middleware.CorrelationIDFromContext(ctx); id != "" {
		req.Header.Set(middleware.HeaderCorrelationID, id)
	}

	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}

	req.Header.Set("User-Agent", c.userAgent)

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
}

// buildURL joins base, path and query. An empty path is the base URL itself.
func (c *Client) buildURL(path string, query url.Values) string {
	u := c.baseURL

	if path != "" {
		u += "/" + strings.TrimPrefix(path, "/")
	}

	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	return u
}

// calculateBackoff is initial*multiplier^attempt, capped at MaxInterval, then
// spread by ±JitterFactor.
func (c *Client) calculateBackoff(attempt int) time.Duration {
	d := float64(c.retry.InitialInterval) * math.Pow(c.retry.Multiplier, float64(attempt))
	d = math.Min(d, float64(c.retry.MaxInterval))

	spread := rand.Float64()*2 - 1 //nolint:gosec // jitter only

	return time.Duration(d + d*c.retry.JitterFactor*spread)
}

func (c *Client) observe(ctx context.Context, method string, start time.Time, result string, status int) {
	attrs := []attribute.KeyValue{
		attribute.String("http.request.method", method),
		attribute.String("peer.service", c.name),
		attribute.String("result", result),
	}

	if status > 0 {
		attrs = append(attrs, attribute.Int("http.response.status_code", status))
	}

	c.duration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(attrs...))
}

func isIdempotent(method string) bool {
	return method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions
}

// isRetryableError is true for timeouts and dial or connection failures.
// An attempt timeout also matches context.DeadlineExceeded, so callers check
// their own context before trusting this.
func isRetryableError(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var opErr *net.OpError

	return errors.As(err, &opErr)
}

// redactQuery strips query and userinfo from URLs recorded on spans. Search
// terms stay out of traces.
func redactQuery(u *url.URL) string {
	clean := *u
	clean.RawQuery = ""
	clean.User = nil

	return clean.String()
}

func drain(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, 64<<10))
	_ = body.Close()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}
