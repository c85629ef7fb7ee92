package acl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/plazasales/storefront/internal/adapters/clients"
	"github.com/plazasales/storefront/internal/domain"
	"github.com/plazasales/storefront/internal/platform/logging"
)

// maxResponseBytes bounds how much of a backend body is decoded.
const maxResponseBytes = 8 << 20

// BaseAdapter holds the request plumbing shared by every backend resource:
// status mapping, envelope decoding and trace logging.
type BaseAdapter struct {
	client      *clients.Client
	serviceName string
	logger      *slog.Logger
}

// NewBaseAdapter creates a base adapter over client.
func NewBaseAdapter(client *clients.Client, logger *slog.Logger) BaseAdapter {
	if logger == nil {
		logger = slog.Default()
	}

	return BaseAdapter{
		client:      client,
		serviceName: client.ServiceName(),
		logger:      logger,
	}
}

// ServiceName returns the downstream name used in errors and logs.
func (a *BaseAdapter) ServiceName() string {
	return a.serviceName
}

// target describes what a request addresses, for error messages.
type target struct {
	operation string
	entity    string
	key       string
}

// getJSON GETs path and decodes the 2xx body into out.
func (a *BaseAdapter) getJSON(ctx context.Context, path string, query url.Values, t target, out any) error {
	a.logger.Log(ctx, logging.LevelTrace, "backend request",
		slog.String("operation", t.operation),
		slog.String("path", path))

	resp, err := a.client.Get(ctx, path, query)

	return a.handle(ctx, resp, err, t, out)
}

// postJSON POSTs body as JSON. out may be nil when the response is ignored.
func (a *BaseAdapter) postJSON(ctx context.Context, path string, body any, header http.Header, t target, out any) error {
	a.logger.Log(ctx, logging.LevelTrace, "backend request",
		slog.String("operation", t.operation),
		slog.String("path", path))

	resp, err := a.client.PostJSON(ctx, path, body, header)

	return a.handle(ctx, resp, err, t, out)
}

// postMultipart POSTs a multipart form.
func (a *BaseAdapter) postMultipart(ctx context.Context, path string, fields map[string]string, t target, out any) error {
	a.logger.Log(ctx, logging.LevelTrace, "backend request",
		slog.String("operation", t.operation),
		slog.String("path", path))

	resp, err := a.client.PostMultipart(ctx, path, fields)

	return a.handle(ctx, resp, err, t, out)
}

func (a *BaseAdapter) handle(ctx context.Context, resp *http.Response, err error, t target, out any) error {
	if err != nil {
		return MapHTTPError(nil, err, a.serviceName, t.operation, t.entity, t.key)
	}
	defer func() { _ = resp.Body.Close() }()

	a.logger.Log(ctx, logging.LevelTrace, "backend response",
		slog.String("operation", t.operation),
		slog.Int("status", resp.StatusCode))

	if resp.StatusCode >= http.StatusMultipleChoices {
		return MapHTTPError(resp, nil, a.serviceName, t.operation, t.entity, t.key)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return domain.NewUnavailableError(a.serviceName, fmt.Sprintf("decoding %s response: %v", t.operation, err))
	}

	return nil
}

// Name implements ports.HealthChecker.
func (a *BaseAdapter) Name() string {
	return a.serviceName
}

// Check implements ports.HealthChecker. An open breaker still cooling down
// reports unhealthy without a request; otherwise the cheapest listing call
// is made, which doubles as the half-open probe.
func (a *BaseAdapter) Check(ctx context.Context) error {
	if snap := a.client.CircuitSnapshot(); snap.State == clients.StateOpen && snap.RetryAfter > 0 {
		return fmt.Errorf("circuit open, retry in %s", snap.RetryAfter.Round(time.Millisecond))
	}

	var out categoriesEnvelope

	return a.getJSON(ctx, pathCategories, url.Values{"page": {"1"}, "limit": {"1"}},
		target{operation: "health check"}, &out)
}

// TranslateSlice applies translate to each item, preserving order.
func TranslateSlice[E any, D any](items []E, translate func(*E) D) []D {
	result := make([]D, 0, len(items))

	for i := range items {
		result = append(result, translate(&items[i]))
	}

	return result
}
