// Package app composes storefront pages and runs the visitor-facing flows.
// Services depend on ports only; adapters are injected at startup.
//
// Page reads fan out to the backend concurrently. Sections a page can live
// without degrade to empty, while the sections it is built around fail it.
// Writes (applications, contact messages, newsletter sign-ups) verify the
// visitor's reCAPTCHA token before anything is forwarded.
package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/plazasales/storefront/internal/domain"
	"github.com/plazasales/storefront/internal/platform/logging"
	"github.com/plazasales/storefront/internal/platform/telemetry"
	"github.com/plazasales/storefront/internal/ports"
)

// Storefront page paths used for canonical and share URLs.
const (
	pathProduct = "/products/"
	pathBlog    = "/blogs/"
	pathCareer  = "/career/"
)

// errNoVisitor is returned by visitor-scoped operations on a request the
// visitor middleware did not identify.
var errNoVisitor = domain.NewValidationError("visitor", "visitor identity required")

// ServiceConfig holds the settings shared by the storefront services.
type ServiceConfig struct {
	Logger  *slog.Logger
	Metrics *telemetry.StorefrontMetrics

	// SiteURL is the public storefront origin, without a trailing slash.
	SiteURL string

	// Now defaults to time.Now.
	Now func() time.Time
}

type base struct {
	logger  *slog.Logger
	metrics *telemetry.StorefrontMetrics
	siteURL string
	now     func() time.Time
}

func newBase(cfg *ServiceConfig, component string) base {
	b := base{
		logger: slog.Default(),
		now:    time.Now,
	}

	if cfg != nil {
		if cfg.Logger != nil {
			b.logger = cfg.Logger
		}

		if cfg.Now != nil {
			b.now = cfg.Now
		}

		b.metrics = cfg.Metrics
		b.siteURL = strings.TrimRight(cfg.SiteURL, "/")
	}

	b.logger = b.logger.With(slog.String("component", component))

	return b
}

// log prefers the request logger so request and visitor ids are attached.
func (b base) log(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, b.logger)
}

func (b base) degraded(page string) degradeFunc {
	return func(_ context.Context, section string, _ error) {
		b.metrics.Degraded(page, section)
	}
}

func (b base) url(path, slug string) string {
	return b.siteURL + path + slug
}

// visitorID returns the id of the visitor the middleware attached to ctx.
func visitorID(ctx context.Context) (string, error) {
	v := ports.VisitorFromContext(ctx)
	if v == nil || v.ID == "" {
		return "", errNoVisitor
	}

	return v.ID, nil
}

// loadVisitor reads the visitor's state for a page. Pages render without
// per-visitor flags when the visitor is unknown or the store is down.
func (b base) loadVisitor(ctx context.Context, store ports.VisitorStore) *domain.VisitorState {
	id, err := visitorID(ctx)
	if err != nil {
		return &domain.VisitorState{}
	}

	state, err := store.Load(ctx, id)
	if err != nil {
		b.log(ctx).WarnContext(ctx, "visitor state unavailable", slog.Any("error", err))
		return &domain.VisitorState{VisitorID: id}
	}

	return state
}

// outcome classifies a submission result for the submissions counter.
func outcome(err error) string {
	switch {
	case err == nil:
		return telemetry.OutcomeAccepted
	case errors.Is(err, domain.ErrValidation):
		return telemetry.OutcomeInvalid
	case errors.Is(err, domain.ErrCaptchaRejected):
		return telemetry.OutcomeCaptcha
	default:
		return telemetry.OutcomeFailed
	}
}
