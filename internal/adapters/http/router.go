package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/plazasales/storefront/internal/adapters/http/handlers"
	"github.com/plazasales/storefront/internal/adapters/http/middleware"
	"github.com/plazasales/storefront/internal/adapters/visitor"
	"github.com/plazasales/storefront/internal/platform/config"
	"github.com/plazasales/storefront/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// ApplyRoute is the multipart career application route. It gets its own
// deadline and body cap.
const ApplyRoute = "/api/v1/careers/:slug/apply"

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger seeds every request's context logger.
	Logger *slog.Logger

	// AppConfig names the service for tracing.
	AppConfig *config.AppConfig

	// HealthHandler handles health check endpoints.
	HealthHandler *handlers.HealthHandler

	// Timeout is the default request deadline; UploadTimeout applies to ApplyRoute.
	Timeout       time.Duration
	UploadTimeout time.Duration

	// MaxBodySize caps request bodies; UploadBodySize applies to ApplyRoute.
	MaxBodySize    int64
	UploadBodySize int64

	// VisitorTokens and VisitorConfig drive the anonymous visitor cookie.
	// Without tokens the API runs without visitor identity.
	VisitorTokens *visitor.Tokens
	VisitorConfig config.VisitorConfig

	Catalog    *handlers.CatalogHandler
	Brands     *handlers.BrandHandler
	Blogs      *handlers.BlogHandler
	Careers    *handlers.CareerHandler
	Submission *handlers.SubmissionHandler
	Ads        *handlers.AdHandler
	SEO        *handlers.SEOHandler
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Global middleware, first to last:
//  1. Recovery
//  2. Logger seed, so everything after logs through the request logger
//  3. Request ID, then correlation ID
//  4. OpenTelemetry tracing, then request metrics (both skip /-/)
//  5. Logging (skips /-/)
//  6. Body limit
//
// The /api/v1 group adds the visitor cookie and the request deadline.
// Operational endpoints under /-/ get neither.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	serviceName := "storefront"
	if cfg.AppConfig != nil && cfg.AppConfig.Name != "" {
		serviceName = cfg.AppConfig.Name
	}

	chain := []gin.HandlerFunc{
		middleware.Recovery(cfg.Logger),
		middleware.Logger(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
	}
	chain = append(chain, telemetry.Gin(serviceName)...)
	chain = append(chain,
		middleware.Logging(),
		middleware.BodyLimit(cfg.MaxBodySize, larger(cfg.UploadBodySize)),
	)

	engine.Use(chain...)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterRoutes(engine.Group("/-"))
	}

	apiV1 := engine.Group("/api/v1")

	if cfg.VisitorTokens != nil {
		apiV1.Use(middleware.Visitor(cfg.VisitorTokens, cfg.VisitorConfig))
	}

	if cfg.Timeout > 0 {
		apiV1.Use(middleware.Timeout(cfg.Timeout, larger(cfg.UploadTimeout)))
	}

	setupAPIRoutes(apiV1, cfg)
}

// setupAPIRoutes registers the storefront endpoints. Nil handlers are skipped,
// which lets tests mount a subset.
func setupAPIRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.Catalog != nil {
		cfg.Catalog.RegisterRoutes(rg)
	}

	if cfg.Brands != nil {
		cfg.Brands.RegisterRoutes(rg)
	}

	if cfg.Blogs != nil {
		cfg.Blogs.RegisterRoutes(rg)
	}

	if cfg.Careers != nil {
		cfg.Careers.RegisterRoutes(rg)
	}

	if cfg.Submission != nil {
		cfg.Submission.RegisterRoutes(rg)
	}

	if cfg.Ads != nil {
		cfg.Ads.RegisterRoutes(rg)
	}

	if cfg.SEO != nil {
		cfg.SEO.RegisterRoutes(rg)
	}
}

func larger[T time.Duration | int64](v T) map[string]T {
	if v <= 0 {
		return nil
	}

	return map[string]T{ApplyRoute: v}
}

// NewDefaultRouterConfig creates a RouterConfig from the loaded configuration.
// Handlers are left for the caller to fill in.
func NewDefaultRouterConfig(
	logger *slog.Logger,
	cfg *config.Config,
	tokens *visitor.Tokens,
	healthHandler *handlers.HealthHandler,
) RouterConfig {
	timeout := cfg.Server.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	uploadBytes := int64(cfg.Uploads.MaxSizeMB) << 20

	return RouterConfig{
		Logger:         logger,
		AppConfig:      &cfg.App,
		HealthHandler:  healthHandler,
		Timeout:        timeout,
		UploadTimeout:  uploadTimeoutFactor * timeout,
		MaxBodySize:    cfg.Server.MaxRequestSize,
		UploadBodySize: 2*uploadBytes + cfg.Server.MaxRequestSize,
		VisitorTokens:  tokens,
		VisitorConfig:  cfg.Visitor,
	}
}

// An application streams two attachments to object storage before the
// backend call.
const uploadTimeoutFactor = 4
