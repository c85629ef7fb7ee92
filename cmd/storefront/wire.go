package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/plazasales/storefront/internal/adapters/clients"
	"github.com/plazasales/storefront/internal/adapters/clients/acl"
	"github.com/plazasales/storefront/internal/adapters/flags"
	"github.com/plazasales/storefront/internal/adapters/http/handlers"
	"github.com/plazasales/storefront/internal/adapters/recaptcha"
	"github.com/plazasales/storefront/internal/adapters/specsheet"
	"github.com/plazasales/storefront/internal/adapters/storage"
	"github.com/plazasales/storefront/internal/adapters/visitor"
	"github.com/plazasales/storefront/internal/app"
	"github.com/plazasales/storefront/internal/platform/config"
	"github.com/plazasales/storefront/internal/platform/logging"
	"github.com/plazasales/storefront/internal/platform/telemetry"
	"github.com/plazasales/storefront/internal/ports"
)

// healthCheckTimeout bounds each readiness check.
const healthCheckTimeout = 3 * time.Second

func loadConfig(profile string) (*config.Config, error) {
	cfg, err := config.Load(profile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	return logger
}

// visitorStore opens the Postgres store when a DSN is configured and falls
// back to the in-process store otherwise. The returned closer is never nil.
func visitorStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ports.VisitorStore, func() error, error) {
	if cfg.Database.DSN == "" {
		logger.Warn("no database configured, visitor state is kept in memory")
		return visitor.NewMemoryStore(), func() error { return nil }, nil
	}

	db, err := visitor.OpenPostgres(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("opening visitor database: %w", err)
	}

	if cfg.Database.MigrateOnStart {
		if _, err := visitor.Migrate(ctx, db, logger); err != nil {
			return nil, nil, errors.Join(fmt.Errorf("migrating visitor database: %w", err), db.Close())
		}
	}

	return visitor.NewPostgresStore(db), db.Close, nil
}

// fileStore connects the attachment bucket, or returns the disabled store.
func fileStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ports.FileStore, error) {
	if !cfg.Storage.Enabled {
		logger.Warn("attachment storage disabled, career applications will be rejected")
		return storage.Disabled{}, nil
	}

	store, err := storage.NewMinIO(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("creating storage client: %w", err)
	}

	if err := store.EnsureBucket(ctx); err != nil {
		// The bucket may come up later; readiness reports it meanwhile.
		logger.Error("attachment bucket unavailable", slog.Any("error", err))
	}

	return store, nil
}

func newCaptcha(cfg *config.Config, logger *slog.Logger) (*recaptcha.Verifier, error) {
	var client *clients.Client

	if cfg.Recaptcha.Enabled {
		c, err := clients.New(&clients.Config{
			BaseURL:     cfg.Recaptcha.VerifyURL,
			ServiceName: "recaptcha",
			Timeout:     cfg.Client.Timeout,
			Retry:       cfg.Client.Retry,
			Circuit:     cfg.Client.CircuitBreaker,
			Transport:   cfg.Client.Transport,
			Logger:      logger,
		})
		if err != nil {
			return nil, fmt.Errorf("creating recaptcha client: %w", err)
		}

		client = c
	}

	return recaptcha.New(cfg.Recaptcha, client, logger)
}

// server holds everything serve needs after wiring.
type server struct {
	health     *ports.DefaultHealthRegistry
	catalog    *handlers.CatalogHandler
	brands     *handlers.BrandHandler
	blogs      *handlers.BlogHandler
	careers    *handlers.CareerHandler
	submission *handlers.SubmissionHandler
	ads        *handlers.AdHandler
	seo        *handlers.SEOHandler
	close      func() error
}

// wire builds the adapters, services and handlers.
func wire(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*server, error) {
	health := ports.NewHealthRegistry(healthCheckTimeout)

	backendClient, err := clients.New(&clients.Config{
		BaseURL:     cfg.Services.Backend.BaseURL,
		ServiceName: cfg.Services.Backend.Name,
		Timeout:     cfg.Client.Timeout,
		Retry:       cfg.Client.Retry,
		Circuit:     cfg.Client.CircuitBreaker,
		Transport:   cfg.Client.Transport,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating backend client: %w", err)
	}

	backend := acl.NewBackend(backendClient, logger)

	captcha, err := newCaptcha(cfg, logger)
	if err != nil {
		return nil, err
	}

	files, err := fileStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	visitors, closeVisitors, err := visitorStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	for _, c := range []any{backend, files, visitors} {
		checker, ok := c.(ports.HealthChecker)
		if !ok {
			continue
		}

		if err := health.Register(checker); err != nil {
			return nil, errors.Join(fmt.Errorf("registering health check: %w", err), closeVisitors())
		}
	}

	metrics, err := telemetry.NewStorefrontMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("registering metrics: %w", err), closeVisitors())
	}

	svcCfg := &app.ServiceConfig{
		Logger:  logger,
		Metrics: metrics,
		SiteURL: cfg.Site.BaseURL,
	}
	featureFlags := flags.NewStatic(cfg.Features)

	catalog := app.NewCatalogService(app.CatalogDeps{
		Catalog: backend,
		Brands:  backend,
		Blogs:   backend,
		Ads:     backend,
		SEO:     backend,
		Flags:   featureFlags,
		Sheets:  specsheet.New(),
	}, svcCfg)

	careers := app.NewCareerService(app.CareerDeps{
		Careers:   backend,
		Visitors:  visitors,
		Captcha:   captcha,
		Files:     files,
		ObjectKey: storage.ApplicationKey,
	}, app.UploadPolicy{
		MaxSizeMB:         cfg.Uploads.MaxSizeMB,
		AllowedExtensions: cfg.Uploads.AllowedExtensions,
		PresignTTL:        cfg.Storage.PresignTTL,
	}, svcCfg)

	submissions := app.NewSubmissionService(app.SubmissionDeps{
		Submissions: backend,
		Captcha:     captcha,
		Visitors:    visitors,
		Flags:       featureFlags,
	}, cfg.Site.NewsletterPromptDelay, svcCfg)

	return &server{
		health:     health,
		catalog:    handlers.NewCatalogHandler(catalog),
		brands:     handlers.NewBrandHandler(app.NewBrandService(backend, svcCfg)),
		blogs:      handlers.NewBlogHandler(app.NewBlogService(backend, backend, svcCfg)),
		careers:    handlers.NewCareerHandler(careers),
		submission: handlers.NewSubmissionHandler(submissions),
		ads:        handlers.NewAdHandler(app.NewAdService(backend, captcha, svcCfg)),
		seo:        handlers.NewSEOHandler(app.NewSEOService(backend, svcCfg)),
		close:      closeVisitors,
	}, nil
}

// openDatabase is used by migrate, which needs the raw pool.
func openDatabase(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	if cfg.Database.DSN == "" {
		return nil, errors.New("database.dsn is not configured; nothing to migrate")
	}

	return visitor.OpenPostgres(ctx, cfg.Database)
}
