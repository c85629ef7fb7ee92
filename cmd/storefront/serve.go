package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/plazasales/storefront/internal/adapters/http"
	"github.com/plazasales/storefront/internal/adapters/http/handlers"
	"github.com/plazasales/storefront/internal/adapters/visitor"
	"github.com/plazasales/storefront/internal/platform/telemetry"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the storefront API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), opts.profile)
		},
	}
}

func serve(ctx context.Context, profile string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(profile)
	if err != nil {
		return err
	}

	logger := newLogger(cfg)

	logger.Info("starting storefront",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		Protocol:     cfg.Telemetry.Protocol,
		Insecure:     cfg.Telemetry.Insecure,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
		Logger:       logger,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	tokens, err := visitor.NewTokens(cfg.Visitor.Secret, cfg.Visitor.TTL)
	if err != nil {
		return fmt.Errorf("creating visitor tokens: %w", err)
	}

	deps, err := wire(ctx, cfg, logger)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := deps.close(); closeErr != nil {
			logger.Error("closing visitor store", slog.Any("error", closeErr))
		}
	}()

	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)

	srv := http.New(&cfg.Server, logger)

	routerCfg := http.NewDefaultRouterConfig(logger, cfg, tokens, handlers.NewHealthHandler(deps.health, buildInfo))
	routerCfg.Catalog = deps.catalog
	routerCfg.Brands = deps.brands
	routerCfg.Blogs = deps.blogs
	routerCfg.Careers = deps.careers
	routerCfg.Submission = deps.submission
	routerCfg.Ads = deps.ads
	routerCfg.SEO = deps.seo

	http.SetupRouter(srv.Engine(), routerCfg)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("storefront api: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
