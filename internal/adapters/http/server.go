// Package http assembles the storefront API: the Gin engine, its middleware
// chain and the route table.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/plazasales/storefront/internal/platform/config"
)

// Server runs the Gin engine on a plain http.Server.
type Server struct {
	engine *gin.Engine
	srv    *http.Server
	cfg    config.ServerConfig
	logger *slog.Logger

	bound chan struct{}
	addr  string
}

// New prepares a server for cfg. Routes go on Engine before Run.
func New(cfg *config.ServerConfig, logger *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.ContextWithFallback = true

	return &Server{
		engine: engine,
		srv: &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler:           engine,
			ReadHeaderTimeout: cfg.ReadTimeout,
			ReadTimeout:       cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
		cfg:    *cfg,
		logger: logger,
		bound:  make(chan struct{}),
	}
}

// Engine is where routes and middleware are registered.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Bound is closed once Run has a listener. Addr is valid after that.
func (s *Server) Bound() <-chan struct{} {
	return s.bound
}

// Addr is the listening address, with the real port when cfg.Port was 0.
func (s *Server) Addr() string {
	select {
	case <-s.bound:
		return s.addr
	default:
		return s.srv.Addr
	}
}

// Run serves until ctx is cancelled or serving fails, then drains in-flight
// requests for up to ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	ln, err := new(net.ListenConfig).Listen(ctx, "tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}

	s.addr = ln.Addr().String()
	close(s.bound)

	s.logger.Info("storefront api listening",
		slog.String("addr", s.addr),
		slog.Duration("request_timeout", s.cfg.RequestTimeout),
		slog.Int64("max_request_size", s.cfg.MaxRequestSize),
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownTimeout)
		defer cancel()

		s.logger.Info("draining storefront api", slog.Duration("timeout", s.cfg.ShutdownTimeout))

		if err := s.srv.Shutdown(drainCtx); err != nil {
			return fmt.Errorf("draining connections: %w", err)
		}

		s.logger.Info("storefront api stopped")

		return nil
	})

	return g.Wait()
}
