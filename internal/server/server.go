// Package server exposes the analysis pipeline over HTTP. The routes mirror
// the service's original surface: a liveness probe, the analyze endpoint,
// and the supported-pattern listing.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/algolens/algolens/internal/config"
	"github.com/algolens/algolens/internal/engine"
)

// Server owns the HTTP listener and its middleware chain.
type Server struct {
	cfg      config.ServerConfig
	analyzer *engine.Analyzer
	logger   *zap.Logger
	limiter  *rate.Limiter
}

// New builds a Server around an Analyzer.
func New(cfg config.ServerConfig, analyzer *engine.Analyzer, logger *zap.Logger) *Server {
	return &Server{
		cfg:      cfg,
		analyzer: analyzer,
		logger:   logger.Named("server"),
		limiter:  rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
	}
}

// Router assembles the gin engine with the full middleware chain.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(
		gin.Recovery(),
		RequestID(),
		RequestLogger(s.logger),
		CORS(s.cfg.CORSAllowOrigins),
		RateLimit(s.limiter),
	)

	router.GET("/health", s.handleHealth)

	api := router.Group("/api")
	{
		api.POST("/analyze", s.handleAnalyze)
		api.GET("/patterns", s.handlePatterns)
	}
	return router
}

// Run serves until the context is canceled, then drains connections within
// the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr(),
		Handler:      s.Router(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
