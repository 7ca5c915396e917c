// Package httpserver assembles the gin engine and owns the HTTP
// listener lifecycle.
package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"payment-gateway/internal/config"
	infraauth "payment-gateway/internal/infrastructure/auth"
	"payment-gateway/internal/interfaces/httpserver/handlers"
	"payment-gateway/internal/interfaces/httpserver/middlewares"
	v1 "payment-gateway/internal/interfaces/httpserver/routes/v1"
)

// Server is the HTTP front of the gateway.
type Server struct {
	cfg  *config.Config
	log  zerolog.Logger
	http *http.Server
}

// New builds the engine, mounts middlewares, operational endpoints and
// the versioned API.
func New(cfg *config.Config, log zerolog.Logger, h *handlers.Handlers, tokens *infraauth.TokenManager) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), middlewares.CORS(), middlewares.Metrics())

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1.Register(engine, h, tokens)

	return &Server{
		cfg: cfg,
		log: log.With().Str("component", "httpserver").Logger(),
		http: &http.Server{
			Addr:    cfg.Addr(),
			Handler: engine,
		},
	}
}

// Run serves until the context is cancelled, then drains in-flight
// requests within the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.http.Addr).Msg("http server listening")
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
