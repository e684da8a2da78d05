// Package server serves the inflation analysis over HTTP.
//
// The server keeps no state between requests: every request reads the input
// files and runs the pipeline again, so an updated dataset is picked up by the
// next request.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/etnz/inflation"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ServiceName         = "inflation-impact-analysis"
	ServiceVersion      = "1.0.0"
	RequestIDContextKey = "request_id"
	RequestIDHeaderKey  = "X-Request-ID"
	ShutdownTimeout     = 5 * time.Second
)

// Server runs the analysis of one pair of datasets.
type Server struct {
	sources inflation.Sources
	pair    inflation.Pair
	logger  *zap.Logger
}

// New returns a server analysing src for pair. A nil logger discards logs.
func New(src inflation.Sources, pair inflation.Pair, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{sources: src, pair: pair, logger: logger}
}

// Routes returns the gin engine serving the report and the API.
func (s *Server) Routes() *gin.Engine {
	router := gin.New()

	router.Use(requestIDMiddleware())
	router.Use(loggerMiddleware(s.logger))
	router.Use(gin.Recovery())

	router.GET("/", s.Report)
	router.GET("/api/analysis", s.Analysis)
	router.GET("/api/merged", s.Merged)
	router.GET("/health", s.HealthCheck)

	return router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("serving analysis", zap.String("addr", addr),
		zap.String("inflation_file", s.sources.InflationFile),
		zap.String("rates_file", s.sources.RatesFile))

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down", zap.String("addr", addr))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
