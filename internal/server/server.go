// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the search flow to the browser UI over HTTP.
// It forwards work to the BioSpace backend, normalizes the results, and
// keeps the current result set so detail and graph pages can refer to
// documents by ID.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/pdiddy/spaceper/internal/metrics"
	"github.com/pdiddy/spaceper/internal/upstream"
	"github.com/pdiddy/spaceper/internal/view"
	"github.com/pdiddy/spaceper/pkg/types"
)

// Backend is the subset of upstream.Client the handlers use.
type Backend interface {
	SearchDocuments(ctx context.Context, query string, opts upstream.SearchOptions) ([]types.DocumentView, error)
	GenerateTitle(ctx context.Context, text string) (*types.TitleResponse, error)
	GenerateInsight(ctx context.Context, query string, papers int) (types.Insight, error)
	FetchGraph(ctx context.Context, r upstream.GraphRequest) (types.Graph, error)
}

// Server wires handlers to a Backend and a result set.
type Server struct {
	cfg     types.Config
	backend Backend
	state   *view.State
	metrics *metrics.Metrics
	logger  *log.Logger
}

// New builds a Server. m may be nil.
func New(cfg types.Config, backend Backend, m *metrics.Metrics) *Server {
	cfg.ApplyDefaults()
	return &Server{
		cfg:     cfg,
		backend: backend,
		state:   view.NewState(),
		metrics: m,
		logger:  log.New(os.Stderr, "[HTTP] ", log.LstdFlags),
	}
}

// SetLogger replaces the request logger; nil silences it.
func (s *Server) SetLogger(l *log.Logger) { s.logger = l }

// State returns the current result set.
func (s *Server) State() *view.State { return s.state }

// Router builds the gin engine with middleware and routes.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		SendError(c, http.StatusInternalServerError, ErrorCodeInternalError, "Internal server error", false)
	}))
	router.Use(RequestIDMiddleware())
	router.Use(LoggingMiddleware(s.logger))
	router.Use(MetricsMiddleware(s.metrics))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     s.cfg.Server.AllowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Accept", RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", s.handleHealth)
	router.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	api := router.Group("/api")
	api.Use(RequestSizeLimitMiddleware(s.cfg.Server.MaxBodyBytes))
	{
		api.POST("/search", s.handleSearch)
		api.GET("/results", s.handleResults)
		api.GET("/documents/:id", s.handleDocument)
		api.GET("/documents/:id/graph", s.handleGraph)
		api.POST("/title", s.handleTitle)
		api.POST("/insight", s.handleInsight)
	}
	return router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	gin.SetMode(s.cfg.Server.Mode)
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[HTTP] listening on %s", s.cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listening on %s: %w", s.cfg.Server.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("[HTTP] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
