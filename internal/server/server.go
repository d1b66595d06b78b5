// Package server provides the HTTP API for yomu.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/hyperjump/yomu/internal/config"
	"github.com/hyperjump/yomu/internal/models"
	"github.com/hyperjump/yomu/internal/storage"
)

// defaultMaxBodyBytes bounds request bodies of the annotate endpoints.
const defaultMaxBodyBytes = 32 << 20

// PageAnnotator annotates one window of a document.
type PageAnnotator interface {
	AnnotatePage(ctx context.Context, text string, start, size int) (*models.AnnotationPage, error)
}

// Server is the HTTP server for the yomu API.
type Server struct {
	annotator PageAnnotator
	store     storage.Store
	config    *config.Config
	logger    *zap.Logger
	server    *http.Server

	maxBodyBytes int64
}

// NewServer creates a server with the given dependencies.
func NewServer(annotator PageAnnotator, store storage.Store, cfg *config.Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		annotator:    annotator,
		store:        store,
		config:       cfg,
		logger:       logger,
		maxBodyBytes: defaultMaxBodyBytes,
	}
	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the API router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/annotate", s.handleAnnotate)
		r.Post("/annotate/raw", s.handleAnnotateRaw)
		r.Get("/kanji/{char}", s.handleKanji)
		r.Get("/status", s.handleStatus)
	})
	r.Get("/health", s.handleHealth)
	return r
}

// Start starts the HTTP server and blocks until it stops.
// After Stop it returns http.ErrServerClosed.
func (s *Server) Start() error {
	s.logger.Info("Starting server", zap.String("addr", s.server.Addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server. It is safe to call before or concurrently with Start.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
