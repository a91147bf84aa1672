// Package server provides the HTTP API service for tutormatch.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/lcc360/tutormatch/internal/config"
	"github.com/lcc360/tutormatch/internal/db"
	"github.com/lcc360/tutormatch/internal/matching"
)

// Service configuration constants
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// MaxRequestBody caps request body size. Profiles are small documents;
	// anything near this limit is malformed or hostile.
	MaxRequestBody = 1 << 20 // 1 MiB
)

// Service is the HTTP API service orchestrator.
type Service struct {
	version string
	config  *config.Config

	store  db.Store
	engine *matching.Engine

	router    *chi.Mux
	server    *http.Server
	startTime time.Time
}

// NewService creates a new API service wired to the given store.
func NewService(version string, cfg *config.Config, store db.Store) *Service {
	svc := &Service{
		version:   version,
		config:    cfg,
		store:     store,
		engine:    matching.NewEngine(matching.NewWeightsProvider(store)),
		router:    chi.NewRouter(),
		startTime: time.Now(),
	}

	svc.setupMiddleware()
	svc.setupRoutes()

	return svc
}

// setupMiddleware configures HTTP middleware.
func (s *Service) setupMiddleware() {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(DefaultHTTPTimeout))
	s.router.Use(middleware.RealIP)
	s.router.Use(RequestID)
	s.router.Use(RequestLogger)
	s.router.Use(SecurityHeaders)
	s.router.Use(MaxBodySize(MaxRequestBody))
	s.router.Use(RequireJSONContentType)
}

// setupRoutes configures HTTP routes.
func (s *Service) setupRoutes() {
	s.router.Get("/api/health", s.handleHealth)

	// Matching engine
	s.router.Post("/api/matching/find-match", s.handleFindMatch)
	s.router.Get("/api/matching/recommendations", s.handleRecommendations)
	s.router.Get("/api/matching/projected-revenue", s.handleProjectedRevenue)

	// Weight configuration
	s.router.Get("/api/config/weights", s.handleGetWeights)
	s.router.Put("/api/config/weights", s.handleUpdateWeights)
	s.router.Post("/api/config/weights/reset", s.handleResetWeights)
	s.router.Get("/api/config/weights/history", s.handleWeightsHistory)

	// Student records
	s.router.Route("/api/students", func(r chi.Router) {
		r.Get("/", s.handleListStudents)
		r.Post("/", s.handleCreateStudent)
		r.Get("/active", s.handleListActiveStudents)
		r.Get("/{id}", s.handleGetStudent)
		r.Put("/{id}", s.handleUpdateStudent)
		r.Delete("/{id}", s.handleDeleteStudent)
	})

	// Tutor records
	s.router.Route("/api/tutors", func(r chi.Router) {
		r.Get("/", s.handleListTutors)
		r.Post("/", s.handleCreateTutor)
		r.Get("/active", s.handleListActiveTutors)
		r.Get("/{id}", s.handleGetTutor)
		r.Put("/{id}", s.handleUpdateTutor)
		r.Delete("/{id}", s.handleDeleteTutor)
	})
}

// Router exposes the configured router, mainly for tests.
func (s *Service) Router() http.Handler {
	return s.router
}

// Start begins serving HTTP requests. It returns once the listener is
// running; server errors after startup are logged.
func (s *Service) Start() error {
	s.server = &http.Server{
		Addr:              s.config.ListenAddr(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("HTTP server error")
		}
	}()

	log.Info().
		Str("addr", s.config.ListenAddr()).
		Str("version", s.version).
		Msg("API server started")

	return nil
}

// Shutdown gracefully stops the HTTP server and closes the store.
func (s *Service) Shutdown(ctx context.Context) error {
	if s.server != nil {
		if err := s.server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("HTTP server shutdown error")
		}
	}

	if err := s.store.Close(); err != nil {
		log.Error().Err(err).Msg("Database close error")
	}

	log.Info().Msg("API service shutdown complete")
	return nil
}
