// Package server provides the HTTP server and routing for Bazaar.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/aristath/bazaar/internal/di"
	analysishandlers "github.com/aristath/bazaar/internal/modules/analysis/handlers"
	derivativeshandlers "github.com/aristath/bazaar/internal/modules/derivatives/handlers"
	fundshandlers "github.com/aristath/bazaar/internal/modules/funds/handlers"
	markethandlers "github.com/aristath/bazaar/internal/modules/market/handlers"
	overviewhandlers "github.com/aristath/bazaar/internal/modules/overview/handlers"
	portfoliohandlers "github.com/aristath/bazaar/internal/modules/portfolio/handlers"
	settingshandlers "github.com/aristath/bazaar/internal/modules/settings/handlers"
	universehandlers "github.com/aristath/bazaar/internal/modules/universe/handlers"
)

// Config holds server configuration
type Config struct {
	Log       zerolog.Logger
	Port      int
	DevMode   bool
	Container *di.Container
}

// Server represents the HTTP server
type Server struct {
	router         *chi.Mux
	server         *http.Server
	log            zerolog.Logger
	port           int
	container      *di.Container
	systemHandlers *SystemHandlers
	ticksHandler   *TicksStreamHandler
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		log:       cfg.Log.With().Str("component", "server").Logger(),
		port:      cfg.Port,
		container: cfg.Container,
		systemHandlers: NewSystemHandlers(
			cfg.Container.Databases(),
			cfg.Container.Scheduler,
			cfg.Container.BackupService,
			cfg.Container.EventBus,
			cfg.Log,
		),
		ticksHandler: NewTicksStreamHandler(cfg.Container.EventBus, cfg.Container.MarketService, cfg.Log),
	}

	s.setupMiddleware()
	s.setupRoutes(cfg.DevMode)

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 0, // the tick stream holds connections open
		IdleTimeout:  120 * time.Second,
	}

	return s
}

// Router returns the configured router
func (s *Server) Router() http.Handler {
	return s.router
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
}

// setupRoutes configures all routes
func (s *Server) setupRoutes(devMode bool) {
	s.router.Get("/health", s.handleHealth)

	c := s.container
	log := s.log

	s.router.Route("/api", func(r chi.Router) {
		// The WebSocket upgrade must stay outside the timeout and compression middleware
		r.Get("/stream/ticks", s.ticksHandler.ServeHTTP)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))
			if !devMode {
				r.Use(middleware.Compress(5))
			}

			universehandlers.NewHandler(c.UniverseService, log).RegisterRoutes(r)
			analysishandlers.NewHandler(c.AnalysisService, log).RegisterRoutes(r)
			markethandlers.NewHandler(c.MarketService, log).RegisterRoutes(r)
			portfoliohandlers.NewHandler(c.PortfolioService, log).RegisterRoutes(r)
			derivativeshandlers.NewHandler(c.DerivativesService, log).RegisterRoutes(r)
			fundshandlers.NewHandler(c.FundsService, log).RegisterRoutes(r)
			settingshandlers.NewHandler(c.SettingsService, log).RegisterRoutes(r)
			overviewhandlers.NewHandler(c.OverviewService, log).RegisterRoutes(r)

			s.systemHandlers.RegisterRoutes(r)
		})
	})
}

// handleHealth reports liveness and database reachability
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	databases := make(map[string]string)
	for _, db := range s.container.Databases() {
		if db == nil {
			continue
		}
		if err := db.QuickCheck(ctx); err != nil {
			databases[db.Name()] = "unreachable"
			status = http.StatusServiceUnavailable
			continue
		}
		databases[db.Name()] = "ok"
	}

	state := "healthy"
	if status != http.StatusOK {
		state = "degraded"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    state,
		"databases": databases,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Int("port", s.port).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
