package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/stadtratwatch/ratsinfo/internal/engine"
)

// Config holds server configuration.
type Config struct {
	Port      int
	DataFile  string // path of the proposal CSV served by the API
	BatchSize int    // default page size of the applications listing
	AllowAll  bool   // allow all CORS origins (dev mode)
}

// Server is the ratsinfo query API server.
type Server struct {
	cfg        Config
	engine     *engine.Engine
	router     chi.Router
	httpServer *http.Server
}

// New creates a new server over the given query engine.
func New(cfg Config, eng *engine.Engine) *Server {
	if cfg.BatchSize < 1 {
		cfg.BatchSize = 20
	}
	s := &Server{cfg: cfg, engine: eng}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	registerRoutes(r, s.engine, s.cfg.DataFile, s.cfg.BatchSize)

	return r
}

// Router returns the chi router, e.g. for registering additional routes
// or for driving the server in tests.
func (s *Server) Router() chi.Router { return s.router }

// Engine returns the query engine.
func (s *Server) Engine() *engine.Engine { return s.engine }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("ratsinfo server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
