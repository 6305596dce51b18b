// Package server exposes the aggregated portfolio over a JSON HTTP API.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/showcasehq/showcase/pkg/portfolio"
)

// ReadmeSource fetches a repository's rendered README. Implemented by
// github.Client.
type ReadmeSource interface {
	FetchReadmeHTML(ctx context.Context, owner, repo string) (string, bool)
}

// Server wires the aggregator and the README source into an HTTP handler.
type Server struct {
	svc     *portfolio.Service
	readmes ReadmeSource
	owner   string
	logger  *log.Logger

	httpServer *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// New creates a Server listening on addr.
func New(addr string, svc *portfolio.Service, readmes ReadmeSource, owner string, opts ...Option) *Server {
	s := &Server{
		svc:     svc,
		readmes: readmes,
		owner:   owner,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Router builds the chi router with all API routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", s.handleProjects)
		r.Get("/projects/{slug}", s.handleProject)
		r.Get("/categories", s.handleCategories)
		r.Get("/stats", s.handleStats)
		r.Get("/menu", s.handleMenu)
		r.Get("/repos/{repo}/readme", s.handleReadme)
	})

	return r
}

// ListenAndServe runs the server until the listener fails or Shutdown is
// called.
func (s *Server) ListenAndServe() error {
	s.logger.Info("http server listening", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
