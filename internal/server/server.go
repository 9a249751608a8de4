package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/veloplan/veloplan/citygraph"
	"github.com/veloplan/veloplan/internal/config"
	"github.com/veloplan/veloplan/pathfind"
	"github.com/veloplan/veloplan/placement"
)

// Server is the dashboard backend. It owns no data beyond the graph it is
// constructed with.
type Server struct {
	cfg    *config.Config
	graph  *citygraph.Graph
	finder *pathfind.Finder
	opt    *placement.Optimizer
	log    *slog.Logger
	http   *http.Server
}

// New builds a Server around g. The logger must not be nil.
func New(cfg *config.Config, g *citygraph.Graph, log *slog.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		graph:  g,
		finder: pathfind.NewFinder(g),
		opt:    placement.NewOptimizer(g),
		log:    log,
	}
	s.http = &http.Server{
		Addr:         cfg.Server.ListenAddr,
		Handler:      s.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Router wires the API routes. Exposed separately so tests can drive the
// handlers through httptest without binding a socket.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/network", s.handleNetwork).Methods(http.MethodGet)
	api.HandleFunc("/route", s.handleRoute).Methods(http.MethodPost)
	api.HandleFunc("/stations/plan", s.handlePlan).Methods(http.MethodPost)
	api.HandleFunc("/export/geojson", s.handleGeoJSON).Methods(http.MethodGet)
	api.HandleFunc("/export/csv", s.handleCSV).Methods(http.MethodGet)
	return r
}

// Start serves until Shutdown is called or the listener fails.
func (s *Server) Start() error {
	s.log.Info("server listening", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("server shutting down")
	return s.http.Shutdown(ctx)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
