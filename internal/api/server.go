// Package api provides the HTTP server for fightclub.
// It exposes the dashboard read model as a REST API.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fightclub-net/fightclub/internal/app/dashboard"
	"github.com/fightclub-net/fightclub/internal/domain"
	"github.com/fightclub-net/fightclub/internal/health"
)

// Backend is what the API needs from the daemon.
type Backend interface {
	Projection() (*dashboard.Projection, error)
	SelectTheme(name string) (domain.Theme, error)
	Refresh(ctx context.Context) error
	HealthStatuses() ([]health.Status, bool)
}

// Server is the fightclub HTTP API server.
type Server struct {
	backend        Backend
	metricsEnabled bool
	corsOrigins    []string
}

// NewServer creates a new API server.
func NewServer(backend Backend) *Server {
	return &Server{backend: backend}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// SetCORSOrigins restricts CORS to the given origins. Empty means any.
func (s *Server) SetCORSOrigins(origins []string) { s.corsOrigins = origins }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(s.corsMiddleware)

	r.Get("/health", s.handleHealth)

	r.Get("/api/version", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"version": "0.1.0",
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/dashboard", s.handleDashboard)
		r.Get("/streak", s.handleStreak)
		r.Get("/missions", s.handleMissions)
		r.Get("/rewards", s.handleRewards)
		r.Get("/badges", s.handleBadges)
		r.Get("/egos", s.handleEgos)
		r.Get("/egos/{name}", s.handleEgo)
		r.Get("/synergy", s.handleSynergy)
		r.Get("/history", s.handleHistory)
		r.Get("/themes", s.handleThemes)
		r.Get("/theme", s.handleGetTheme)
		r.Put("/theme", s.handleSetTheme)
		r.Post("/refresh", s.handleRefresh)
	})

	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// decodeJSON decodes a request body into v.
func decodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}

// corsMiddleware adds CORS headers so the web dashboard can call the API.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := "*"
		if len(s.corsOrigins) > 0 {
			origin = ""
			got := r.Header.Get("Origin")
			for _, allowed := range s.corsOrigins {
				if allowed == got || allowed == "*" {
					origin = got
					break
				}
			}
		}
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, PUT, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
