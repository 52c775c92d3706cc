// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/osmanp/streampack/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	// StreamingPackages computes ranked provider combinations for the teams'
	// games, optionally filtered by a price ceiling in whole currency units.
	StreamingPackages(ctx context.Context, teams []string, priceLimit *int) (types.StreamingPackagesResponse, error)

	// Games lists the games the given teams play.
	Games(ctx context.Context, teams []string) ([]types.Game, error)

	// Teams lists every team in the catalog.
	Teams(ctx context.Context) ([]string, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	packagesHandler *PackagesHandler
	gamesHandler    *GamesHandler
	teamsHandler    *TeamsHandler
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...ServerOption) *Server {
	s := settings{maxTeamNames: defaultMaxTeamNames}
	for _, opt := range opts {
		opt(&s)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	return &Server{
		packagesHandler: NewPackagesHandler(deps, validate, s.maxTeamNames),
		gamesHandler:    NewGamesHandler(deps, validate, s.maxTeamNames),
		teamsHandler:    NewTeamsHandler(deps),
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
	}
}

// Register attaches all HTTP routes to r. The routes live in their own group
// so the request-id middleware can be attached even when other routes were
// registered on the mux first.
func (s *Server) Register(_ context.Context, r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(RequestIDMiddleware)

		r.Route("/api", func(r chi.Router) {
			r.Method(http.MethodPost, "/streaming-packages", MetricsMiddleware(s.packagesHandler.HandleStreamingPackages, "streaming_packages"))
			r.Method(http.MethodPost, "/games", MetricsMiddleware(s.gamesHandler.HandleGames, "games"))
			r.Method(http.MethodGet, "/teams", MetricsMiddleware(s.teamsHandler.HandleTeams, "teams"))
		})
		r.Method(http.MethodGet, "/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
		r.Method(http.MethodGet, "/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	})
}

// defaultMaxTeamNames bounds the team_names list when no tighter cap is
// configured.
const defaultMaxTeamNames = 50

type settings struct {
	maxTeamNames int
}

// ServerOption applies a configuration option to the Server.
type ServerOption func(*settings)

// WithMaxTeamNames caps the team_names list accepted per request.
func WithMaxTeamNames(n int) ServerOption {
	return func(s *settings) {
		if n > 0 {
			s.maxTeamNames = n
		}
	}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
