package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// gamesRequest mirrors the body of POST /api/games.
type gamesRequest struct {
	TeamNames []string `json:"team_names" validate:"required,min=1,dive,required"`
}

// GamesHandler handles game listing requests.
type GamesHandler struct {
	deps     Dependencies
	validate *validator.Validate
	maxTeams int
}

// NewGamesHandler creates a new games handler.
func NewGamesHandler(deps Dependencies, validate *validator.Validate, maxTeams int) *GamesHandler {
	return &GamesHandler{deps: deps, validate: validate, maxTeams: maxTeams}
}

// HandleGames handles POST /api/games requests.
func (h *GamesHandler) HandleGames(w http.ResponseWriter, r *http.Request) {
	const op = "api.games"

	var req gamesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if len(req.TeamNames) > h.maxTeams {
		writeError(w, http.StatusBadRequest, "too_many_teams", WrapKind(op, ErrBadRequest, fmt.Errorf("at most %d team names per request", h.maxTeams)))
		return
	}

	games, err := h.deps.Games(r.Context(), req.TeamNames)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, games)
}
