package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	service "github.com/osmanp/streampack/internal/app"
	"github.com/osmanp/streampack/internal/domain/rank"
)

// packagesRequest mirrors the body of POST /api/streaming-packages.
type packagesRequest struct {
	TeamNames  []string `json:"team_names" validate:"required,min=1,dive,required"`
	PriceLimit *int     `json:"price_limit" validate:"omitempty"`
}

// PackagesHandler handles streaming-package recommendation requests.
type PackagesHandler struct {
	deps     Dependencies
	validate *validator.Validate
	maxTeams int
}

// NewPackagesHandler creates a new packages handler.
func NewPackagesHandler(deps Dependencies, validate *validator.Validate, maxTeams int) *PackagesHandler {
	return &PackagesHandler{deps: deps, validate: validate, maxTeams: maxTeams}
}

// HandleStreamingPackages handles POST /api/streaming-packages requests.
func (h *PackagesHandler) HandleStreamingPackages(w http.ResponseWriter, r *http.Request) {
	const op = "api.streaming_packages"

	var req packagesRequest
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

	resp, err := h.deps.StreamingPackages(r.Context(), req.TeamNames, req.PriceLimit)
	if err != nil {
		switch {
		case errors.Is(err, rank.ErrInvalidPriceCeiling):
			writeError(w, http.StatusBadRequest, "invalid_price_limit", WrapKind(op, ErrBadRequest, err))
		case errors.Is(err, service.ErrUnknownGame):
			writeError(w, http.StatusUnprocessableEntity, "data_integrity", Wrap(op, err))
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		}
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
