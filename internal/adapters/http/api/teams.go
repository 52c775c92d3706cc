package api

import "net/http"

// TeamsHandler handles team listing requests.
type TeamsHandler struct {
	deps Dependencies
}

// NewTeamsHandler creates a new teams handler.
func NewTeamsHandler(deps Dependencies) *TeamsHandler {
	return &TeamsHandler{deps: deps}
}

// HandleTeams handles GET /api/teams requests.
func (h *TeamsHandler) HandleTeams(w http.ResponseWriter, r *http.Request) {
	const op = "api.teams"

	teams, err := h.deps.Teams(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	if teams == nil {
		teams = []string{}
	}
	writeJSON(w, http.StatusOK, teams)
}
