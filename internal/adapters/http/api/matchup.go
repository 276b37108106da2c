// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"

	service "github.com/pena92022/Tekken/internal/app"
)

// MatchupDependencies defines the interface for matchup operations.
type MatchupDependencies interface {
	Build(ctx context.Context, playerName, opponentName string) (*service.MatchupContext, error)
}

// MatchupHandler handles matchup requests.
type MatchupHandler struct {
	deps MatchupDependencies
}

// NewMatchupHandler creates a new matchup handler.
func NewMatchupHandler(deps MatchupDependencies) *MatchupHandler {
	return &MatchupHandler{deps: deps}
}

// HandleGetMatchup handles GET /matchup?player=NAME&opponent=NAME requests.
func (h *MatchupHandler) HandleGetMatchup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	player := strings.TrimSpace(r.URL.Query().Get("player"))
	opponent := strings.TrimSpace(r.URL.Query().Get("opponent"))
	if player == "" || opponent == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	mc, err := h.deps.Build(r.Context(), player, opponent)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMatchupView(mc))
}
