// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/pena92022/Tekken/internal/domain/model"
	"github.com/pena92022/Tekken/internal/domain/types"
)

// MovesDependencies defines the interface for move list operations.
type MovesDependencies interface {
	Moves(ctx context.Context, displayName string) ([]model.Move, error)
}

// MovesHandler handles raw move list requests.
type MovesHandler struct {
	deps MovesDependencies
}

// NewMovesHandler creates a new moves handler.
func NewMovesHandler(deps MovesDependencies) *MovesHandler {
	return &MovesHandler{deps: deps}
}

// HandleGetMoves handles GET /moves/{character} requests.
func (h *MovesHandler) HandleGetMoves(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Extract path parameter after /moves/
	name := strings.TrimPrefix(r.URL.Path, "/moves/")
	if name == "" || strings.Contains(name, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	moves, err := h.deps.Moves(r.Context(), name)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	views := make([]types.MoveView, len(moves))
	for i, m := range moves {
		views[i] = toMoveView(m)
	}
	writeJSON(w, http.StatusOK, views)
}
