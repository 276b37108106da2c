// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pena92022/Tekken/internal/adapters/repository"
	service "github.com/pena92022/Tekken/internal/app"
	"github.com/pena92022/Tekken/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Build derives the matchup context for player vs opponent.
	Build(ctx context.Context, playerName, opponentName string) (*service.MatchupContext, error)

	// Moves returns the raw move list for one character.
	Moves(ctx context.Context, displayName string) ([]model.Move, error)

	// ClearCache evicts one character, or everything when the name is empty.
	ClearCache(displayName string) error
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	matchupHandler *MatchupHandler
	movesHandler   *MovesHandler
	cacheHandler   *CacheHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(statsProvider),
		matchupHandler: NewMatchupHandler(deps),
		movesHandler:   NewMovesHandler(deps),
		cacheHandler:   NewCacheHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/matchup", MetricsMiddleware(s.matchupHandler.HandleGetMatchup, "matchup"))
	mux.HandleFunc("/moves/", MetricsMiddleware(s.movesHandler.HandleGetMoves, "moves"))
	mux.HandleFunc("/cache/clear", MetricsMiddleware(s.cacheHandler.HandleClearCache, "cache_clear"))
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

// writeDomainError translates service-layer sentinel errors into HTTP
// responses. Unrecognized errors become a 500.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrResolution):
		writeError(w, http.StatusNotFound, "unknown_character", err)
	case errors.Is(err, repository.ErrDataEmpty):
		writeError(w, http.StatusNotFound, "movelist_empty", err)
	case errors.Is(err, repository.ErrFetch):
		writeError(w, http.StatusBadGateway, "upstream_failure", err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusGatewayTimeout, "timeout", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
