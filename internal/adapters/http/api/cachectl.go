// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strings"
)

// CacheDependencies defines the interface for cache control operations.
type CacheDependencies interface {
	ClearCache(displayName string) error
}

// CacheHandler handles cache control requests.
type CacheHandler struct {
	deps CacheDependencies
}

// NewCacheHandler creates a new cache handler.
func NewCacheHandler(deps CacheDependencies) *CacheHandler {
	return &CacheHandler{deps: deps}
}

type clearResponse struct {
	Status    string `json:"status"`
	Character string `json:"character,omitempty"`
}

// HandleClearCache handles POST /cache/clear?character=NAME requests. An
// absent character parameter clears every cached move list.
func (h *CacheHandler) HandleClearCache(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	name := strings.TrimSpace(r.URL.Query().Get("character"))

	if err := h.deps.ClearCache(name); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clearResponse{Status: "cleared", Character: name})
}
