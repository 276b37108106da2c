package repository

import "errors"

// Sentinel kinds for movelist cache errors.
var (
	// ErrFetch marks an unreachable source or structurally invalid payload.
	ErrFetch = errors.New("movelist fetch failed")
	// ErrDataEmpty marks a structurally valid but zero-length move list.
	// Kept distinct from ErrFetch so callers can choose degraded-mode
	// behavior instead of failing outright.
	ErrDataEmpty = errors.New("movelist empty")
)
