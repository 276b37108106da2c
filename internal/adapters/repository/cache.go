// Package repository implements the per-character movelist cache.
//
// This is a TTL cache, not an eviction cache: entries expire a fixed
// duration after fetch completion, regardless of access. Concurrent misses
// for the same character share one upstream fetch via singleflight, and an
// abandoning caller does not cancel the in-flight fetch; the result still
// lands in the cache for the next caller.
package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pena92022/Tekken/internal/domain/model"
	"github.com/pena92022/Tekken/pkg/metrics"
	"golang.org/x/sync/singleflight"
)

// FetchFunc retrieves the raw move list for one canonical character id.
// The transport (and its timeout) belongs to the implementation.
type FetchFunc func(ctx context.Context, characterID string) ([]model.Move, error)

// MoveSource is the read interface consumed by the matchup builder.
type MoveSource interface {
	// Get returns the cached or freshly fetched move list for id.
	// Fails with ErrFetch or ErrDataEmpty.
	Get(ctx context.Context, characterID string) ([]model.Move, error)

	// Clear evicts one entry; idempotent on a missing key.
	Clear(characterID string)

	// ClearAll evicts every entry.
	ClearAll()

	// Count returns the number of cached characters.
	Count() int
}

const defaultTTL = 24 * time.Hour

// entry is one cached move list. Replaced wholesale on refetch, never
// partially updated.
type entry struct {
	moves     []model.Move
	fetchedAt time.Time
}

// MovelistCache implements MoveSource over an injected FetchFunc.
type MovelistCache struct {
	mu      sync.RWMutex
	entries map[string]*entry
	flight  singleflight.Group

	fetch FetchFunc
	ttl   time.Duration
	now   func() time.Time
}

// New creates a MovelistCache around fetch.
func New(fetch FetchFunc, opts ...Option) *MovelistCache {
	c := &MovelistCache{
		entries: make(map[string]*entry),
		fetch:   fetch,
		ttl:     defaultTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the move list for characterID, fetching on a miss or expired
// entry. Concurrent callers for the same id attach to a single in-flight
// fetch and observe its outcome. ctx bounds only this caller's wait: if it
// is cancelled the fetch keeps running and populates the cache on success.
func (c *MovelistCache) Get(ctx context.Context, characterID string) ([]model.Move, error) {
	if moves, ok := c.lookup(characterID); ok {
		metrics.RecordCacheHit()
		return moves, nil
	}
	metrics.RecordCacheMiss()

	// Detach the flight from the caller's cancellation; the fetch
	// implementation bounds its own transport timeout.
	fctx := context.WithoutCancel(ctx)
	ch := c.flight.DoChan(characterID, func() (any, error) {
		return c.fetchAndStore(fctx, characterID)
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("waiting for movelist %q: %w", characterID, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		moves, ok := res.Val.([]model.Move)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected flight result %T", ErrFetch, res.Val)
		}
		return moves, nil
	}
}

// lookup returns a fresh cached list, if any.
func (c *MovelistCache) lookup(characterID string) ([]model.Move, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[characterID]
	if !ok || c.now().Sub(e.fetchedAt) >= c.ttl {
		return nil, false
	}
	return e.moves, true
}

// fetchAndStore performs the single upstream fetch for a flight and caches
// structurally valid, non-empty results.
func (c *MovelistCache) fetchAndStore(ctx context.Context, characterID string) ([]model.Move, error) {
	start := time.Now()
	moves, err := c.fetch(ctx, characterID)
	metrics.ObserveFetchDuration(float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.RecordFetchError()
		return nil, fmt.Errorf("%w: %s: %v", ErrFetch, characterID, err)
	}
	if moves == nil {
		metrics.RecordFetchError()
		return nil, fmt.Errorf("%w: %s: missing move list", ErrFetch, characterID)
	}
	if len(moves) == 0 {
		// Valid shape, no data. Not cached so a later fetch can pick up
		// data the source did not have yet.
		metrics.RecordMovelistEmpty()
		return nil, fmt.Errorf("%w: %s", ErrDataEmpty, characterID)
	}

	c.mu.Lock()
	c.entries[characterID] = &entry{moves: moves, fetchedAt: c.now()}
	c.mu.Unlock()
	return moves, nil
}

// Clear evicts one entry. Safe to call for unknown ids.
func (c *MovelistCache) Clear(characterID string) {
	c.mu.Lock()
	delete(c.entries, characterID)
	c.mu.Unlock()
}

// ClearAll evicts every entry.
func (c *MovelistCache) ClearAll() {
	c.mu.Lock()
	c.entries = make(map[string]*entry)
	c.mu.Unlock()
}

// Count returns the number of cached characters, fresh or expired.
func (c *MovelistCache) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
