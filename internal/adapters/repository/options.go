// Package repository implements the per-character movelist cache.
package repository

import "time"

// Option applies a configuration option to the MovelistCache.
type Option func(*MovelistCache)

// WithTTL sets the entry expiry measured from fetch completion.
func WithTTL(ttl time.Duration) Option {
	return func(c *MovelistCache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithClock injects the time source, so tests can control expiry without
// real time.
func WithClock(now func() time.Time) Option {
	return func(c *MovelistCache) {
		if now != nil {
			c.now = now
		}
	}
}
