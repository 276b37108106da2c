// Package model contains domain models passed between layers.
package model

// Move represents a single character action as fetched from the frame-data
// source. All fields are kept as raw text; parsing into semantic values is
// the frames package's job. A Move is constructed once per fetch and never
// mutated afterwards.
type Move struct {
	Command      string // input notation, e.g. "1,1,2"; duplicates are distinct entries
	HitLevel     string // high/mid/low/throw classification, opaque
	Damage       string // display-only, never parsed
	Startup      string // startup frames, e.g. "i10" or "17-18"
	OnBlock      string // frame advantage on block, e.g. "-31" or "+5"
	OnHit        string // frame advantage or outcome on hit, e.g. "Launch"
	OnCounterHit string // frame advantage or outcome on counter hit
	Notes        string // free-text properties, e.g. "Homing. Power crush"
}
