package service

import "errors"

// Sentinel kinds for matchup build errors.
var (
	// ErrResolution marks a display name that maps to no usable
	// character identifier.
	ErrResolution = errors.New("unknown character name")
)
