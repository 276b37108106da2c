// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load layers file and env.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// SourceBaseURL is the frame-data API base, e.g. the wavu wiki mirror.
	SourceBaseURL string `koanf:"source_base_url"`

	// GameID selects the frame-data dialect served by the source.
	GameID string `koanf:"game_id"`

	// CacheTTLMinutes sets movelist cache expiry, measured from fetch
	// completion.
	CacheTTLMinutes int `koanf:"cache_ttl_minutes"`

	// FetchTimeoutSeconds bounds one upstream movelist request.
	FetchTimeoutSeconds int `koanf:"fetch_timeout_seconds"`

	// KeyMoveCap and PunishableCap bound the classified sets; they exist
	// to limit downstream report size, not for correctness.
	KeyMoveCap    int `koanf:"key_move_cap"`
	PunishableCap int `koanf:"punishable_cap"`

	// WindowCandidateCap bounds punishers listed per punish window.
	WindowCandidateCap int `koanf:"window_candidate_cap"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":9080",
		SourceBaseURL:       "https://wank.wavu.wiki",
		GameID:              "tekken8",
		CacheTTLMinutes:     24 * 60,
		FetchTimeoutSeconds: 10,
		KeyMoveCap:          20,
		PunishableCap:       15,
		WindowCandidateCap:  3,
	}
}
