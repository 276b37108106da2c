package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if TEKKEN_CONFIG is set
//  3. env (prefix TEKKEN_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("TEKKEN_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: TEKKEN_ADDR, TEKKEN_CACHE_TTL_MINUTES, ...
	// Underscores are preserved to match koanf tags on the struct.
	envProvider := env.Provider("TEKKEN_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "tekken_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	switch {
	case cfg.Addr == "":
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case cfg.SourceBaseURL == "":
		return nil, fmt.Errorf("%w: source_base_url must not be empty", ErrInvalidConfig)
	case cfg.CacheTTLMinutes <= 0:
		return nil, fmt.Errorf("%w: cache_ttl_minutes must be positive", ErrInvalidConfig)
	case cfg.FetchTimeoutSeconds <= 0:
		return nil, fmt.Errorf("%w: fetch_timeout_seconds must be positive", ErrInvalidConfig)
	}
	return &cfg, nil
}
