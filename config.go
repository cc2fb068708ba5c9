package main

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all runtime configuration for the matching service.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8090".
	Addr string `koanf:"addr"`

	// DatabaseURL is the Postgres connection string for the profile store.
	DatabaseURL string `koanf:"database_url"`

	// RedisURL enables the match-response cache when non-empty.
	RedisURL string `koanf:"redis_url"`

	// ServiceSecret signs/verifies the HS256 service tokens callers present.
	ServiceSecret string `koanf:"service_secret"`

	// InactiveDays is the staleness window: candidates whose last_active is
	// older are excluded by the store before ranking.
	InactiveDays int `koanf:"inactive_days"`

	// PoolLimit caps the candidate pool fetched per request.
	PoolLimit int `koanf:"pool_limit"`

	// CacheTTLSeconds bounds how long a cached match response is served.
	CacheTTLSeconds int `koanf:"cache_ttl_seconds"`

	// AllowedOrigins lists origins the CORS wrapper echoes back.
	AllowedOrigins []string `koanf:"allowed_origins"`

	// LogJSON and LogDebug control the zap encoder and level.
	LogJSON  bool `koanf:"log_json"`
	LogDebug bool `koanf:"log_debug"`
}

func defaultConfig() *Config {
	return &Config{
		Addr:            ":8090",
		InactiveDays:    45,
		PoolLimit:       500,
		CacheTTLSeconds: 30,
	}
}

// loadConfig builds a Config by layering defaults, an optional YAML file and
// environment variables.
// Order of precedence (low -> high):
//  1. defaults
//  2. file (YAML) if MATCH_CONFIG is set
//  3. env (prefix MATCH_), e.g. MATCH_ADDR, MATCH_DATABASE_URL
func loadConfig() (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv("MATCH_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Map env keys like MATCH_POOL_LIMIT -> pool_limit (flat keys,
	// underscores preserved to match the koanf tags).
	envProvider := env.Provider("MATCH_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "match_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *defaultConfig()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.Addr == "" {
		return nil, errors.New("addr must not be empty")
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("database_url is required")
	}
	if cfg.ServiceSecret == "" {
		return nil, errors.New("service_secret is required")
	}
	if cfg.InactiveDays < 1 {
		return nil, errors.New("inactive_days must be a positive integer")
	}
	if cfg.PoolLimit < 1 {
		return nil, errors.New("pool_limit must be a positive integer")
	}
	return &cfg, nil
}
