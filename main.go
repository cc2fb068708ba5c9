package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal("Error loading configuration: ", err)
	}

	zl, err := newLogger(cfg.LogJSON, cfg.LogDebug)
	if err != nil {
		log.Fatal("Error building logger: ", err)
	}
	defer zl.Sync()
	logger = zl.Sugar()

	jwtSecret = []byte(cfg.ServiceSecret)

	if err := initDB(cfg.DatabaseURL); err != nil {
		logger.Fatalw("cannot reach the database", "error", err)
	}

	// The response cache is optional; a missing or unreachable Redis only
	// disables it.
	var cache *matchCache
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		cache, err = newMatchCache(ctx, cfg.RedisURL, time.Duration(cfg.CacheTTLSeconds)*time.Second)
		cancel()
		if err != nil {
			logger.Warnw("redis unavailable, response cache disabled", "error", err)
			cache = nil
		}
	}

	mux := http.NewServeMux()
	mux.Handle("/api/ml/match", matchHandler(db, cfg, cache))
	mux.Handle("/health", healthHandler(db))
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", rootHandler())

	logger.Infow("starting ml matching service",
		"addr", cfg.Addr,
		"inactive_days", cfg.InactiveDays,
		"pool_limit", cfg.PoolLimit,
		"cache", cache != nil,
	)
	if err := http.ListenAndServe(cfg.Addr, withCORS(mux, cfg.AllowedOrigins)); err != nil {
		logger.Fatalw("server stopped", "error", err)
	}
}
