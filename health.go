package main

import (
	"database/sql"
	"net/http"
	"time"
)

// HealthResponse is the /health payload.
type HealthResponse struct {
	Status            string `json:"status"`
	Service           string `json:"service"`
	Timestamp         string `json:"timestamp"`
	DatabaseConnected bool   `json:"database_connected"`
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		connected := db != nil && db.Ping() == nil
		writeJSON(w, http.StatusOK, HealthResponse{
			Status:            "healthy",
			Service:           "ml-matching",
			Timestamp:         time.Now().UTC().Format(time.RFC3339),
			DatabaseConnected: connected,
		})
	}
}

func rootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"service": "Circle ML Matching Service",
			"version": "1.0.0",
			"status":  "running",
			"endpoints": map[string]string{
				"health":  "/health",
				"metrics": "/metrics",
				"match":   "/api/ml/match",
			},
		})
	}
}
