package main

import (
	"database/sql"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// matchHandler implements POST /api/ml/match: parse the prompt, fetch the
// requester and a candidate pool snapshot, rank, respond. The engine itself
// has no failure modes; every error here comes from the boundary (bad input,
// unknown requester, store failure).
func matchHandler(db *sql.DB, cfg *Config, cache *matchCache) http.HandlerFunc {
	return authenticate(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "invalid_method")
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
		if err != nil {
			matchRequestsTotal.WithLabelValues("bad_request").Inc()
			writeError(w, http.StatusBadRequest, "invalid_body")
			return
		}

		var req MatchRequest
		if err := json.Unmarshal(body, &req); err != nil {
			matchRequestsTotal.WithLabelValues("bad_request").Inc()
			writeError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		if strings.TrimSpace(req.UserID) == "" {
			matchRequestsTotal.WithLabelValues("bad_request").Inc()
			writeError(w, http.StatusBadRequest, "missing_user_id")
			return
		}
		// Malformed preference values are rejected here; the engine assumes
		// well-typed input.
		if req.Preferences != nil {
			if req.Preferences.MaxDistance < 0 {
				matchRequestsTotal.WithLabelValues("bad_request").Inc()
				writeError(w, http.StatusBadRequest, "invalid_max_distance")
				return
			}
			if n := len(req.Preferences.AgeRange); n != 0 && n != 2 {
				matchRequestsTotal.WithLabelValues("bad_request").Inc()
				writeError(w, http.StatusBadRequest, "invalid_age_range")
				return
			}
		}
		if req.Limit < 0 {
			matchRequestsTotal.WithLabelValues("bad_request").Inc()
			writeError(w, http.StatusBadRequest, "invalid_limit")
			return
		}
		if req.Limit == 0 {
			req.Limit = 10
		}

		requestID := uuid.NewString()

		cacheKey := cache.key(body)
		if cache != nil {
			if resp, ok := cache.get(r.Context(), cacheKey); ok {
				matchRequestsTotal.WithLabelValues("cache_hit").Inc()
				logger.Infow("match served from cache",
					"request_id", requestID, "user_id", req.UserID)
				writeJSON(w, http.StatusOK, resp)
				return
			}
		}

		start := time.Now()

		var reqs *RequirementSet
		if strings.TrimSpace(req.Prompt) != "" {
			reqs = parsePromptRequirements(req.Prompt)
			logger.Debugw("parsed prompt requirements",
				"request_id", requestID, "requirements", reqs)
		}

		userProfile, err := fetchUserProfile(db, req.UserID)
		if err == errProfileNotFound {
			matchRequestsTotal.WithLabelValues("not_found").Inc()
			writeError(w, http.StatusNotFound, "user_not_found")
			return
		} else if err != nil {
			matchRequestsTotal.WithLabelValues("error").Inc()
			logger.Errorw("requester fetch failed", "request_id", requestID, "error", err)
			writeError(w, http.StatusInternalServerError, "db_error")
			return
		}

		// Over-fetch relative to the requested limit so ranking has enough
		// signal to work with; the store caps the pool.
		fetchLimit := req.Limit * 20
		if fetchLimit < 100 {
			fetchLimit = 100
		}
		candidates, err := fetchCandidateProfiles(
			db, req.UserID, req.Preferences, reqs,
			req.CandidateIDs, req.ExcludeUserIDs,
			cfg.InactiveDays, fetchLimit, cfg.PoolLimit,
		)
		if err != nil {
			matchRequestsTotal.WithLabelValues("error").Inc()
			logger.Errorw("candidate fetch failed", "request_id", requestID, "error", err)
			writeError(w, http.StatusInternalServerError, "db_error")
			return
		}
		matchCandidatesConsidered.Observe(float64(len(candidates)))

		if len(candidates) == 0 {
			matchRequestsTotal.WithLabelValues("empty").Inc()
			writeJSON(w, http.StatusOK, MatchResponse{
				Success:         true,
				Matches:         []ScoredCandidate{},
				TotalCandidates: 0,
			})
			return
		}

		matches := rankCandidates(
			userProfile, candidates, req.Preferences, req.Prompt, reqs,
			req.Latitude, req.Longitude, req.Limit, req.SingleBestMatch,
		)
		for i := range matches {
			matches[i].MatchScore = round2(matches[i].MatchScore)
		}

		elapsed := time.Since(start)
		resp := &MatchResponse{
			Success:          true,
			Matches:          matches,
			TotalCandidates:  len(candidates),
			ProcessingTimeMs: round2(float64(elapsed.Microseconds()) / 1000),
		}

		cache.set(r.Context(), cacheKey, resp)
		matchRequestsTotal.WithLabelValues("ok").Inc()
		matchLatencySeconds.Observe(elapsed.Seconds())
		matchResultsReturned.Observe(float64(len(matches)))

		logger.Infow("match request served",
			"request_id", requestID,
			"user_id", req.UserID,
			"prompt", req.Prompt != "",
			"candidates", len(candidates),
			"matches", len(matches),
			"latency_ms", resp.ProcessingTimeMs,
		)
		writeJSON(w, http.StatusOK, resp)
	})
}
