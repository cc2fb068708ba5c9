package main

import "sort"

// Inclusion thresholds. With extracted requirements, candidates qualify on
// coverage; the score floor is a weak-signal fallback that keeps the result
// from being empty when nothing reaches full coverage. Without requirements
// only a minimal score floor applies.
const (
	strongCoverageThreshold = 0.60
	fallbackScoreThreshold  = 10.0
	minScoreThreshold       = 5.0
)

// rankCandidates runs the whole per-request ranking pipeline over an
// immutable candidate snapshot: geo pre-filter, score + coverage, inclusion
// policy, coverage-first ordering, strong-subset restriction and truncation.
// It is a pure function of its inputs; concurrent invocations share nothing.
func rankCandidates(
	user *Profile,
	candidates []*Profile,
	prefs *Preferences,
	prompt string,
	r *RequirementSet,
	requestLat, requestLon *float64,
	limit int,
	singleBestMatch bool,
) []ScoredCandidate {
	expandedKeywords := expandKeywords(r)
	hasRequirements := !r.empty()

	scored := make([]ScoredCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		// Hard geo-filter before scoring: candidates beyond max_distance
		// are excluded entirely, not just scored down.
		if requestLat != nil && requestLon != nil &&
			candidate.Latitude != nil && candidate.Longitude != nil {
			distance := haversine(*requestLat, *requestLon, *candidate.Latitude, *candidate.Longitude)
			if distance > prefs.maxDistanceOr(defaultMaxDistanceKm) {
				continue
			}
		}

		score := calculateMatchScore(user, candidate, prefs, prompt, r, expandedKeywords)
		coverage := computeCriteriaCoverage(r, expandedKeywords, candidate)

		if hasRequirements {
			if coverage < strongCoverageThreshold && score < fallbackScoreThreshold {
				continue
			}
		} else if score < minScoreThreshold {
			continue
		}

		scored = append(scored, ScoredCandidate{
			Profile:          *candidate,
			MatchScore:       score,
			CriteriaCoverage: coverage,
		})
	}

	// Coverage is the primary key; score orders within a coverage tier.
	// Stable sort keeps pool order deterministic for exact ties.
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].CriteriaCoverage != scored[j].CriteriaCoverage {
			return scored[i].CriteriaCoverage > scored[j].CriteriaCoverage
		}
		return scored[i].MatchScore > scored[j].MatchScore
	})

	// Whenever anyone meets the coverage bar, the fallback-included weak
	// candidates are dropped outright. This can shrink the result below the
	// requested limit; that is deliberate policy, not a bug.
	if hasRequirements {
		strong := make([]ScoredCandidate, 0, len(scored))
		for _, c := range scored {
			if c.CriteriaCoverage >= strongCoverageThreshold {
				strong = append(strong, c)
			}
		}
		if len(strong) > 0 {
			scored = strong
		}
	}

	if singleBestMatch {
		if len(scored) > 1 {
			scored = scored[:1]
		}
		return scored
	}
	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
