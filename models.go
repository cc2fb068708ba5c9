package main

// AgeRange is an inclusive age interval.
type AgeRange struct {
	Min int
	Max int
}

// RequirementSet holds the structured constraints extracted from a free-text
// prompt. Every field is optional; a zero value means "no constraint".
// Built once per request by parsePromptRequirements and never mutated after.
type RequirementSet struct {
	Gender           string // "female" or "male" (DB stores gender lowercase)
	AgeRange         *AgeRange
	Keywords         []string // ordered, deduplicated
	Categories       []string // technology / creative / fitness / outdoor
	PreferNearby     bool
	RelationshipType string // casual / serious / friendship / professional
	IntentWeight     string // "high" for casual/serious; informational only
	Purposes         []string // emotional_support / education / career / health
	PurposeFocused   bool
	StrongIntent     bool
	LGBTQFriendly    bool
	LGBTQSpecific    bool
}

// empty reports whether no constraint at all was extracted. An empty set is
// treated downstream exactly like "no prompt": standard weights, zero
// coverage, legacy prompt matching.
func (r *RequirementSet) empty() bool {
	if r == nil {
		return true
	}
	return r.Gender == "" && r.AgeRange == nil && len(r.Keywords) == 0 &&
		len(r.Categories) == 0 && !r.PreferNearby && r.RelationshipType == "" &&
		len(r.Purposes) == 0 && !r.StrongIntent && !r.LGBTQFriendly
}

// Profile is a read-only, request-scoped copy of a user profile as returned
// by the profile store. Lifecycle flags (suspended, deleted, last_active)
// never reach the engine; the store filters on them.
type Profile struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Age       *int     `json:"age"`
	Bio       string   `json:"bio"`
	Interests []string `json:"interests"`
	Needs     []string `json:"needs"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Gender    string   `json:"gender"`
}

// ScoredCandidate pairs a candidate profile with its computed match score and
// criteria coverage. Coverage drives ranking but is not part of the response
// payload.
type ScoredCandidate struct {
	Profile
	MatchScore       float64 `json:"match_score"`
	CriteriaCoverage float64 `json:"-"`
}

// Preferences carries the caller's structured matching preferences.
type Preferences struct {
	MaxDistance      float64  `json:"max_distance"` // km; 0 means default (50)
	AgeRange         []int    `json:"age_range"`    // [min, max]
	Interests        []string `json:"interests"`
	Needs            []string `json:"needs"`
	GenderPreference string   `json:"gender_preference"`
}

const defaultMaxDistanceKm = 50.0

// maxDistanceOr returns the caller's max_distance or the given default.
func (p *Preferences) maxDistanceOr(def float64) float64 {
	if p == nil || p.MaxDistance <= 0 {
		return def
	}
	return p.MaxDistance
}

// MatchRequest is the body of POST /api/ml/match.
type MatchRequest struct {
	UserID          string       `json:"user_id"`
	Prompt          string       `json:"prompt"`
	Preferences     *Preferences `json:"preferences"`
	Latitude        *float64     `json:"latitude"`
	Longitude       *float64     `json:"longitude"`
	Limit           int          `json:"limit"`
	SingleBestMatch bool         `json:"single_best_match"`
	CandidateIDs    []string     `json:"candidate_ids"`
	ExcludeUserIDs  []string     `json:"exclude_user_ids"`
}

// MatchResponse is the body returned by POST /api/ml/match.
type MatchResponse struct {
	Success          bool              `json:"success"`
	Matches          []ScoredCandidate `json:"matches"`
	TotalCandidates  int               `json:"total_candidates"`
	ProcessingTimeMs float64           `json:"processing_time_ms"`
}
