package main

// Weight profiles. Each maps factor name to a weight in [0,1]; weights within
// a profile sum to 1. Selection is a deterministic branch on the requirement
// shape and the chosen profile is never mutated.
var (
	// Keywords extracted and the prompt asks for nearby matches: keywords
	// still dominate but distance gets a real share.
	weightsPromptNearby = map[string]float64{
		"prompt_keywords": 0.50,
		"distance":        0.20,
		"interests":       0.15,
		"needs":           0.08,
		"bio":             0.05,
		"age":             0.02,
	}

	// Keywords extracted, no nearby preference: keyword matching dominates.
	weightsPrompt = map[string]float64{
		"prompt_keywords": 0.55,
		"interests":       0.20,
		"needs":           0.10,
		"age":             0.08,
		"distance":        0.05,
		"bio":             0.02,
	}

	// No usable keywords: classic profile-compatibility weighting, with a
	// small share reserved for legacy raw-prompt matching.
	weightsStandard = map[string]float64{
		"interests": 0.30,
		"needs":     0.25,
		"bio":       0.15,
		"distance":  0.15,
		"age":       0.10,
		"prompt":    0.05,
	}
)

// selectWeights picks the weight profile for this request. The branch is on
// the *expanded* keyword list so purpose-only prompts (all raw keywords were
// stop words) still get keyword-driven weighting.
func selectWeights(expandedKeywords []string, r *RequirementSet) map[string]float64 {
	if len(expandedKeywords) > 0 {
		if r != nil && r.PreferNearby {
			return weightsPromptNearby
		}
		return weightsPrompt
	}
	return weightsStandard
}

func weightOr(weights map[string]float64, key string, def float64) float64 {
	if w, ok := weights[key]; ok {
		return w
	}
	return def
}

// calculateMatchScore computes the composite 0-100 match score for one
// candidate. All contributions are additive; a contribution whose inputs are
// absent is skipped, never an error.
func calculateMatchScore(user, candidate *Profile, prefs *Preferences, prompt string, r *RequirementSet, expandedKeywords []string) float64 {
	score := 0.0
	weights := selectWeights(expandedKeywords, r)

	// Prompt keyword matching, plus flat bonuses for strong matches. The
	// bonuses are independent and cumulative with the weighted term.
	if len(expandedKeywords) > 0 {
		keywordMatch := calculateKeywordMatch(expandedKeywords, candidate)
		score += keywordMatch * weights["prompt_keywords"] * 100

		switch {
		case keywordMatch >= 0.8:
			score += 15
		case keywordMatch >= 0.6:
			score += 10
		case keywordMatch >= 0.4:
			score += 5
		}
		if r != nil && r.StrongIntent && keywordMatch >= 0.6 {
			score += 10
		}
		if r != nil && r.PurposeFocused && keywordMatch >= 0.5 {
			score += 8
		}
	}

	// Interest similarity
	if len(user.Interests) > 0 && len(candidate.Interests) > 0 {
		score += calculateListSimilarity(user.Interests, candidate.Interests) * weights["interests"] * 100
	}

	// Needs similarity
	if len(user.Needs) > 0 && len(candidate.Needs) > 0 {
		score += calculateListSimilarity(user.Needs, candidate.Needs) * weights["needs"] * 100
	}

	// Bio similarity
	if user.Bio != "" && candidate.Bio != "" {
		score += calculateTextSimilarity(user.Bio, candidate.Bio) * weights["bio"] * 100
	}

	// Distance: linear falloff to zero at max_distance.
	if user.Latitude != nil && user.Longitude != nil &&
		candidate.Latitude != nil && candidate.Longitude != nil {
		distance := haversine(*user.Latitude, *user.Longitude, *candidate.Latitude, *candidate.Longitude)
		maxDistance := prefs.maxDistanceOr(defaultMaxDistanceKm)
		distanceScore := 1 - distance/maxDistance
		if distanceScore < 0 {
			distanceScore = 0
		}
		score += distanceScore * weights["distance"] * 100
	}

	// Age compatibility: a 20-year gap zeroes the contribution.
	if user.Age != nil && candidate.Age != nil {
		ageDiff := float64(*user.Age - *candidate.Age)
		if ageDiff < 0 {
			ageDiff = -ageDiff
		}
		ageScore := 1 - ageDiff/20
		if ageScore < 0 {
			ageScore = 0
		}
		score += ageScore * weights["age"] * 100
	}

	// Legacy raw-prompt fallback: only when a prompt exists but nothing was
	// extracted from it, match its words against the candidate bio.
	if prompt != "" && r.empty() && candidate.Bio != "" {
		score += calculateTextSimilarity(prompt, candidate.Bio) * weightOr(weights, "prompt", 0.15) * 100
	}

	if score > 100.0 {
		score = 100.0
	}
	return score
}
