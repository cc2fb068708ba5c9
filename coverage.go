package main

import "strings"

// keywordCoverageThreshold is the keyword-match fraction at which the
// expanded-keyword constraint counts as satisfied.
const keywordCoverageThreshold = 0.60

// computeCriteriaCoverage returns the fraction (0-1) of hard constraints the
// candidate satisfies. Only constraints actually extracted contribute to the
// denominator; no constraints at all yields 0.0, which is a neutral value,
// not a verdict.
func computeCriteriaCoverage(r *RequirementSet, expandedKeywords []string, candidate *Profile) float64 {
	if r.empty() {
		return 0.0
	}

	total := 0
	satisfied := 0

	if r.Gender != "" {
		total++
		gender := strings.ToLower(strings.TrimSpace(candidate.Gender))
		if gender != "" && gender == r.Gender {
			satisfied++
		}
	}

	if r.AgeRange != nil {
		total++
		if candidate.Age != nil && *candidate.Age >= r.AgeRange.Min && *candidate.Age <= r.AgeRange.Max {
			satisfied++
		}
	}

	if len(expandedKeywords) > 0 {
		total++
		if calculateKeywordMatch(expandedKeywords, candidate) >= keywordCoverageThreshold {
			satisfied++
		}
	}

	if total == 0 {
		return 0.0
	}
	return float64(satisfied) / float64(total)
}
