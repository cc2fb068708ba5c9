package main

import "strings"

// purposeExpansions maps each detected purpose to the concrete terms likely
// to appear in candidate bios, interests and needs.
var purposeExpansions = map[string][]string{
	"emotional_support": {
		"emotional", "support", "listener", "listening", "empathy", "understanding", "caring",
		"comfort", "therapy", "mental", "talk",
	},
	"education": {
		"learn", "teaching", "teach", "tutor", "mentor", "guide", "study", "education",
		"coding", "programming", "development",
	},
	"career": {
		"career", "job", "work", "professional", "mentor", "mentorship", "advice", "business",
	},
	"health": {
		"health", "fitness", "workout", "gym", "wellness", "mental", "therapy",
	},
}

// relationshipExpansions does the same for the single detected relationship
// type.
var relationshipExpansions = map[string][]string{
	"casual":       {"casual", "hookup", "fun", "fling", "no strings"},
	"serious":      {"serious", "relationship", "long term", "committed", "partner", "dating"},
	"friendship":   {"friend", "friendship", "buddy", "hangout", "chill"},
	"professional": {"professional", "career", "mentor", "networking", "business"},
}

// keywordSynonyms backs the synonym tiers of the keyword matcher. Entries are
// one-directional: only table keys get synonym credit.
var keywordSynonyms = map[string][]string{
	// Technical / education
	"coding":      {"programming", "developer", "software", "code", "development", "engineer", "tech"},
	"programming": {"coding", "developer", "software", "development", "engineer", "tech"},
	"teaching":    {"teacher", "mentor", "education", "tutor", "instructor", "guide", "coach"},
	"learning":    {"study", "education", "student", "knowledge", "training"},

	// Fitness / health
	"gym":     {"fitness", "workout", "exercise", "bodybuilding", "training", "athletic"},
	"fitness": {"gym", "workout", "exercise", "health", "training", "athletic", "wellness"},
	"health":  {"wellness", "fitness", "healthy", "wellbeing", "medical"},

	// Emotional / support
	"emotional": {"emotion", "feelings", "empathy", "support", "understanding", "caring"},
	"support":   {"help", "assist", "guidance", "advice", "counseling", "listening"},
	"listening": {"listener", "understanding", "empathy", "support", "caring"},

	// Relationship types
	"casual":     {"hookup", "fun", "fling", "no strings", "relaxed"},
	"serious":    {"committed", "relationship", "long term", "partner", "dating"},
	"friendship": {"friend", "buddy", "pal", "companion", "hang out"},

	// Career / professional
	"career": {"professional", "job", "work", "business", "employment"},
	"mentor": {"guide", "advisor", "coach", "teacher", "counselor"},
	"advice": {"guidance", "help", "suggestion", "recommendation", "tips"},

	// Creative / arts
	"music":       {"musical", "musician", "singing", "songs", "melody", "tune", "performer"},
	"art":         {"artistic", "artist", "creative", "painting", "drawing", "design"},
	"photography": {"photo", "photographer", "pictures", "camera", "videography"},
	"design":      {"designer", "creative", "art", "graphic", "ui", "ux", "artistic"},

	// Activities
	"travel": {"traveling", "trip", "vacation", "adventure", "explore", "wanderlust"},
	"hiking": {"trekking", "mountain", "outdoor", "nature", "trail", "adventure"},
}

// expandKeywords broadens a requirement set into the vocabulary actually used
// for scoring: extracted keywords first, then the expansion block of each
// purpose in detection order, then the relationship-type block. Duplicates
// and blank entries are dropped, first occurrence wins.
func expandKeywords(r *RequirementSet) []string {
	if r.empty() {
		return nil
	}

	var expanded []string
	expanded = append(expanded, r.Keywords...)
	for _, p := range r.Purposes {
		expanded = append(expanded, purposeExpansions[p]...)
	}
	if r.RelationshipType != "" {
		expanded = append(expanded, relationshipExpansions[r.RelationshipType]...)
	}

	seen := make(map[string]struct{}, len(expanded))
	out := expanded[:0]
	for _, w := range expanded {
		if strings.TrimSpace(w) == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// Keyword tier values. The cascade is strict: for each keyword the first
// matching tier wins and the rest are not consulted. The ordering
// (interests > needs > bio, exact > synonym) is business logic, not an
// optimization; keep it an explicit ordered evaluation.
const (
	tierExactInterests   = 1.0
	tierSynonymInterests = 0.9
	tierExactNeeds       = 0.8
	tierSynonymNeeds     = 0.7
	tierExactBio         = 0.6
	tierSynonymBio       = 0.5
	tierPartial          = 0.3
)

func anySynonymIn(keyword, text string) bool {
	syns, ok := keywordSynonyms[keyword]
	if !ok || text == "" {
		return false
	}
	for _, s := range syns {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

// calculateKeywordMatch scores how well the candidate's profile text covers
// the expanded keyword list, normalized to [0,1].
func calculateKeywordMatch(keywords []string, candidate *Profile) float64 {
	if len(keywords) == 0 {
		return 0.0
	}

	interestsText := strings.ToLower(strings.Join(candidate.Interests, " "))
	needsText := strings.ToLower(strings.Join(candidate.Needs, " "))
	bioText := strings.ToLower(candidate.Bio)

	if interestsText == "" && needsText == "" && bioText == "" {
		return 0.0
	}

	combinedWords := strings.Fields(interestsText + " " + needsText + " " + bioText)

	total := 0.0
	for _, keyword := range keywords {
		switch {
		case interestsText != "" && strings.Contains(interestsText, keyword):
			total += tierExactInterests
		case anySynonymIn(keyword, interestsText):
			total += tierSynonymInterests
		case needsText != "" && strings.Contains(needsText, keyword):
			total += tierExactNeeds
		case anySynonymIn(keyword, needsText):
			total += tierSynonymNeeds
		case bioText != "" && strings.Contains(bioText, keyword):
			total += tierExactBio
		case anySynonymIn(keyword, bioText):
			total += tierSynonymBio
		default:
			for _, w := range combinedWords {
				if strings.Contains(w, keyword) {
					total += tierPartial
					break
				}
			}
		}
	}

	match := total / float64(len(keywords))
	if match > 1.0 {
		match = 1.0
	}
	return match
}
