package main

import (
	"regexp"
	"strings"
)

// Fixed detection vocabularies. These are static lookup data; they are never
// mutated after process startup.
var (
	femaleTerms = []string{"female", "woman", "girl", "lady", "she", "her"}
	maleTerms   = []string{"male", "man", "boy", "guy", "he", "him"}
	lgbtqTerms  = []string{"gay", "lesbian", "queer", "lgbt", "lgbtq", "non-binary", "trans"}

	nearbyTerms = []string{"nearby", "near me", "close", "local", "same city", "near"}

	casualTerms       = []string{"hookup", "casual", "no strings", "fling", "one night", "fun", "no serious"}
	seriousTerms      = []string{"serious", "relationship", "long term", "committed", "partner", "dating"}
	friendshipTerms   = []string{"friend", "friendship", "buddy", "pal", "hang out", "chill"}
	professionalTerms = []string{"mentor", "professional", "career", "business", "networking", "work"}

	emotionalTerms = []string{"emotion", "emotional", "support", "listen", "understand", "empathy", "comfort"}
	educationTerms = []string{"learn", "teach", "education", "study", "tutor", "help me in", "guide"}
	careerTerms    = []string{"career", "job", "professional", "work", "business", "advice"}
	healthTerms    = []string{"health", "fitness", "wellness", "mental health", "therapy", "workout"}

	strongIntentTerms = []string{"only", "specifically", "must", "need", "require", "looking for"}

	techSkillTerms = []string{"coding", "programming", "developer", "software", "tech", "computer",
		"web", "app", "python", "java", "javascript", "data", "ai", "ml"}
	creativeSkillTerms = []string{"art", "design", "music", "photography", "writing", "creative",
		"painting", "drawing", "singing", "dancing"}
	sportsFitnessTerms = []string{"gym", "fitness", "sports", "running", "yoga", "workout",
		"exercise", "athletic", "swimming", "cycling"}
	outdoorActivityTerms = []string{"hiking", "trekking", "camping", "adventure", "travel",
		"nature", "outdoor", "mountain", "beach"}
)

// stopWords are dropped from keyword extraction.
var stopWords = map[string]struct{}{
	"find": {}, "me": {}, "a": {}, "an": {}, "the": {}, "who": {}, "can": {},
	"in": {}, "with": {}, "at": {}, "near": {}, "around": {},
	"about": {}, "age": {}, "years": {}, "old": {}, "user": {}, "person": {},
	"people": {}, "someone": {}, "looking": {}, "for": {}, "want": {},
	"need": {}, "would": {}, "could": {}, "should": {}, "and": {}, "or": {},
	"but": {}, "is": {}, "are": {}, "was": {}, "were": {}, "be": {},
	"been": {}, "being": {}, "have": {}, "has": {}, "had": {}, "do": {},
	"does": {}, "did": {}, "will": {}, "shall": {}, "may": {}, "might": {},
	"must": {}, "to": {}, "from": {}, "of": {}, "on": {}, "by": {},
}

// Age patterns are evaluated in order; the first match wins. The tolerance
// turns a single value into an inclusive range clamped to [18,100].
var agePatterns = []struct {
	re        *regexp.Regexp
	tolerance int
}{
	{regexp.MustCompile(`age\s+(\d+)`), 3},         // "age 23"
	{regexp.MustCompile(`(\d+)\s+years?\s+old`), 3}, // "23 years old"
	{regexp.MustCompile(`around\s+(\d+)`), 4},       // "around 25"
	{regexp.MustCompile(`near\s+(\d+)`), 3},         // "near 30"
	{regexp.MustCompile(`about\s+(\d+)`), 4},        // "about 28"
	{regexp.MustCompile(`exactly\s+(\d+)`), 1},      // "exactly 25"
}

var (
	ageBetweenRe = regexp.MustCompile(`between\s+(\d+)\s+and\s+(\d+)`)
	ageMinRe     = regexp.MustCompile(`(?:above|over|older than)\s+(\d+)`)
	ageMaxRe     = regexp.MustCompile(`(?:under|below|younger than)\s+(\d+)`)
	wordRe       = regexp.MustCompile(`\b\w+\b`)
)

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

// parsePromptRequirements turns a free-text prompt into a RequirementSet.
// Each detection pass is independent and best-effort: no match means no
// constraint, never an error. An empty or absent prompt yields an empty set.
func parsePromptRequirements(prompt string) *RequirementSet {
	r := &RequirementSet{}
	if strings.TrimSpace(prompt) == "" {
		return r
	}
	p := strings.ToLower(prompt)

	// LGBTQ+ indicators are orthogonal to the gender constraint and may
	// co-occur with it.
	if containsAny(p, lgbtqTerms) {
		r.LGBTQFriendly = true
		if strings.Contains(p, "gay") || strings.Contains(p, "lesbian") {
			r.LGBTQSpecific = true
		}
	}

	// Gender: the female list is checked before the male list, so a prompt
	// mentioning both resolves to female. Known priority artifact, kept
	// as-is pending product sign-off; "fixing" it changes ranking.
	if containsAny(p, femaleTerms) {
		r.Gender = "female"
	} else if containsAny(p, maleTerms) {
		r.Gender = "male"
	}

	// Age pass 1: single value with tolerance, clamped to [18,100].
	for _, ap := range agePatterns {
		if m := ap.re.FindStringSubmatch(p); m != nil {
			age := atoiSafe(m[1])
			r.AgeRange = &AgeRange{
				Min: maxInt(18, age-ap.tolerance),
				Max: minInt(100, age+ap.tolerance),
			}
			break
		}
	}
	// Age pass 2: explicit "between N and M" bounds, taken verbatim
	// (no tolerance, no clamping).
	if r.AgeRange == nil {
		if m := ageBetweenRe.FindStringSubmatch(p); m != nil {
			r.AgeRange = &AgeRange{Min: atoiSafe(m[1]), Max: atoiSafe(m[2])}
		}
	}
	// Age pass 3: one-sided bound phrases; the missing side defaults.
	if r.AgeRange == nil {
		minM := ageMinRe.FindStringSubmatch(p)
		maxM := ageMaxRe.FindStringSubmatch(p)
		if minM != nil || maxM != nil {
			lo, hi := 18, 100
			if minM != nil {
				lo = atoiSafe(minM[1])
			}
			if maxM != nil {
				hi = atoiSafe(maxM[1])
			}
			r.AgeRange = &AgeRange{Min: lo, Max: hi}
		}
	}

	// Keywords: tokenized words minus stop words, short tokens and pure
	// numbers, deduplicated in first-seen order.
	seen := map[string]struct{}{}
	for _, w := range wordRe.FindAllString(p, -1) {
		w = strings.Trim(w, ".,!?;:")
		if _, stop := stopWords[w]; stop {
			continue
		}
		if len(w) <= 2 || isDigits(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		r.Keywords = append(r.Keywords, w)
	}

	// Categories are non-exclusive; any list with a hit contributes.
	if containsAny(p, techSkillTerms) {
		r.Categories = append(r.Categories, "technology")
	}
	if containsAny(p, creativeSkillTerms) {
		r.Categories = append(r.Categories, "creative")
	}
	if containsAny(p, sportsFitnessTerms) {
		r.Categories = append(r.Categories, "fitness")
	}
	if containsAny(p, outdoorActivityTerms) {
		r.Categories = append(r.Categories, "outdoor")
	}

	if containsAny(p, nearbyTerms) {
		r.PreferNearby = true
	}

	// Relationship type: four lists in fixed priority order, first match
	// wins. Same caveat as gender: the priority is a documented artifact.
	// IntentWeight marks casual/serious hits but informs nothing downstream.
	switch {
	case containsAny(p, casualTerms):
		r.RelationshipType = "casual"
		r.IntentWeight = "high"
	case containsAny(p, seriousTerms):
		r.RelationshipType = "serious"
		r.IntentWeight = "high"
	case containsAny(p, friendshipTerms):
		r.RelationshipType = "friendship"
	case containsAny(p, professionalTerms):
		r.RelationshipType = "professional"
	}

	// Purposes are non-exclusive: every matching list contributes.
	if containsAny(p, emotionalTerms) {
		r.Purposes = append(r.Purposes, "emotional_support")
	}
	if containsAny(p, educationTerms) {
		r.Purposes = append(r.Purposes, "education")
	}
	if containsAny(p, careerTerms) {
		r.Purposes = append(r.Purposes, "career")
	}
	if containsAny(p, healthTerms) {
		r.Purposes = append(r.Purposes, "health")
	}
	if len(r.Purposes) > 0 {
		r.PurposeFocused = true
	}

	if containsAny(p, strongIntentTerms) {
		r.StrongIntent = true
	}

	return r
}

func atoiSafe(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
