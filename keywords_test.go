package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandKeywords_OrderAndDedup(t *testing.T) {
	r := &RequirementSet{
		Keywords:         []string{"coding"},
		Purposes:         []string{"education"},
		RelationshipType: "professional",
	}

	// Keywords first, then purpose blocks in purpose order, then the
	// relationship block; duplicates keep their first position.
	assert.Equal(t, []string{
		"coding",
		"learn", "teaching", "teach", "tutor", "mentor", "guide", "study",
		"education", "programming", "development",
		"professional", "career", "networking", "business",
	}, expandKeywords(r))
}

func TestExpandKeywords_EmptySet(t *testing.T) {
	assert.Nil(t, expandKeywords(nil))
	assert.Nil(t, expandKeywords(&RequirementSet{}))
}

func TestExpandKeywords_KeywordsOnly(t *testing.T) {
	r := &RequirementSet{Keywords: []string{"chess", "baking"}}
	assert.Equal(t, []string{"chess", "baking"}, expandKeywords(r))
}

func TestCalculateKeywordMatch_TierCascade(t *testing.T) {
	candidate := &Profile{
		Interests: []string{"coding"},
		Needs:     []string{"career"},
		Bio:       "I love music",
	}

	cases := []struct {
		keyword string
		want    float64
	}{
		{"coding", 1.0},      // exact in interests
		{"programming", 0.9}, // synonym ("coding") in interests
		{"career", 0.8},      // exact in needs
		{"mentor", 0.0},      // synonym key, but no synonym present anywhere
		{"music", 0.6},       // exact in bio
		{"knitting", 0.0},    // no match at any tier
	}
	for _, tc := range cases {
		got := calculateKeywordMatch([]string{tc.keyword}, candidate)
		assert.InDelta(t, tc.want, got, 1e-9, "keyword %q", tc.keyword)
	}
}

func TestCalculateKeywordMatch_SynonymNeedsAndBio(t *testing.T) {
	// "gym" matches via its synonyms only: "fitness" sits in needs here.
	candidate := &Profile{Needs: []string{"fitness"}}
	assert.InDelta(t, 0.7, calculateKeywordMatch([]string{"gym"}, candidate), 1e-9)

	// Same synonym in the bio only drops it a tier lower.
	candidate = &Profile{Bio: "fitness fan"}
	assert.InDelta(t, 0.5, calculateKeywordMatch([]string{"gym"}, candidate), 1e-9)
}

func TestCalculateKeywordMatch_FirstTierWins(t *testing.T) {
	// "coding" appears exactly in both needs and bio; the needs tier wins
	// because it comes first in the cascade.
	candidate := &Profile{Needs: []string{"coding"}, Bio: "coding all day"}
	assert.InDelta(t, 0.8, calculateKeywordMatch([]string{"coding"}, candidate), 1e-9)
}

func TestCalculateKeywordMatch_Averaging(t *testing.T) {
	candidate := &Profile{Interests: []string{"coding", "hiking"}}
	// coding 1.0 + knitting 0.0 over two keywords.
	got := calculateKeywordMatch([]string{"coding", "knitting"}, candidate)
	assert.InDelta(t, 0.5, got, 1e-9)
}

func TestCalculateKeywordMatch_EmptyInputs(t *testing.T) {
	assert.Zero(t, calculateKeywordMatch(nil, &Profile{Interests: []string{"coding"}}))
	assert.Zero(t, calculateKeywordMatch([]string{"coding"}, &Profile{}))
}

func TestCalculateKeywordMatch_CaseInsensitiveProfile(t *testing.T) {
	// Profile text is lower-cased before matching; keywords already are.
	candidate := &Profile{Interests: []string{"Coding", "HIKING"}}
	assert.InDelta(t, 1.0, calculateKeywordMatch([]string{"coding"}, candidate), 1e-9)
}
