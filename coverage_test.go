package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeCriteriaCoverage_NoRequirements(t *testing.T) {
	candidate := &Profile{ID: "c1", Gender: "female", Age: iptr(23)}
	// No constraints extracted at all: 0.0 is the neutral value here, not a
	// failed match.
	assert.Zero(t, computeCriteriaCoverage(nil, nil, candidate))
	assert.Zero(t, computeCriteriaCoverage(&RequirementSet{}, nil, candidate))
}

func TestComputeCriteriaCoverage_GenderOnly(t *testing.T) {
	r := &RequirementSet{Gender: "female"}

	assert.InDelta(t, 1.0, computeCriteriaCoverage(r, nil, &Profile{Gender: "female"}), 1e-9)
	assert.InDelta(t, 1.0, computeCriteriaCoverage(r, nil, &Profile{Gender: " Female "}), 1e-9)
	assert.Zero(t, computeCriteriaCoverage(r, nil, &Profile{Gender: "male"}))
	assert.Zero(t, computeCriteriaCoverage(r, nil, &Profile{}))
}

func TestComputeCriteriaCoverage_AgeOnly(t *testing.T) {
	r := &RequirementSet{AgeRange: &AgeRange{Min: 20, Max: 26}}

	assert.InDelta(t, 1.0, computeCriteriaCoverage(r, nil, &Profile{Age: iptr(23)}), 1e-9)
	assert.InDelta(t, 1.0, computeCriteriaCoverage(r, nil, &Profile{Age: iptr(20)}), 1e-9) // bounds inclusive
	assert.InDelta(t, 1.0, computeCriteriaCoverage(r, nil, &Profile{Age: iptr(26)}), 1e-9)
	assert.Zero(t, computeCriteriaCoverage(r, nil, &Profile{Age: iptr(30)}))
	assert.Zero(t, computeCriteriaCoverage(r, nil, &Profile{}))
}

func TestComputeCriteriaCoverage_KeywordThreshold(t *testing.T) {
	r := &RequirementSet{Keywords: []string{"coding"}}
	expanded := expandKeywords(r)

	// Exact-interest hit: keyword match 1.0 >= 0.60.
	assert.InDelta(t, 1.0, computeCriteriaCoverage(r, expanded, &Profile{Interests: []string{"coding"}}), 1e-9)
	// Exact-bio hit: 0.6 still meets the threshold.
	assert.InDelta(t, 1.0, computeCriteriaCoverage(r, expanded, &Profile{Bio: "coding at night"}), 1e-9)
	// Synonym-bio hit: 0.5 is below it.
	assert.Zero(t, computeCriteriaCoverage(r, expanded, &Profile{Bio: "software developer"}))
	assert.Zero(t, computeCriteriaCoverage(r, expanded, &Profile{Interests: []string{"hiking"}}))
}

func TestComputeCriteriaCoverage_AllConstraintsSatisfied(t *testing.T) {
	r := &RequirementSet{
		Gender:   "female",
		AgeRange: &AgeRange{Min: 20, Max: 26},
		Keywords: []string{"coding"},
	}
	expanded := expandKeywords(r)
	candidate := &Profile{Gender: "female", Age: iptr(23), Interests: []string{"coding", "hiking"}}

	assert.InDelta(t, 1.0, computeCriteriaCoverage(r, expanded, candidate), 1e-9)
}

func TestComputeCriteriaCoverage_PartialCoverage(t *testing.T) {
	r := &RequirementSet{
		Gender:   "female",
		AgeRange: &AgeRange{Min: 20, Max: 26},
		Keywords: []string{"coding"},
	}
	expanded := expandKeywords(r)

	// Gender and age satisfied, keywords not: 2/3.
	candidate := &Profile{Gender: "female", Age: iptr(23), Interests: []string{"hiking"}}
	assert.InDelta(t, 2.0/3.0, computeCriteriaCoverage(r, expanded, candidate), 1e-9)

	// Only gender: 1/3.
	candidate = &Profile{Gender: "female", Age: iptr(40), Interests: []string{"hiking"}}
	assert.InDelta(t, 1.0/3.0, computeCriteriaCoverage(r, expanded, candidate), 1e-9)
}

func TestComputeCriteriaCoverage_Monotonicity(t *testing.T) {
	candidate := &Profile{Gender: "female", Age: iptr(23)}

	one := computeCriteriaCoverage(&RequirementSet{Gender: "female"}, nil, candidate)
	two := computeCriteriaCoverage(&RequirementSet{
		Gender:   "female",
		AgeRange: &AgeRange{Min: 20, Max: 26},
	}, nil, candidate)

	// Adding another satisfied constraint cannot decrease coverage.
	assert.GreaterOrEqual(t, two, one)
}
