package scoring

import (
	"math"
	"strings"
)

// Component names a score component feeding the weighted scorer.
type Component string

// Score components recognized by the weighting profiles.
const (
	ComponentSemantic    Component = "semantic"
	ComponentSkills      Component = "skills"
	ComponentExperience  Component = "experience"
	ComponentEducation   Component = "education"
	ComponentLocation    Component = "location"
	ComponentSalary      Component = "salary"
	ComponentPreferences Component = "preferences"
)

// Profile is a named weighting profile controlling how sub-scores combine
// into one overall score.
type Profile int

// The predefined weighting profiles. Unknown profile names parse to
// Comprehensive, so a typo can never silently select no weights.
const (
	Comprehensive Profile = iota
	CandidateFocused
	SkillsHeavy
)

// profileWeights holds the per-component weights for each profile.
var profileWeights = map[Profile]map[Component]float64{
	Comprehensive: {
		ComponentSemantic:   0.30,
		ComponentSkills:     0.35,
		ComponentExperience: 0.25,
		ComponentEducation:  0.10,
	},
	CandidateFocused: {
		ComponentSemantic:   0.25,
		ComponentSkills:     0.30,
		ComponentExperience: 0.20,
		ComponentSalary:     0.15,
		ComponentLocation:   0.10,
	},
	SkillsHeavy: {
		ComponentSkills:     0.50,
		ComponentExperience: 0.30,
		ComponentSemantic:   0.20,
	},
}

// ParseProfile resolves a profile name; unknown names fall back to
// Comprehensive.
func ParseProfile(name string) Profile {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "candidate_focused":
		return CandidateFocused
	case "skills_heavy":
		return SkillsHeavy
	default:
		return Comprehensive
	}
}

// String returns the canonical profile name.
func (p Profile) String() string {
	switch p {
	case CandidateFocused:
		return "candidate_focused"
	case SkillsHeavy:
		return "skills_heavy"
	default:
		return "comprehensive"
	}
}

// Weights returns a copy of the profile's weight table.
func (p Profile) Weights() map[Component]float64 {
	weights, ok := profileWeights[p]
	if !ok {
		weights = profileWeights[Comprehensive]
	}
	out := make(map[Component]float64, len(weights))
	for component, weight := range weights {
		out[component] = weight
	}
	return out
}

// WeightedScore combines component scores (each already in [0,100]) into a
// single score, normalizing by the sum of the weights actually used.
// Components absent from the input map are skipped entirely, not treated as
// zero; if no supplied component carries weight, the result is 0 rather
// than a division by zero.
func WeightedScore(scores map[Component]float64, profile Profile) float64 {
	weights, ok := profileWeights[profile]
	if !ok {
		weights = profileWeights[Comprehensive]
	}

	var weightedScore, totalWeight float64
	for component, score := range scores {
		weight := weights[component]
		weightedScore += score * weight
		totalWeight += weight
	}

	if totalWeight == 0 {
		return 0
	}

	return clampFloat(weightedScore / totalWeight)
}

// clampFloat clamps a score to [0,100].
func clampFloat(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// clampInt clamps an integer score to [0,100].
func clampInt(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// roundScore rounds a float score to the nearest integer for display.
func roundScore(score float64) int {
	return int(math.Round(score))
}

// RoundScore rounds and clamps a float score for response payloads.
func RoundScore(score float64) int {
	return clampInt(roundScore(score))
}
