package scoring

// ExperienceResult holds the outcome of an experience comparison.
type ExperienceResult struct {
	Score          int     `json:"score"`
	CandidateYears float64 `json:"candidate_years"`
	RequiredYears  float64 `json:"required_years"`
	Ratio          float64 `json:"ratio"`
}

// ExperienceMatch scores a candidate's years of experience against a
// requirement using ratio bands. A zero requirement means automatic full
// credit. (Note the asymmetry with SkillsMatch, which scores an empty
// requirement as 0; both behaviors are pinned by tests.)
func ExperienceMatch(candidateYears, requiredYears float64) ExperienceResult {
	if requiredYears <= 0 {
		return ExperienceResult{
			Score:          100,
			CandidateYears: candidateYears,
			RequiredYears:  requiredYears,
		}
	}

	ratio := candidateYears / requiredYears

	var score int
	switch {
	case ratio >= 1:
		score = 100
	case ratio >= 0.7:
		score = 80
	case ratio >= 0.5:
		score = 60
	default:
		score = 30
	}

	return ExperienceResult{
		Score:          score,
		CandidateYears: candidateYears,
		RequiredYears:  requiredYears,
		Ratio:          ratio,
	}
}
