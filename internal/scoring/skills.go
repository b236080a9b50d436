// Package scoring implements the rule-based sub-score calculators and the
// weighted scorer that combine into an overall match score. Every function
// here is pure; scores are always clamped to [0,100].
package scoring

import "strings"

// SkillsResult holds the outcome of a skills comparison.
type SkillsResult struct {
	Score    int      `json:"score"`
	Matching []string `json:"matching"`
	Missing  []string `json:"missing"`
	Total    int      `json:"total"` // number of required skills
}

// skillsOverlap reports whether two skill names match. Partial-match
// semantics: either name being a case-insensitive substring of the other
// counts, so "node" matches "Node.js" and "React" matches "react".
func skillsOverlap(a, b string) bool {
	la := strings.ToLower(a)
	lb := strings.ToLower(b)
	if la == "" || lb == "" {
		return false
	}
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

// SkillsMatch compares a candidate's skills against a job's required skills.
// The score is the fraction of required skills covered, as a percentage.
// An empty required list scores 0, not 100.
func SkillsMatch(candidateSkills, requiredSkills []string) SkillsResult {
	matching := make([]string, 0, len(candidateSkills))
	for _, skill := range candidateSkills {
		for _, required := range requiredSkills {
			if skillsOverlap(skill, required) {
				matching = append(matching, skill)
				break
			}
		}
	}

	missing := make([]string, 0, len(requiredSkills))
	for _, required := range requiredSkills {
		covered := false
		for _, skill := range candidateSkills {
			if skillsOverlap(skill, required) {
				covered = true
				break
			}
		}
		if !covered {
			missing = append(missing, required)
		}
	}

	score := 0
	if len(requiredSkills) > 0 {
		score = clampInt(roundScore(100 * float64(len(matching)) / float64(len(requiredSkills))))
	}

	return SkillsResult{
		Score:    score,
		Matching: matching,
		Missing:  missing,
		Total:    len(requiredSkills),
	}
}

// CoveredSkills returns the required skills that the candidate covers, i.e.
// required minus missing. Together with Missing this partitions the
// required set.
func (r SkillsResult) CoveredSkills(requiredSkills []string) []string {
	missing := make(map[string]bool, len(r.Missing))
	for _, skill := range r.Missing {
		missing[skill] = true
	}

	covered := make([]string, 0, len(requiredSkills))
	for _, skill := range requiredSkills {
		if !missing[skill] {
			covered = append(covered, skill)
		}
	}
	return covered
}
