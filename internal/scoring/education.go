package scoring

import "github.com/jonathan/talent-matcher/internal/types"

// EducationMatch is a simplified presence check, not a semantic comparison
// of degree fields: no stated requirement scores 100, a requirement with no
// candidate education scores 30, anything else scores a flat 80.
func EducationMatch(candidateEducation []types.EducationEntry, requiredEducation []string) int {
	if len(requiredEducation) == 0 {
		return 100
	}
	if len(candidateEducation) == 0 {
		return 30
	}
	return 80
}
