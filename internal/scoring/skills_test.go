package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillsMatch_PartialSubstringOverlap(t *testing.T) {
	result := SkillsMatch([]string{"React", "Node.js"}, []string{"react", "node", "aws"})

	// 2 of 3 required skills covered
	assert.Equal(t, 67, result.Score)
	assert.ElementsMatch(t, []string{"React", "Node.js"}, result.Matching)
	assert.Equal(t, []string{"aws"}, result.Missing)
	assert.Equal(t, 3, result.Total)
}

func TestSkillsMatch_EmptyRequiredScoresZero(t *testing.T) {
	result := SkillsMatch([]string{"Go", "Python"}, nil)

	assert.Equal(t, 0, result.Score)
	assert.Empty(t, result.Matching)
	assert.Empty(t, result.Missing)
}

func TestSkillsMatch_NoCandidateSkills(t *testing.T) {
	result := SkillsMatch(nil, []string{"Go", "AWS"})

	assert.Equal(t, 0, result.Score)
	assert.Empty(t, result.Matching)
	assert.ElementsMatch(t, []string{"Go", "AWS"}, result.Missing)
}

func TestSkillsMatch_FullCoverage(t *testing.T) {
	result := SkillsMatch([]string{"Go", "PostgreSQL", "Docker"}, []string{"go", "postgresql"})

	assert.Equal(t, 100, result.Score)
	assert.Empty(t, result.Missing)
}

func TestSkillsMatch_EmptyStringsNeverMatch(t *testing.T) {
	result := SkillsMatch([]string{""}, []string{"Go"})

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, []string{"Go"}, result.Missing)
}

func TestSkillsResult_CoveredSkillsPartitionsRequired(t *testing.T) {
	required := []string{"react", "node", "aws"}
	result := SkillsMatch([]string{"React", "Node.js"}, required)

	covered := result.CoveredSkills(required)

	assert.Equal(t, []string{"react", "node"}, covered)
	assert.Len(t, covered, len(required)-len(result.Missing))
}
