package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/talent-matcher/internal/types"
)

func TestSalaryMatch_MissingDataIsNeutral(t *testing.T) {
	result := SalaryMatch(nil, &types.SalaryRange{Min: 50000, Max: 70000})

	assert.Equal(t, 75, result.Score)
	assert.Equal(t, "No salary information available", result.Reason)

	result = SalaryMatch(&types.SalaryRange{Min: 50000, Max: 70000}, nil)
	assert.Equal(t, 75, result.Score)
}

func TestSalaryMatch_OverlappingRanges(t *testing.T) {
	candidate := &types.SalaryRange{Min: 60000, Max: 80000}
	job := &types.SalaryRange{Min: 70000, Max: 90000}

	result := SalaryMatch(candidate, job)

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, "Salary expectations align", result.Reason)
}

func TestSalaryMatch_CandidateExpectsMore(t *testing.T) {
	candidate := &types.SalaryRange{Min: 100000, Max: 120000}
	job := &types.SalaryRange{Min: 60000, Max: 80000}

	result := SalaryMatch(candidate, job)

	assert.Equal(t, 30, result.Score)
	assert.Equal(t, "Candidate expectations higher than offered", result.Reason)
}

func TestSalaryMatch_CandidateExpectsLess(t *testing.T) {
	candidate := &types.SalaryRange{Min: 40000, Max: 50000}
	job := &types.SalaryRange{Min: 60000, Max: 80000}

	result := SalaryMatch(candidate, job)

	assert.Equal(t, 60, result.Score)
	assert.Equal(t, "Candidate expectations lower than offered", result.Reason)
}

func TestSalaryMatch_OnlyFourScoresReachable(t *testing.T) {
	ranges := []*types.SalaryRange{
		nil,
		{Min: 0, Max: 10},
		{Min: 5, Max: 15},
		{Min: 100, Max: 200},
	}

	for _, candidate := range ranges {
		for _, job := range ranges {
			result := SalaryMatch(candidate, job)
			assert.Contains(t, []int{30, 60, 75, 100}, result.Score)
		}
	}
}
