package matching

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-matcher/internal/types"
)

func designJob() *types.JobPosting {
	return &types.JobPosting{
		ID:                 "job-design",
		Title:              "Product Designer",
		Description:        "Product designer working in Figma and Sketch.",
		Skills:             []string{"Figma", "Sketch"},
		RequiredExperience: 10,
		Location:           "Remote",
		Salary:             &types.SalaryRange{Min: 30000, Max: 40000},
	}
}

func TestFindMatchingJobs_RanksByScoreDescending(t *testing.T) {
	service := newTestService(&stubEmbedder{}, nil, []*types.JobPosting{
		designJob(), fixtureJob(),
	})

	result, err := service.FindMatchingJobs(context.Background(), &types.JobSearchRequest{
		Candidate: strongCandidate(),
	})

	require.NoError(t, err)
	require.Len(t, result.Jobs, 2)
	assert.Equal(t, "job-1", result.Jobs[0].JobID)
	assert.Greater(t, result.Jobs[0].Score, result.Jobs[1].Score)
	assert.Equal(t, 2, result.TotalFound)
	assert.NotEmpty(t, result.Insights)
}

func TestFindMatchingJobs_RespectsMaxResults(t *testing.T) {
	service := newTestService(&stubEmbedder{}, nil, []*types.JobPosting{
		designJob(), fixtureJob(),
	})

	result, err := service.FindMatchingJobs(context.Background(), &types.JobSearchRequest{
		Candidate:  strongCandidate(),
		MaxResults: 1,
	})

	require.NoError(t, err)
	require.Len(t, result.Jobs, 1)
	assert.Equal(t, 2, result.TotalFound)
}

func TestFindMatchingJobs_SalaryScoreAndNote(t *testing.T) {
	service := newTestService(&stubEmbedder{}, nil, []*types.JobPosting{fixtureJob()})

	result, err := service.FindMatchingJobs(context.Background(), &types.JobSearchRequest{
		Candidate: strongCandidate(),
	})

	require.NoError(t, err)
	require.Len(t, result.Jobs, 1)
	assert.Equal(t, 100, result.Jobs[0].SalaryScore)
	assert.Equal(t, "Salary expectations align", result.Jobs[0].SalaryNote)
}

func TestFindMatchingJobs_PreferencesPlaceholderInBreakdown(t *testing.T) {
	service := newTestService(&stubEmbedder{}, nil, []*types.JobPosting{fixtureJob()})

	result, err := service.FindMatchingJobs(context.Background(), &types.JobSearchRequest{
		Candidate: strongCandidate(),
	})

	require.NoError(t, err)
	require.Len(t, result.Jobs, 1)
	assert.Equal(t, preferencesScore, result.Jobs[0].Breakdown["preferences"])
}

func TestFindMatchingJobs_AnchorFailureDegradesToRuleBased(t *testing.T) {
	service := newTestService(&stubEmbedder{failAll: true}, nil, []*types.JobPosting{fixtureJob()})

	result, err := service.FindMatchingJobs(context.Background(), &types.JobSearchRequest{
		Candidate: strongCandidate(),
	})

	require.NoError(t, err)
	require.Len(t, result.Jobs, 1)
	assert.NotContains(t, result.Jobs[0].Breakdown, "semantic")
}

func TestFindMatchingJobs_NoPoolConfigured(t *testing.T) {
	service := NewService(&stubEmbedder{}, nil, nil, nil, Config{})

	_, err := service.FindMatchingJobs(context.Background(), &types.JobSearchRequest{
		Candidate: strongCandidate(),
	})

	assert.ErrorIs(t, err, ErrNoJobPool)
}

func TestFindMatchingJobs_InvalidRequest(t *testing.T) {
	service := newTestService(&stubEmbedder{}, nil, []*types.JobPosting{fixtureJob()})

	_, err := service.FindMatchingJobs(context.Background(), &types.JobSearchRequest{})

	assert.Error(t, err)
}

func TestFindMatchingJobs_MatchReasonsForGoodFit(t *testing.T) {
	service := newTestService(&stubEmbedder{}, nil, []*types.JobPosting{fixtureJob()})

	result, err := service.FindMatchingJobs(context.Background(), &types.JobSearchRequest{
		Candidate: strongCandidate(),
	})

	require.NoError(t, err)
	require.Len(t, result.Jobs, 1)
	assert.Contains(t, result.Jobs[0].Reasons, "Your skills match this role well")
	assert.Contains(t, result.Jobs[0].Reasons, "Salary aligns with your expectations")
	assert.Contains(t, result.Jobs[0].Reasons, "Your experience level fits")
}
