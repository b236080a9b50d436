package matching

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-matcher/internal/types"
)

func TestFindMatchingCandidates_RanksByScoreDescending(t *testing.T) {
	service := newTestService(&stubEmbedder{}, []*types.CandidateProfile{
		weakCandidate(), strongCandidate(), mediumCandidate(),
	}, nil)

	result, err := service.FindMatchingCandidates(context.Background(), &types.CandidateSearchRequest{
		Job: fixtureJob(),
	})

	require.NoError(t, err)
	require.Len(t, result.Candidates, 3)
	assert.Equal(t, "cand-strong", result.Candidates[0].CandidateID)
	for i := 1; i < len(result.Candidates); i++ {
		assert.GreaterOrEqual(t, result.Candidates[i-1].Score, result.Candidates[i].Score)
	}
	assert.Equal(t, 3, result.TotalFound)
	assert.Equal(t, AlgorithmVersion, result.AlgorithmVersion)
	assert.NotEmpty(t, result.RequestID)
}

func TestFindMatchingCandidates_RespectsMaxResults(t *testing.T) {
	service := newTestService(&stubEmbedder{}, []*types.CandidateProfile{
		weakCandidate(), strongCandidate(), mediumCandidate(),
	}, nil)

	result, err := service.FindMatchingCandidates(context.Background(), &types.CandidateSearchRequest{
		Job:        fixtureJob(),
		MaxResults: 1,
	})

	require.NoError(t, err)
	require.Len(t, result.Candidates, 1)
	assert.Equal(t, "cand-strong", result.Candidates[0].CandidateID)
	// TotalFound still reports everything that cleared the threshold.
	assert.Equal(t, 3, result.TotalFound)
}

func TestFindMatchingCandidates_ThresholdExcludesWeakMatches(t *testing.T) {
	// With embeddings unavailable the weak candidate's rule-based score
	// falls below the acceptance threshold.
	service := newTestService(&stubEmbedder{failAll: true}, []*types.CandidateProfile{
		strongCandidate(), weakCandidate(),
	}, nil)

	result, err := service.FindMatchingCandidates(context.Background(), &types.CandidateSearchRequest{
		Job: fixtureJob(),
	})

	require.NoError(t, err)
	require.Len(t, result.Candidates, 1)
	assert.Equal(t, "cand-strong", result.Candidates[0].CandidateID)
}

func TestFindMatchingCandidates_AnchorFailureDegradesToRuleBased(t *testing.T) {
	service := newTestService(&stubEmbedder{failAll: true}, []*types.CandidateProfile{
		strongCandidate(),
	}, nil)

	result, err := service.FindMatchingCandidates(context.Background(), &types.CandidateSearchRequest{
		Job: fixtureJob(),
	})

	require.NoError(t, err)
	require.Len(t, result.Candidates, 1)
	assert.NotContains(t, result.Candidates[0].Breakdown, "semantic")
	assert.Contains(t, result.Candidates[0].Breakdown, "skills")
}

func TestFindMatchingCandidates_PairFailureSkipsOnlyThatCandidate(t *testing.T) {
	flaky := strongCandidate()
	flaky.ID = "cand-flaky"
	flaky.Summary = "embedding-outage-marker"

	service := newTestService(&stubEmbedder{failMarker: "embedding-outage-marker"}, []*types.CandidateProfile{
		strongCandidate(), flaky, mediumCandidate(),
	}, nil)

	result, err := service.FindMatchingCandidates(context.Background(), &types.CandidateSearchRequest{
		Job: fixtureJob(),
	})

	require.NoError(t, err)
	ids := make([]string, 0, len(result.Candidates))
	for _, match := range result.Candidates {
		ids = append(ids, match.CandidateID)
	}
	assert.NotContains(t, ids, "cand-flaky")
	assert.Contains(t, ids, "cand-strong")
	assert.Contains(t, ids, "cand-medium")
}

func TestFindMatchingCandidates_SemanticScoreInBreakdown(t *testing.T) {
	service := newTestService(&stubEmbedder{}, []*types.CandidateProfile{strongCandidate()}, nil)

	result, err := service.FindMatchingCandidates(context.Background(), &types.CandidateSearchRequest{
		Job: fixtureJob(),
	})

	require.NoError(t, err)
	require.Len(t, result.Candidates, 1)
	// Stub vectors are identical, so similarity is 1.0.
	assert.Equal(t, 100, result.Candidates[0].Breakdown["semantic"])
}

func TestFindMatchingCandidates_ConfidenceWithinBounds(t *testing.T) {
	service := newTestService(&stubEmbedder{}, []*types.CandidateProfile{
		strongCandidate(), mediumCandidate(), weakCandidate(),
	}, nil)

	result, err := service.FindMatchingCandidates(context.Background(), &types.CandidateSearchRequest{
		Job: fixtureJob(),
	})

	require.NoError(t, err)
	for _, match := range result.Candidates {
		assert.GreaterOrEqual(t, match.Confidence, 30)
		assert.LessOrEqual(t, match.Confidence, 95)
	}
}

func TestFindMatchingCandidates_NoPoolConfigured(t *testing.T) {
	service := NewService(&stubEmbedder{}, nil, nil, nil, Config{})

	_, err := service.FindMatchingCandidates(context.Background(), &types.CandidateSearchRequest{
		Job: fixtureJob(),
	})

	assert.ErrorIs(t, err, ErrNoCandidatePool)
}

func TestFindMatchingCandidates_InvalidRequest(t *testing.T) {
	service := newTestService(&stubEmbedder{}, []*types.CandidateProfile{strongCandidate()}, nil)

	_, err := service.FindMatchingCandidates(context.Background(), &types.CandidateSearchRequest{})

	assert.Error(t, err)
}

func TestFindMatchingCandidates_SkillsHeavyProfileChangesScores(t *testing.T) {
	candidates := []*types.CandidateProfile{mediumCandidate()}

	comprehensive, err := newTestService(&stubEmbedder{}, candidates, nil).
		FindMatchingCandidates(context.Background(), &types.CandidateSearchRequest{Job: fixtureJob()})
	require.NoError(t, err)

	skillsHeavy, err := newTestService(&stubEmbedder{}, candidates, nil).
		FindMatchingCandidates(context.Background(), &types.CandidateSearchRequest{
			Job:     fixtureJob(),
			Profile: "skills_heavy",
		})
	require.NoError(t, err)

	require.Len(t, comprehensive.Candidates, 1)
	require.Len(t, skillsHeavy.Candidates, 1)
	// The medium candidate's weakest component is skills, so weighting
	// skills at 0.50 must lower the overall score.
	assert.Less(t, skillsHeavy.Candidates[0].Score, comprehensive.Candidates[0].Score)
}
