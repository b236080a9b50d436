package matching

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-matcher/internal/types"
)

func bulkRequest(candidates ...types.BulkCandidate) *types.BulkMatchRequest {
	return &types.BulkMatchRequest{
		Candidates:     candidates,
		JobDescription: backendDescription,
	}
}

func TestBulkMatchCandidates_OneFailureDoesNotAbortTheRun(t *testing.T) {
	flaky := strongCandidate()
	flaky.ID = "cand-flaky"
	flaky.Summary = "embedding-outage-marker"

	service := newTestService(&stubEmbedder{failMarker: "embedding-outage-marker"}, nil, nil)

	result, err := service.BulkMatchCandidates(context.Background(), bulkRequest(
		types.BulkCandidate{FileName: "a.json", Profile: strongCandidate()},
		types.BulkCandidate{FileName: "b.json", Profile: flaky},
		types.BulkCandidate{FileName: "c.json", Profile: mediumCandidate()},
	))

	require.NoError(t, err)
	require.Len(t, result.Matches, 3)
	assert.Equal(t, 3, result.Summary.TotalProcessed)
	assert.Equal(t, 2, result.Summary.SuccessfulMatches)

	// The failed candidate appears as a zero-score entry with the error.
	failed := result.Matches[len(result.Matches)-1]
	assert.Equal(t, "cand-flaky", failed.CandidateID)
	assert.Equal(t, 0, failed.Score)
	assert.NotEmpty(t, failed.Error)
}

func TestBulkMatchCandidates_RankedDescending(t *testing.T) {
	service := newTestService(&stubEmbedder{}, nil, nil)

	result, err := service.BulkMatchCandidates(context.Background(), bulkRequest(
		types.BulkCandidate{FileName: "weak.json", Profile: weakCandidate()},
		types.BulkCandidate{FileName: "strong.json", Profile: strongCandidate()},
		types.BulkCandidate{FileName: "medium.json", Profile: mediumCandidate()},
	))

	require.NoError(t, err)
	require.Len(t, result.Matches, 3)
	for i := 1; i < len(result.Matches); i++ {
		assert.GreaterOrEqual(t, result.Matches[i-1].Score, result.Matches[i].Score)
	}
}

func TestBulkMatchCandidates_SummaryAggregates(t *testing.T) {
	service := newTestService(&stubEmbedder{}, nil, nil)

	result, err := service.BulkMatchCandidates(context.Background(), bulkRequest(
		types.BulkCandidate{Profile: strongCandidate()},
		types.BulkCandidate{Profile: mediumCandidate()},
	))

	require.NoError(t, err)
	assert.Equal(t, result.Matches[0].Score, result.Summary.TopScore)
	expectedAvg := (result.Matches[0].Score + result.Matches[1].Score) / 2
	assert.Equal(t, expectedAvg, result.Summary.AverageScore)
	assert.GreaterOrEqual(t, result.Summary.RecommendedCandidates, 0)
}

func TestBulkMatchCandidates_ExportFormats(t *testing.T) {
	service := newTestService(&stubEmbedder{}, nil, nil)

	result, err := service.BulkMatchCandidates(context.Background(), bulkRequest(
		types.BulkCandidate{Profile: strongCandidate()},
	))

	require.NoError(t, err)
	assert.Equal(t, []string{"pdf", "xlsx", "csv"}, result.ExportFormats)
	assert.NotEmpty(t, result.Recommendations)
}

func TestBulkMatchCandidates_IncludeReports(t *testing.T) {
	service := newTestService(&stubEmbedder{}, nil, nil)

	result, err := service.BulkMatchCandidates(context.Background(), &types.BulkMatchRequest{
		Candidates: []types.BulkCandidate{
			{FileName: "strong.json", Profile: strongCandidate()},
			{FileName: "medium.json", Profile: mediumCandidate()},
		},
		JobDescription: backendDescription,
		IncludeReports: true,
	})

	require.NoError(t, err)
	require.Len(t, result.Reports, 2)
	assert.Equal(t, result.Matches[0].CandidateID, result.Reports[0].CandidateID)
	require.NotNil(t, result.Reports[0].Analysis)
	assert.Equal(t, result.Matches[0].Score, result.Reports[0].Analysis.OverallScore)
}

func TestBulkMatchCandidates_LoadErrorBecomesFailedEntry(t *testing.T) {
	service := newTestService(&stubEmbedder{}, nil, nil)

	result, err := service.BulkMatchCandidates(context.Background(), bulkRequest(
		types.BulkCandidate{Profile: strongCandidate()},
		types.BulkCandidate{
			FileName: "broken.json",
			Profile:  &types.CandidateProfile{ID: "broken.json"},
			LoadErr:  "unexpected end of JSON input",
		},
	))

	require.NoError(t, err)
	require.Len(t, result.Matches, 2)
	assert.Equal(t, 1, result.Summary.SuccessfulMatches)
	failed := result.Matches[1]
	assert.Equal(t, "unexpected end of JSON input", failed.Error)
	assert.Equal(t, 0, failed.Score)
}

func TestBulkMatchCandidates_RequiresAtLeastOneCandidate(t *testing.T) {
	service := newTestService(&stubEmbedder{}, nil, nil)

	_, err := service.BulkMatchCandidates(context.Background(), &types.BulkMatchRequest{
		JobDescription: backendDescription,
	})

	assert.Error(t, err)
}
