package matching

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/talent-matcher/internal/parsing"
	"github.com/jonathan/talent-matcher/internal/types"
)

// bulkExportFormats lists the report formats downstream tooling accepts.
var bulkExportFormats = []string{"pdf", "xlsx", "csv"}

// BulkMatchCandidates screens a batch of candidates against one job
// description. Individual candidate failures never abort the run; they
// appear as zero-score entries with the error recorded, so the caller
// always gets one entry per submitted candidate.
func (s *Service) BulkMatchCandidates(ctx context.Context, req *types.BulkMatchRequest) (*types.BulkMatchResult, error) {
	start := time.Now()

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid bulk match request: %w", err)
	}

	requestID := uuid.NewString()
	reqs := parsing.ParseJobRequirements(req.JobDescription)
	jobVec := s.embedAnchor(ctx, req.JobDescription, "job-description", requestID)

	entries := make([]types.BulkMatchEntry, len(req.Candidates))
	analyses := make([]*types.DetailedMatchResult, len(req.Candidates))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.MaxConcurrency)

	for i, candidate := range req.Candidates {
		i, candidate := i, candidate
		g.Go(func() error {
			entry, analysis := s.screenCandidate(gctx, candidate, reqs, jobVec)
			mu.Lock()
			entries[i] = entry
			analyses[i] = analysis
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	order := make([]int, len(entries))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return entries[order[a]].Score > entries[order[b]].Score
	})

	ranked := make([]types.BulkMatchEntry, 0, len(entries))
	var reports []types.BulkMatchReport
	for _, idx := range order {
		ranked = append(ranked, entries[idx])
		if req.IncludeReports && analyses[idx] != nil {
			reports = append(reports, types.BulkMatchReport{
				FileName:        entries[idx].FileName,
				CandidateID:     entries[idx].CandidateID,
				Analysis:        analyses[idx],
				Recommendations: analyses[idx].Recommendations,
			})
		}
	}

	summary := summarizeBulkRun(ranked)

	s.logger.Info("bulk screening complete",
		zap.String("requestId", requestID),
		zap.Int("totalProcessed", summary.TotalProcessed),
		zap.Int("successfulMatches", summary.SuccessfulMatches),
		zap.Int("topScore", summary.TopScore),
	)

	return &types.BulkMatchResult{
		RequestID:        requestID,
		Matches:          ranked,
		Summary:          summary,
		Reports:          reports,
		Recommendations:  bulkRecommendations(summary),
		ExportFormats:    bulkExportFormats,
		ProcessingTimeMS: time.Since(start).Milliseconds(),
	}, nil
}

// screenCandidate scores one bulk candidate. A scoring failure yields a
// zero-score entry carrying the error text and a nil analysis.
func (s *Service) screenCandidate(ctx context.Context, candidate types.BulkCandidate, reqs *types.JobRequirements, jobVec []float32) (types.BulkMatchEntry, *types.DetailedMatchResult) {
	if candidate.LoadErr != "" {
		return types.BulkMatchEntry{
			FileName:    candidate.FileName,
			CandidateID: candidate.Profile.ID,
			Score:       0,
			Error:       candidate.LoadErr,
		}, nil
	}

	analysis, err := s.scoreDetailedPair(ctx, candidate.Profile, reqs, jobVec, true)
	if err != nil {
		s.logger.Warn("bulk candidate failed",
			zap.String("candidateId", candidate.Profile.ID),
			zap.String("fileName", candidate.FileName),
			zap.Error(err),
		)
		return types.BulkMatchEntry{
			FileName:    candidate.FileName,
			CandidateID: candidate.Profile.ID,
			Score:       0,
			Error:       err.Error(),
		}, nil
	}

	return types.BulkMatchEntry{
		FileName:    candidate.FileName,
		CandidateID: candidate.Profile.ID,
		Score:       analysis.OverallScore,
		Breakdown:   analysis.Breakdown,
		Strengths:   analysis.Strengths,
		Gaps:        analysis.Gaps,
		Confidence:  analysis.Confidence,
	}, analysis
}

// summarizeBulkRun aggregates the ranked entries. Failed entries count
// toward TotalProcessed only; the average is taken over successes.
func summarizeBulkRun(entries []types.BulkMatchEntry) types.BulkMatchSummary {
	summary := types.BulkMatchSummary{TotalProcessed: len(entries)}

	var scoreSum int
	for _, entry := range entries {
		if entry.Error != "" {
			continue
		}
		summary.SuccessfulMatches++
		scoreSum += entry.Score
		if entry.Score > summary.TopScore {
			summary.TopScore = entry.Score
		}
		if entry.Score >= recommendedScore {
			summary.RecommendedCandidates++
		}
	}
	if summary.SuccessfulMatches > 0 {
		summary.AverageScore = scoreSum / summary.SuccessfulMatches
	}

	return summary
}
