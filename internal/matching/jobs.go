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

	"github.com/jonathan/talent-matcher/internal/scoring"
	"github.com/jonathan/talent-matcher/internal/types"
)

// preferencesScore is a flat placeholder until candidate preference data
// (remote, industry, company size) is part of the profile.
const preferencesScore = 75

// FindMatchingJobs ranks the job pool for a candidate. Structure mirrors
// FindMatchingCandidates, with a salary sub-score added, the
// candidate-focused weighting profile, and a lower acceptance threshold.
func (s *Service) FindMatchingJobs(ctx context.Context, req *types.JobSearchRequest) (*types.JobSearchResult, error) {
	start := time.Now()

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid job search request: %w", err)
	}
	if s.jobs == nil {
		return nil, ErrNoJobPool
	}

	requestID := uuid.NewString()
	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = s.cfg.JobResults
	}

	pool, err := s.jobs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}

	candidateVec := s.embedAnchor(ctx, BuildCandidateText(req.Candidate), "candidate", requestID)

	var mu sync.Mutex
	var matches []types.JobMatch

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.MaxConcurrency)

	for _, job := range pool {
		if gctx.Err() != nil {
			break
		}
		job := job
		g.Go(func() error {
			match, ok := s.scoreJobPair(gctx, req.Candidate, job, candidateVec)
			if !ok {
				return nil
			}
			mu.Lock()
			matches = append(matches, match)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	totalFound := len(matches)
	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}

	s.logger.Info("job search complete",
		zap.String("requestId", requestID),
		zap.String("candidateId", req.Candidate.ID),
		zap.Int("totalFound", totalFound),
		zap.Int("returned", len(matches)),
	)

	return &types.JobSearchResult{
		RequestID:        requestID,
		Jobs:             matches,
		TotalFound:       totalFound,
		Insights:         jobSearchInsights(req.Candidate, matches),
		ProcessingTimeMS: time.Since(start).Milliseconds(),
		Recommendations:  jobSearchRecommendations(matches),
	}, nil
}

// scoreJobPair scores a single job posting for the candidate, using the
// candidate-focused weighting profile.
func (s *Service) scoreJobPair(ctx context.Context, candidate *types.CandidateProfile, job *types.JobPosting, candidateVec []float32) (types.JobMatch, bool) {
	scores := make(map[scoring.Component]float64)

	if candidateVec != nil {
		similarity, err := s.pairSimilarity(ctx, BuildJobText(job), candidateVec)
		if err != nil {
			s.logger.Warn("skipping job",
				zap.String("jobId", job.ID),
				zap.Error(err),
			)
			return types.JobMatch{}, false
		}
		scores[scoring.ComponentSemantic] = similarity * 100
	}

	skillsRes := scoring.SkillsMatch(candidate.Skills, job.Skills)
	expRes := scoring.ExperienceMatch(candidate.TotalExperience, job.RequiredExperience)
	salaryRes := scoring.SalaryMatch(candidate.SalaryRange, job.Salary)
	locScore := scoring.LocationMatch(candidate.Location, job.Location, scoring.LocationMismatchCandidateSide)

	scores[scoring.ComponentSkills] = float64(skillsRes.Score)
	scores[scoring.ComponentExperience] = float64(expRes.Score)
	scores[scoring.ComponentSalary] = float64(salaryRes.Score)
	scores[scoring.ComponentLocation] = float64(locScore)
	scores[scoring.ComponentPreferences] = preferencesScore

	score := scoring.RoundScore(scoring.WeightedScore(scores, scoring.CandidateFocused))
	if score < s.cfg.JobThreshold {
		return types.JobMatch{}, false
	}

	return types.JobMatch{
		JobID:       job.ID,
		Job:         job,
		Score:       score,
		Breakdown:   breakdownFromScores(scores),
		Reasons:     jobMatchReasons(skillsRes.Score, expRes.Score, salaryRes.Score),
		SalaryScore: salaryRes.Score,
		SalaryNote:  salaryRes.Reason,
	}, true
}
