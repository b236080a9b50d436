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

	"github.com/jonathan/talent-matcher/internal/embedding"
	"github.com/jonathan/talent-matcher/internal/scoring"
	"github.com/jonathan/talent-matcher/internal/types"
)

// FindMatchingCandidates ranks the candidate pool against a job posting.
// Per-candidate failures are logged and skipped; the batch always returns
// the pairs that scored. If the job embedding itself fails, every pair
// degrades to rule-based-only scoring instead of failing the request.
func (s *Service) FindMatchingCandidates(ctx context.Context, req *types.CandidateSearchRequest) (*types.CandidateSearchResult, error) {
	start := time.Now()

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid candidate search request: %w", err)
	}
	if s.candidates == nil {
		return nil, ErrNoCandidatePool
	}

	requestID := uuid.NewString()
	profile := scoring.ParseProfile(req.Profile)
	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = s.cfg.CandidateResults
	}

	pool, err := s.candidates.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing candidates: %w", err)
	}

	jobVec := s.embedAnchor(ctx, BuildJobText(req.Job), "job", requestID)

	var mu sync.Mutex
	var matches []types.CandidateMatch

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.MaxConcurrency)

	for _, candidate := range pool {
		if gctx.Err() != nil {
			break // not-yet-started pairs are never issued after cancellation
		}
		candidate := candidate
		g.Go(func() error {
			match, ok := s.scoreCandidatePair(gctx, candidate, req.Job, jobVec, profile)
			if !ok {
				return nil
			}
			mu.Lock()
			matches = append(matches, match)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // per-pair failures never abort the batch

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	totalFound := len(matches)
	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}

	s.logger.Info("candidate search complete",
		zap.String("requestId", requestID),
		zap.String("jobId", req.Job.ID),
		zap.Int("totalFound", totalFound),
		zap.Int("returned", len(matches)),
	)

	return &types.CandidateSearchResult{
		RequestID:        requestID,
		Candidates:       matches,
		TotalFound:       totalFound,
		AlgorithmVersion: AlgorithmVersion,
		ProcessingTimeMS: time.Since(start).Milliseconds(),
		Recommendations:  recruitmentRecommendations(matches),
	}, nil
}

// embedAnchor embeds the anchor side of a batch (the job for a candidate
// search, the candidate for a job search). On failure it logs and returns
// nil, which switches the whole batch to rule-based-only scoring.
func (s *Service) embedAnchor(ctx context.Context, text, side, requestID string) []float32 {
	vec, err := s.embedder.Embed(ctx, text)
	if err != nil {
		s.logger.Warn("anchor embedding failed, continuing with rule-based scoring only",
			zap.String("requestId", requestID),
			zap.String("side", side),
			zap.Error(err),
		)
		return nil
	}
	return vec
}

// scoreCandidatePair scores a single candidate against the job. The second
// return value is false when the pair is skipped, either because scoring
// failed or because the score fell below the acceptance threshold.
func (s *Service) scoreCandidatePair(ctx context.Context, candidate *types.CandidateProfile, job *types.JobPosting, jobVec []float32, profile scoring.Profile) (types.CandidateMatch, bool) {
	scores := make(map[scoring.Component]float64)

	if jobVec != nil {
		similarity, err := s.pairSimilarity(ctx, BuildCandidateText(candidate), jobVec)
		if err != nil {
			s.logger.Warn("skipping candidate",
				zap.String("candidateId", candidate.ID),
				zap.Error(err),
			)
			return types.CandidateMatch{}, false
		}
		scores[scoring.ComponentSemantic] = similarity * 100
	}

	skillsRes := scoring.SkillsMatch(candidate.Skills, job.Skills)
	expRes := scoring.ExperienceMatch(candidate.TotalExperience, job.RequiredExperience)
	eduScore := scoring.EducationMatch(candidate.Education, job.Education)
	locScore := scoring.LocationMatch(candidate.Location, job.Location, scoring.LocationMismatchEmployerSide)

	scores[scoring.ComponentSkills] = float64(skillsRes.Score)
	scores[scoring.ComponentExperience] = float64(expRes.Score)
	scores[scoring.ComponentEducation] = float64(eduScore)
	scores[scoring.ComponentLocation] = float64(locScore)

	score := scoring.RoundScore(scoring.WeightedScore(scores, profile))
	if score < s.cfg.CandidateThreshold {
		return types.CandidateMatch{}, false
	}

	return types.CandidateMatch{
		CandidateID: candidate.ID,
		Candidate:   candidate,
		Score:       score,
		Breakdown:   breakdownFromScores(scores),
		Reasons:     candidateMatchReasons(skillsRes.Score, expRes.Score, locScore),
		Confidence: scoring.Confidence([]float64{
			float64(skillsRes.Score),
			float64(expRes.Score),
			float64(eduScore),
			float64(locScore),
		}),
	}, true
}

// pairSimilarity embeds the pair side of a comparison and returns its
// cosine similarity with the anchor vector.
func (s *Service) pairSimilarity(ctx context.Context, text string, anchorVec []float32) (float64, error) {
	vec, err := s.embedder.Embed(ctx, text)
	if err != nil {
		return 0, err
	}
	return embedding.CosineSimilarity(anchorVec, vec)
}

// breakdownFromScores converts the float component map into the integer
// breakdown reported to callers.
func breakdownFromScores(scores map[scoring.Component]float64) map[string]int {
	breakdown := make(map[string]int, len(scores))
	for component, score := range scores {
		breakdown[string(component)] = scoring.RoundScore(score)
	}
	return breakdown
}
