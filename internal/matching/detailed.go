package matching

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/talent-matcher/internal/parsing"
	"github.com/jonathan/talent-matcher/internal/scoring"
	"github.com/jonathan/talent-matcher/internal/types"
)

// Gap severities by component. A skills deficit is harder to close inside
// one hiring cycle than an experience shortfall.
const (
	gapThreshold      = 60
	strengthThreshold = 70
	severityHigh      = "high"
	severityMedium    = "medium"
	recommendedScore  = 70 // bulk summary: entries at or above count as recommended
)

// CalculateDetailedMatch produces a deep single-pair breakdown of one
// candidate against a free-text job description, deriving the implicit
// requirements from the text first. Embedding failures degrade the result
// to rule-based-only scoring; they never fail the request.
func (s *Service) CalculateDetailedMatch(ctx context.Context, req *types.DetailedMatchRequest) (*types.DetailedMatchResult, error) {
	start := time.Now()

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid detailed match request: %w", err)
	}

	requestID := uuid.NewString()
	reqs := parsing.ParseJobRequirements(req.JobDescription)

	jobVec := s.embedAnchor(ctx, req.JobDescription, "job-description", requestID)

	result, err := s.scoreDetailedPair(ctx, req.Candidate, reqs, jobVec, req.IncludeRecommendations)
	if err != nil {
		// The candidate-side embedding failed; score the pair without
		// the semantic component rather than failing the request.
		s.logger.Warn("degrading detailed match to rule-based scoring",
			zap.String("requestId", requestID),
			zap.String("candidateId", req.Candidate.ID),
			zap.Error(err),
		)
		result, _ = s.scoreDetailedPair(ctx, req.Candidate, reqs, nil, req.IncludeRecommendations)
	}

	result.RequestID = requestID
	result.ProcessingTimeMS = time.Since(start).Milliseconds()
	return result, nil
}

// scoreDetailedPair computes the full breakdown for one candidate against
// derived job requirements. With a nil anchor vector no embedding call is
// issued and the semantic component is omitted; the weighted scorer skips
// absent components. The only returnable error is a failed candidate-side
// embedding.
func (s *Service) scoreDetailedPair(ctx context.Context, candidate *types.CandidateProfile, reqs *types.JobRequirements, jobVec []float32, includeRecommendations bool) (*types.DetailedMatchResult, error) {
	scores := make(map[scoring.Component]float64)

	if jobVec != nil {
		similarity, err := s.pairSimilarity(ctx, BuildCandidateText(candidate), jobVec)
		if err != nil {
			return nil, err
		}
		scores[scoring.ComponentSemantic] = similarity * 100
	}

	skillsRes := scoring.SkillsMatch(candidate.Skills, reqs.Skills)
	expRes := scoring.ExperienceMatch(candidate.TotalExperience, reqs.Experience)
	eduScore := scoring.EducationMatch(candidate.Education, reqs.Education)

	scores[scoring.ComponentSkills] = float64(skillsRes.Score)
	scores[scoring.ComponentExperience] = float64(expRes.Score)
	scores[scoring.ComponentEducation] = float64(eduScore)

	overall := scoring.RoundScore(scoring.WeightedScore(scores, scoring.Comprehensive))
	breakdown := breakdownFromScores(scores)

	gaps := identifyGaps(skillsRes.Score, expRes.Score)

	var recommendations []types.Recommendation
	if includeRecommendations || len(gaps) > 0 {
		recommendations = gapRecommendations(gaps)
	}

	var componentScores []float64
	for _, score := range breakdown {
		componentScores = append(componentScores, float64(score))
	}

	return &types.DetailedMatchResult{
		OverallScore:    overall,
		Breakdown:       breakdown,
		SkillsMatching:  skillsRes.Matching,
		SkillsMissing:   skillsRes.Missing,
		Strengths:       identifyStrengths(breakdown),
		Gaps:            gaps,
		GapAnalysis:     buildGapAnalysis(skillsRes, reqs.Skills, recommendations),
		Recommendations: recommendations,
		Confidence:      scoring.MeanConfidence(componentScores),
	}, nil
}

// identifyStrengths lists the components scoring at or above the strength
// threshold.
func identifyStrengths(breakdown map[string]int) []string {
	var strengths []string

	if breakdown[string(scoring.ComponentSkills)] >= strengthThreshold {
		strengths = append(strengths, "Strong skill match")
	}
	if breakdown[string(scoring.ComponentExperience)] >= strengthThreshold {
		strengths = append(strengths, "Excellent experience fit")
	}
	if breakdown[string(scoring.ComponentEducation)] >= strengthThreshold {
		strengths = append(strengths, "Solid education background")
	}
	if score, ok := breakdown[string(scoring.ComponentSemantic)]; ok && score >= strengthThreshold {
		strengths = append(strengths, "High semantic similarity")
	}

	return strengths
}

// identifyGaps lists the components scoring below the gap threshold.
func identifyGaps(skillsScore, experienceScore int) []types.Gap {
	var gaps []types.Gap

	if skillsScore < gapThreshold {
		gaps = append(gaps, types.Gap{
			Component: string(scoring.ComponentSkills),
			Severity:  severityHigh,
			Score:     skillsScore,
		})
	}
	if experienceScore < gapThreshold {
		gaps = append(gaps, types.Gap{
			Component: string(scoring.ComponentExperience),
			Severity:  severityMedium,
			Score:     experienceScore,
		})
	}

	return gaps
}

// gapRecommendations produces one remediation suggestion per gap.
func gapRecommendations(gaps []types.Gap) []types.Recommendation {
	recommendations := make([]types.Recommendation, 0, len(gaps))
	for _, gap := range gaps {
		recommendations = append(recommendations, types.Recommendation{
			Component: gap.Component,
			Text:      fmt.Sprintf("Improve %s to better match job requirements", gap.Component),
			Priority:  gap.Severity,
		})
	}
	return recommendations
}

// buildGapAnalysis partitions the required skills into matching and
// missing sets. The gap score is the degree of skill deficit.
func buildGapAnalysis(skillsRes scoring.SkillsResult, requiredSkills []string, recommendations []types.Recommendation) *types.GapAnalysis {
	gapScore := 100 - skillsRes.Score
	if gapScore < 0 {
		gapScore = 0
	}

	return &types.GapAnalysis{
		RequiredSkills:  requiredSkills,
		MatchingSkills:  skillsRes.CoveredSkills(requiredSkills),
		MissingSkills:   skillsRes.Missing,
		GapScore:        gapScore,
		Recommendations: recommendations,
	}
}
