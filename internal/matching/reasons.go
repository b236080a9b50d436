package matching

import (
	"fmt"

	"github.com/jonathan/talent-matcher/internal/types"
)

// candidateMatchReasons explains a candidate match to a recruiter.
func candidateMatchReasons(skillsScore, experienceScore, locationScore int) []string {
	var reasons []string
	if skillsScore >= 70 {
		reasons = append(reasons, "Strong skill match")
	}
	if experienceScore >= 80 {
		reasons = append(reasons, "Experience level fits the role")
	}
	if locationScore == 100 {
		reasons = append(reasons, "Located in the job's area")
	}
	return reasons
}

// jobMatchReasons explains a job recommendation to a candidate.
func jobMatchReasons(skillsScore, experienceScore, salaryScore int) []string {
	var reasons []string
	if skillsScore >= 70 {
		reasons = append(reasons, "Your skills match this role well")
	}
	if salaryScore >= 80 {
		reasons = append(reasons, "Salary aligns with your expectations")
	}
	if experienceScore >= 60 {
		reasons = append(reasons, "Your experience level fits")
	}
	return reasons
}

// recruitmentRecommendations suggests search adjustments when a candidate
// search comes back thin or weak.
func recruitmentRecommendations(matches []types.CandidateMatch) []string {
	var recommendations []string

	if len(matches) < 5 {
		recommendations = append(recommendations,
			"Few matches found. Consider broadening the required skills or relaxing the experience requirement.")
	}
	if avg := averageCandidateScore(matches); len(matches) > 0 && avg < 60 {
		recommendations = append(recommendations,
			"Match quality is low. The role requirements may be too narrow for the current candidate pool.")
	}

	return recommendations
}

// jobSearchInsights summarizes how the candidate's profile performed
// against the job pool.
func jobSearchInsights(candidate *types.CandidateProfile, matches []types.JobMatch) []string {
	var insights []string

	if len(matches) == 0 {
		insights = append(insights, "No jobs cleared the match threshold for this profile.")
		return insights
	}

	insights = append(insights,
		fmt.Sprintf("Found %d matching jobs for your profile.", len(matches)))

	strongSkillFits := 0
	for _, match := range matches {
		if match.Breakdown["skills"] >= 70 {
			strongSkillFits++
		}
	}
	if strongSkillFits > 0 {
		insights = append(insights,
			fmt.Sprintf("%d of them are strong skill fits.", strongSkillFits))
	}
	if len(candidate.Skills) < 5 {
		insights = append(insights,
			"Adding more skills to your profile may surface additional matches.")
	}

	return insights
}

// jobSearchRecommendations suggests profile improvements when the job
// search comes back thin or weak.
func jobSearchRecommendations(matches []types.JobMatch) []string {
	var recommendations []string

	if len(matches) < 3 {
		recommendations = append(recommendations,
			"Few matches found. Consider expanding your skills list or widening your location preference.")
	}
	if avg := averageJobScore(matches); len(matches) > 0 && avg < 60 {
		recommendations = append(recommendations,
			"Match quality is low. Updating your summary and skills may improve results.")
	}

	return recommendations
}

// bulkRecommendations is the standing guidance attached to every bulk
// screening run.
func bulkRecommendations(summary types.BulkMatchSummary) []string {
	recommendations := []string{
		"Review top candidates for interview scheduling",
		"Consider skill development programs for promising candidates with gaps",
		"Export detailed reports for hiring team review",
	}
	if summary.RecommendedCandidates == 0 && summary.SuccessfulMatches > 0 {
		recommendations = append(recommendations,
			"No candidate scored in the recommended range; consider widening the sourcing pool.")
	}
	return recommendations
}

func averageCandidateScore(matches []types.CandidateMatch) int {
	if len(matches) == 0 {
		return 0
	}
	sum := 0
	for _, match := range matches {
		sum += match.Score
	}
	return sum / len(matches)
}

func averageJobScore(matches []types.JobMatch) int {
	if len(matches) == 0 {
		return 0
	}
	sum := 0
	for _, match := range matches {
		sum += match.Score
	}
	return sum / len(matches)
}
