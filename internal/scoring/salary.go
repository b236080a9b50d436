package scoring

import "github.com/jonathan/talent-matcher/internal/types"

// SalaryResult holds the outcome of a salary comparison.
type SalaryResult struct {
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}

// SalaryMatch scores the fit between a candidate's desired range and a
// job's offered range. The only reachable scores are 30, 60, 75, and 100.
// Missing range data on either side yields a neutral 75, not an error.
func SalaryMatch(candidateRange, jobRange *types.SalaryRange) SalaryResult {
	if candidateRange == nil || jobRange == nil {
		return SalaryResult{Score: 75, Reason: "No salary information available"}
	}

	if candidateRange.Overlaps(jobRange) {
		return SalaryResult{Score: 100, Reason: "Salary expectations align"}
	}

	if candidateRange.Min > jobRange.Max {
		return SalaryResult{Score: 30, Reason: "Candidate expectations higher than offered"}
	}

	return SalaryResult{Score: 60, Reason: "Candidate expectations lower than offered"}
}
