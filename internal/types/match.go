package types

// CandidateMatch is one entry in a candidates-for-job result set.
type CandidateMatch struct {
	CandidateID string            `json:"candidate_id"`
	Candidate   *CandidateProfile `json:"candidate,omitempty"`
	Score       int               `json:"match_score"`
	Breakdown   map[string]int    `json:"breakdown,omitempty"`
	Reasons     []string          `json:"reasons,omitempty"`
	Confidence  int               `json:"confidence"`
}

// JobMatch is one entry in a jobs-for-candidate result set.
type JobMatch struct {
	JobID       string         `json:"job_id"`
	Job         *JobPosting    `json:"job,omitempty"`
	Score       int            `json:"match_score"`
	Breakdown   map[string]int `json:"breakdown,omitempty"`
	Reasons     []string       `json:"reasons,omitempty"`
	SalaryScore int            `json:"salary_score"`
	SalaryNote  string         `json:"salary_note,omitempty"`
}

// CandidateSearchResult is the response for a candidates-for-job search.
type CandidateSearchResult struct {
	RequestID        string           `json:"request_id"`
	Candidates       []CandidateMatch `json:"candidates"`
	TotalFound       int              `json:"total_found"`
	AlgorithmVersion string           `json:"algorithm_version"`
	ProcessingTimeMS int64            `json:"processing_time_ms"`
	Recommendations  []string         `json:"recommendations,omitempty"`
}

// JobSearchResult is the response for a jobs-for-candidate search.
type JobSearchResult struct {
	RequestID        string     `json:"request_id"`
	Jobs             []JobMatch `json:"jobs"`
	TotalFound       int        `json:"total_found"`
	Insights         []string   `json:"insights,omitempty"`
	ProcessingTimeMS int64      `json:"processing_time_ms"`
	Recommendations  []string   `json:"recommendations,omitempty"`
}

// Gap is a single deficit identified during a detailed match.
type Gap struct {
	Component string `json:"component"` // e.g. "skills", "experience"
	Severity  string `json:"severity"`  // "high" or "medium"
	Score     int    `json:"score"`
}

// Recommendation is a remediation suggestion attached to a gap.
type Recommendation struct {
	Component string `json:"component"`
	Text      string `json:"recommendation"`
	Priority  string `json:"priority"`
}

// GapAnalysis details the skill deficit between a candidate and a job.
type GapAnalysis struct {
	RequiredSkills  []string         `json:"required_skills"`
	MatchingSkills  []string         `json:"matching_skills"`
	MissingSkills   []string         `json:"missing_skills"`
	GapScore        int              `json:"gap_score"` // 0-100, degree of skill deficit
	Recommendations []Recommendation `json:"recommendations,omitempty"`
}

// DetailedMatchResult is the response for a single-pair deep breakdown.
type DetailedMatchResult struct {
	RequestID        string           `json:"request_id"`
	OverallScore     int              `json:"overall_score"`
	Breakdown        map[string]int   `json:"breakdown"`
	SkillsMatching   []string         `json:"skills_matching,omitempty"`
	SkillsMissing    []string         `json:"skills_missing,omitempty"`
	Strengths        []string         `json:"strengths"`
	Gaps             []Gap            `json:"gaps"`
	GapAnalysis      *GapAnalysis     `json:"gap_analysis,omitempty"`
	Recommendations  []Recommendation `json:"recommendations,omitempty"`
	Confidence       int              `json:"confidence"`
	ProcessingTimeMS int64            `json:"processing_time_ms"`
}

// BulkMatchEntry is one candidate's outcome in a bulk screening run.
// A failed candidate carries a zero score and a non-empty Error.
type BulkMatchEntry struct {
	FileName    string         `json:"file_name,omitempty"`
	CandidateID string         `json:"candidate_id"`
	Score       int            `json:"match_score"`
	Breakdown   map[string]int `json:"breakdown,omitempty"`
	Strengths   []string       `json:"strengths,omitempty"`
	Gaps        []Gap          `json:"gaps,omitempty"`
	Confidence  int            `json:"confidence,omitempty"`
	Error       string         `json:"error,omitempty"`
}

// BulkMatchSummary aggregates a bulk screening run.
type BulkMatchSummary struct {
	TotalProcessed        int `json:"total_processed"`
	SuccessfulMatches     int `json:"successful_matches"`
	AverageScore          int `json:"average_score"` // mean over successes
	TopScore              int `json:"top_score"`
	RecommendedCandidates int `json:"recommended_candidates"` // successes scoring >= 70
}

// BulkMatchReport pairs a bulk entry with its full detailed analysis.
type BulkMatchReport struct {
	FileName        string               `json:"file_name,omitempty"`
	CandidateID     string               `json:"candidate_id"`
	Analysis        *DetailedMatchResult `json:"detailed_analysis"`
	Recommendations []Recommendation     `json:"recommendations,omitempty"`
}

// BulkMatchResult is the response for a bulk screening run.
type BulkMatchResult struct {
	RequestID        string            `json:"request_id"`
	Matches          []BulkMatchEntry  `json:"matches"`
	Summary          BulkMatchSummary  `json:"summary"`
	Reports          []BulkMatchReport `json:"reports,omitempty"`
	Recommendations  []string          `json:"recommendations,omitempty"`
	ExportFormats    []string          `json:"export_formats"`
	ProcessingTimeMS int64             `json:"processing_time_ms"`
}
