package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CandidateSearchRequest asks for ranked candidates matching a job posting.
type CandidateSearchRequest struct {
	Job        *JobPosting `json:"job" validate:"required"`
	MaxResults int         `json:"max_results,omitempty" validate:"min=0"`
	Profile    string      `json:"profile,omitempty"` // weighting profile name; unknown values fall back to comprehensive
}

// Validate validates the CandidateSearchRequest using the validator.
func (r *CandidateSearchRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if strings.TrimSpace(r.Job.Description) == "" && len(r.Job.Skills) == 0 {
		return fmt.Errorf("job must include a description or a skills list")
	}
	return nil
}

// JobSearchRequest asks for ranked job recommendations for a candidate.
type JobSearchRequest struct {
	Candidate  *CandidateProfile `json:"candidate" validate:"required"`
	MaxResults int               `json:"max_results,omitempty" validate:"min=0"`
}

// Validate validates the JobSearchRequest using the validator.
func (r *JobSearchRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if len(r.Candidate.Skills) == 0 && strings.TrimSpace(r.Candidate.Summary) == "" {
		return fmt.Errorf("candidate must include skills or a summary")
	}
	return nil
}

// DetailedMatchRequest asks for a deep single-pair breakdown against a
// free-text job description.
type DetailedMatchRequest struct {
	Candidate              *CandidateProfile `json:"candidate" validate:"required"`
	JobDescription         string            `json:"job_description" validate:"required"`
	IncludeRecommendations bool              `json:"include_recommendations,omitempty"`
}

// Validate validates the DetailedMatchRequest using the validator.
func (r *DetailedMatchRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if strings.TrimSpace(r.JobDescription) == "" {
		return fmt.Errorf("job description must not be blank")
	}
	return nil
}

// BulkCandidate pairs a candidate profile with the file it was loaded from.
// A non-empty LoadErr marks a file that could not be parsed; the bulk run
// reports it as a failed entry instead of scoring it.
type BulkCandidate struct {
	FileName string            `json:"file_name,omitempty"`
	Profile  *CandidateProfile `json:"profile" validate:"required"`
	LoadErr  string            `json:"load_error,omitempty"`
}

// BulkMatchRequest asks for a ranked screening of many candidates against
// one job description.
type BulkMatchRequest struct {
	Candidates     []BulkCandidate `json:"candidates" validate:"required,min=1,dive"`
	JobDescription string          `json:"job_description" validate:"required"`
	IncludeReports bool            `json:"include_reports,omitempty"`
}

// Validate validates the BulkMatchRequest using the validator.
func (r *BulkMatchRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if strings.TrimSpace(r.JobDescription) == "" {
		return fmt.Errorf("job description must not be blank")
	}
	return nil
}
