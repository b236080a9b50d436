// Package types defines the core domain types shared across the matching engine.
package types

// SalaryRange represents a min/max salary band in absolute currency units.
type SalaryRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Overlaps reports whether two salary ranges intersect.
func (r *SalaryRange) Overlaps(other *SalaryRange) bool {
	if r == nil || other == nil {
		return false
	}
	return r.Min <= other.Max && r.Max >= other.Min
}

// EducationEntry represents a single education record on a candidate profile.
type EducationEntry struct {
	Degree string `json:"degree"`
	Field  string `json:"field,omitempty"`
	Year   string `json:"year,omitempty"`
}

// CandidateProfile represents a candidate as seen by the matching engine.
// Profiles are treated as immutable for the duration of a matching run.
type CandidateProfile struct {
	ID              string           `json:"id"`
	Name            string           `json:"name,omitempty"`
	Skills          []string         `json:"skills"`
	TotalExperience float64          `json:"total_experience"` // years
	Education       []EducationEntry `json:"education,omitempty"`
	CurrentRole     string           `json:"current_role,omitempty"`
	Location        string           `json:"location,omitempty"`
	SalaryRange     *SalaryRange     `json:"salary_range,omitempty"`
	Summary         string           `json:"summary,omitempty"`
}

// JobPosting represents a job as seen by the matching engine.
// Postings are treated as immutable for the duration of a matching run.
type JobPosting struct {
	ID                 string       `json:"id"`
	Title              string       `json:"title"`
	Company            string       `json:"company,omitempty"`
	Description        string       `json:"description"`
	Skills             []string     `json:"skills"`
	RequiredExperience float64      `json:"required_experience"` // years
	Education          []string     `json:"education,omitempty"` // degree markers, e.g. "bachelor"
	Industry           string       `json:"industry,omitempty"`
	Location           string       `json:"location,omitempty"`
	Salary             *SalaryRange `json:"salary,omitempty"`
}

// JobRequirements holds the requirements derived from a free-text job
// description when no structured JobPosting is available.
type JobRequirements struct {
	Skills     []string `json:"skills"`
	Experience float64  `json:"experience"` // required years; 0 means no stated requirement
	Education  []string `json:"education"`  // degree markers found in the text
}
