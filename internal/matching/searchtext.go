package matching

import (
	"strings"

	"github.com/jonathan/talent-matcher/internal/types"
)

// joinNonEmpty concatenates parts with single spaces, dropping blanks so a
// missing field never leaves stray separators or placeholder tokens in the
// embedded text.
func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, " ")
}

// BuildCandidateText renders a candidate profile into a single text blob
// suitable for semantic embedding.
func BuildCandidateText(candidate *types.CandidateProfile) string {
	if candidate == nil {
		return ""
	}
	return joinNonEmpty(
		strings.Join(candidate.Skills, " "),
		candidate.CurrentRole,
		candidate.Summary,
		candidate.Location,
	)
}

// BuildJobText renders a job posting into a single text blob suitable for
// semantic embedding.
func BuildJobText(job *types.JobPosting) string {
	if job == nil {
		return ""
	}
	return joinNonEmpty(
		job.Description,
		strings.Join(job.Skills, " "),
		job.Industry,
		job.Location,
	)
}
