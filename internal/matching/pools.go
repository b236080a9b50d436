// Package matching implements the candidate-job matching engine: the
// bidirectional orchestrator, the detailed match / gap analyzer, and the
// bulk matcher.
package matching

import (
	"context"

	"github.com/jonathan/talent-matcher/internal/types"
)

// CandidatePool is the read-only data access boundary for candidates.
// Implementations must be safe for concurrent use.
type CandidatePool interface {
	Get(ctx context.Context, id string) (*types.CandidateProfile, error)
	List(ctx context.Context) ([]*types.CandidateProfile, error)
}

// JobPool is the read-only data access boundary for job postings.
// Implementations must be safe for concurrent use.
type JobPool interface {
	Get(ctx context.Context, id string) (*types.JobPosting, error)
	List(ctx context.Context) ([]*types.JobPosting, error)
}
