package matching

import (
	"go.uber.org/zap"

	"github.com/jonathan/talent-matcher/internal/embedding"
)

// AlgorithmVersion identifies the scoring algorithm in responses.
const AlgorithmVersion = "2.1.0"

// Default thresholds and limits. Jobs are recommendations rather than a
// hard shortlist, so the jobs direction favors recall with a lower
// acceptance threshold.
const (
	DefaultCandidateThreshold = 30
	DefaultJobThreshold       = 25
	DefaultCandidateResults   = 50
	DefaultJobResults         = 20
	DefaultMaxConcurrency     = 4
)

// Config tunes the matching service.
type Config struct {
	// MaxConcurrency bounds the number of simultaneous in-flight
	// embedding calls during batch matching.
	MaxConcurrency int
	// CandidateThreshold is the minimum score for candidates-for-job results.
	CandidateThreshold int
	// JobThreshold is the minimum score for jobs-for-candidate results.
	JobThreshold int
	// CandidateResults caps candidates-for-job results when a request
	// does not set its own limit.
	CandidateResults int
	// JobResults caps jobs-for-candidate results when a request does not
	// set its own limit.
	JobResults int
}

// withDefaults fills zero-valued fields with the package defaults.
func (c Config) withDefaults() Config {
	if c.MaxConcurrency <= 0 {
		c.MaxConcurrency = DefaultMaxConcurrency
	}
	if c.CandidateThreshold <= 0 {
		c.CandidateThreshold = DefaultCandidateThreshold
	}
	if c.JobThreshold <= 0 {
		c.JobThreshold = DefaultJobThreshold
	}
	if c.CandidateResults <= 0 {
		c.CandidateResults = DefaultCandidateResults
	}
	if c.JobResults <= 0 {
		c.JobResults = DefaultJobResults
	}
	return c
}

// Service is the matching engine. It is stateless aside from its injected
// collaborators and safe for concurrent use.
type Service struct {
	embedder   embedding.Client
	candidates CandidatePool
	jobs       JobPool
	logger     *zap.Logger
	cfg        Config
}

// NewService constructs a matching service. Either pool may be nil when the
// corresponding search direction is not used; a nil logger disables logging.
func NewService(embedder embedding.Client, candidates CandidatePool, jobs JobPool, logger *zap.Logger, cfg Config) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		embedder:   embedder,
		candidates: candidates,
		jobs:       jobs,
		logger:     logger,
		cfg:        cfg.withDefaults(),
	}
}
