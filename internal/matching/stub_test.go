package matching

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/talent-matcher/internal/db"
	"github.com/jonathan/talent-matcher/internal/embedding"
	"github.com/jonathan/talent-matcher/internal/types"
)

// stubEmbedder is a deterministic embedding.Client for tests. Every text
// embeds to the same unit vector unless failAll is set or the text
// contains the failMarker substring.
type stubEmbedder struct {
	failAll    bool
	failMarker string
}

func (s *stubEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if s.failAll {
		return nil, &embedding.APICallError{Message: "provider unavailable"}
	}
	if s.failMarker != "" && strings.Contains(text, s.failMarker) {
		return nil, &embedding.APICallError{Message: "provider unavailable"}
	}
	return []float32{1, 0, 0}, nil
}

func (s *stubEmbedder) Close() error { return nil }

// newTestService wires a service over in-memory pools and a Nop logger.
func newTestService(embedder embedding.Client, candidates []*types.CandidateProfile, jobs []*types.JobPosting) *Service {
	var candidatePool CandidatePool
	var jobPool JobPool
	if candidates != nil {
		candidatePool = db.NewMemoryCandidatePool(candidates)
	}
	if jobs != nil {
		jobPool = db.NewMemoryJobPool(jobs)
	}
	return NewService(embedder, candidatePool, jobPool, zap.NewNop(), Config{})
}

// Fixture candidates spanning strong to weak fits for the fixture job.
func fixtureJob() *types.JobPosting {
	return &types.JobPosting{
		ID:                 "job-1",
		Title:              "Backend Engineer",
		Description:        "Backend engineer building Go services on AWS.",
		Skills:             []string{"Go", "AWS", "PostgreSQL"},
		RequiredExperience: 5,
		Education:          []string{"bachelor"},
		Location:           "Berlin",
		Salary:             &types.SalaryRange{Min: 70000, Max: 90000},
	}
}

func strongCandidate() *types.CandidateProfile {
	return &types.CandidateProfile{
		ID:              "cand-strong",
		Name:            "Strong Fit",
		Skills:          []string{"Go", "AWS", "PostgreSQL", "Docker"},
		TotalExperience: 8,
		Education:       []types.EducationEntry{{Degree: "BSc Computer Science"}},
		CurrentRole:     "Senior Backend Engineer",
		Location:        "Berlin",
		SalaryRange:     &types.SalaryRange{Min: 75000, Max: 95000},
		Summary:         "Backend engineer with Go and AWS experience.",
	}
}

func mediumCandidate() *types.CandidateProfile {
	return &types.CandidateProfile{
		ID:              "cand-medium",
		Name:            "Medium Fit",
		Skills:          []string{"Go", "MongoDB"},
		TotalExperience: 4,
		Education:       []types.EducationEntry{{Degree: "BSc"}},
		Location:        "Munich",
	}
}

func weakCandidate() *types.CandidateProfile {
	return &types.CandidateProfile{
		ID:              "cand-weak",
		Name:            "Weak Fit",
		Skills:          []string{"Figma"},
		TotalExperience: 1,
		Location:        "Hamburg",
	}
}
