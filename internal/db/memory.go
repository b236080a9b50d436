package db

import (
	"context"
	"fmt"

	"github.com/jonathan/talent-matcher/internal/types"
)

// MemoryCandidatePool is an in-memory candidate pool, used when profiles
// are loaded from files rather than Postgres. The pool is populated once
// at construction and read-only afterwards, so it needs no locking.
type MemoryCandidatePool struct {
	byID  map[string]*types.CandidateProfile
	order []string
}

// NewMemoryCandidatePool builds a pool from the given profiles, preserving
// their order for List.
func NewMemoryCandidatePool(candidates []*types.CandidateProfile) *MemoryCandidatePool {
	pool := &MemoryCandidatePool{
		byID: make(map[string]*types.CandidateProfile, len(candidates)),
	}
	for _, candidate := range candidates {
		if _, seen := pool.byID[candidate.ID]; seen {
			continue
		}
		pool.byID[candidate.ID] = candidate
		pool.order = append(pool.order, candidate.ID)
	}
	return pool
}

// Get retrieves a candidate profile by ID.
func (p *MemoryCandidatePool) Get(_ context.Context, id string) (*types.CandidateProfile, error) {
	candidate, ok := p.byID[id]
	if !ok {
		return nil, fmt.Errorf("candidate not found: %s", id)
	}
	return candidate, nil
}

// List retrieves all candidate profiles in insertion order.
func (p *MemoryCandidatePool) List(_ context.Context) ([]*types.CandidateProfile, error) {
	candidates := make([]*types.CandidateProfile, 0, len(p.order))
	for _, id := range p.order {
		candidates = append(candidates, p.byID[id])
	}
	return candidates, nil
}

// MemoryJobPool is the in-memory counterpart for job postings.
type MemoryJobPool struct {
	byID  map[string]*types.JobPosting
	order []string
}

// NewMemoryJobPool builds a pool from the given postings, preserving their
// order for List.
func NewMemoryJobPool(jobs []*types.JobPosting) *MemoryJobPool {
	pool := &MemoryJobPool{
		byID: make(map[string]*types.JobPosting, len(jobs)),
	}
	for _, job := range jobs {
		if _, seen := pool.byID[job.ID]; seen {
			continue
		}
		pool.byID[job.ID] = job
		pool.order = append(pool.order, job.ID)
	}
	return pool
}

// Get retrieves a job posting by ID.
func (p *MemoryJobPool) Get(_ context.Context, id string) (*types.JobPosting, error) {
	job, ok := p.byID[id]
	if !ok {
		return nil, fmt.Errorf("job not found: %s", id)
	}
	return job, nil
}

// List retrieves all job postings in insertion order.
func (p *MemoryJobPool) List(_ context.Context) ([]*types.JobPosting, error) {
	jobs := make([]*types.JobPosting, 0, len(p.order))
	for _, id := range p.order {
		jobs = append(jobs, p.byID[id])
	}
	return jobs, nil
}
