package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/talent-matcher/internal/types"
)

// JobStore reads and writes job postings stored as jsonb rows. It
// satisfies matching.JobPool.
type JobStore struct {
	db *DB
}

// Jobs returns the job store backed by this connection pool.
func (db *DB) Jobs() *JobStore {
	return &JobStore{db: db}
}

// Save upserts a job posting keyed by its ID.
func (s *JobStore) Save(ctx context.Context, job *types.JobPosting) error {
	if job.ID == "" {
		return fmt.Errorf("job must have an id")
	}

	jsonBytes, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	_, err = s.db.pool.Exec(ctx,
		`INSERT INTO jobs (id, posting)
		 VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET posting = $2, updated_at = NOW()`,
		job.ID, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save job %s: %w", job.ID, err)
	}
	return nil
}

// Get retrieves a job posting by ID.
func (s *JobStore) Get(ctx context.Context, id string) (*types.JobPosting, error) {
	var jsonBytes []byte
	err := s.db.pool.QueryRow(ctx,
		`SELECT posting FROM jobs WHERE id = $1`,
		id,
	).Scan(&jsonBytes)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("job not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get job %s: %w", id, err)
	}

	var job types.JobPosting
	if err := json.Unmarshal(jsonBytes, &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job %s: %w", id, err)
	}
	return &job, nil
}

// List retrieves all job postings in the pool.
func (s *JobStore) List(ctx context.Context) ([]*types.JobPosting, error) {
	rows, err := s.db.pool.Query(ctx,
		`SELECT posting FROM jobs ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*types.JobPosting
	for rows.Next() {
		var jsonBytes []byte
		if err := rows.Scan(&jsonBytes); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		var job types.JobPosting
		if err := json.Unmarshal(jsonBytes, &job); err != nil {
			return nil, fmt.Errorf("failed to unmarshal job: %w", err)
		}
		jobs = append(jobs, &job)
	}
	return jobs, rows.Err()
}

// Delete removes a job posting by ID.
func (s *JobStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job %s: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("job not found: %s", id)
	}
	return nil
}
