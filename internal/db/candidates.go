package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/talent-matcher/internal/types"
)

// CandidateStore reads and writes candidate profiles stored as jsonb rows.
// It satisfies matching.CandidatePool.
type CandidateStore struct {
	db *DB
}

// Candidates returns the candidate store backed by this connection pool.
func (db *DB) Candidates() *CandidateStore {
	return &CandidateStore{db: db}
}

// Save upserts a candidate profile keyed by its ID.
func (s *CandidateStore) Save(ctx context.Context, candidate *types.CandidateProfile) error {
	if candidate.ID == "" {
		return fmt.Errorf("candidate must have an id")
	}

	jsonBytes, err := json.Marshal(candidate)
	if err != nil {
		return fmt.Errorf("failed to marshal candidate: %w", err)
	}

	_, err = s.db.pool.Exec(ctx,
		`INSERT INTO candidates (id, profile)
		 VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET profile = $2, updated_at = NOW()`,
		candidate.ID, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save candidate %s: %w", candidate.ID, err)
	}
	return nil
}

// Get retrieves a candidate profile by ID. A missing row is an error; the
// caller asked for a specific candidate.
func (s *CandidateStore) Get(ctx context.Context, id string) (*types.CandidateProfile, error) {
	var jsonBytes []byte
	err := s.db.pool.QueryRow(ctx,
		`SELECT profile FROM candidates WHERE id = $1`,
		id,
	).Scan(&jsonBytes)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("candidate not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get candidate %s: %w", id, err)
	}

	var candidate types.CandidateProfile
	if err := json.Unmarshal(jsonBytes, &candidate); err != nil {
		return nil, fmt.Errorf("failed to unmarshal candidate %s: %w", id, err)
	}
	return &candidate, nil
}

// List retrieves all candidate profiles in the pool.
func (s *CandidateStore) List(ctx context.Context) ([]*types.CandidateProfile, error) {
	rows, err := s.db.pool.Query(ctx,
		`SELECT profile FROM candidates ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []*types.CandidateProfile
	for rows.Next() {
		var jsonBytes []byte
		if err := rows.Scan(&jsonBytes); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		var candidate types.CandidateProfile
		if err := json.Unmarshal(jsonBytes, &candidate); err != nil {
			return nil, fmt.Errorf("failed to unmarshal candidate: %w", err)
		}
		candidates = append(candidates, &candidate)
	}
	return candidates, rows.Err()
}

// Delete removes a candidate profile by ID.
func (s *CandidateStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.pool.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete candidate %s: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("candidate not found: %s", id)
	}
	return nil
}
