// Package db provides PostgreSQL persistence for analysis run artifacts.
package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// CreateRun inserts a new analysis run record.
func (db *DB) CreateRun(ctx context.Context, runID uuid.UUID, jobTitle string, candidateCount int) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO analysis_runs (id, job_title, candidate_count, status)
		 VALUES ($1, $2, $3, 'running')`,
		runID, jobTitle, candidateCount,
	)
	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}
	return nil
}

// CompleteRun marks an analysis run as completed with a final status.
func (db *DB) CompleteRun(ctx context.Context, runID uuid.UUID, status string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE analysis_runs SET status = $1, completed_at = NOW() WHERE id = $2`,
		status, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// SaveArtifact stores a JSON artifact for an analysis run, replacing any
// earlier artifact for the same step.
func (db *DB) SaveArtifact(ctx context.Context, runID uuid.UUID, step string, content any) error {
	jsonBytes, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to marshal artifact: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO analysis_artifacts (run_id, step, content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (run_id, step) DO UPDATE SET content = $3, created_at = NOW()`,
		runID, step, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save artifact %s: %w", step, err)
	}
	return nil
}

// GetArtifact retrieves a JSON artifact by run and step. Returns nil content
// when the artifact does not exist.
func (db *DB) GetArtifact(ctx context.Context, runID uuid.UUID, step string) ([]byte, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM analysis_artifacts WHERE run_id = $1 AND step = $2`,
		runID, step,
	).Scan(&content)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get artifact %s: %w", step, err)
	}
	return content, nil
}
