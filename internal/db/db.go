// Package db provides PostgreSQL storage for extraction runs and the
// profile snapshots they produce.
package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/cv-profiler/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// CreateRun creates a new extraction run record and returns its ID
func (db *DB) CreateRun(ctx context.Context, sourceFile string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO extraction_runs (source_file, status)
		 VALUES ($1, 'running')
		 RETURNING id`,
		sourceFile,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// CompleteRun marks an extraction run as completed or failed
func (db *DB) CompleteRun(ctx context.Context, runID uuid.UUID, status string, overallConfidence *float64) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE extraction_runs SET status = $1, overall_confidence = $2, completed_at = NOW() WHERE id = $3`,
		status, overallConfidence, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// SaveProfile stores the profile snapshot for an extraction run. A run
// holds at most one snapshot; saving again replaces it.
func (db *DB) SaveProfile(ctx context.Context, runID uuid.UUID, profile *types.CompetencyProfile) error {
	jsonBytes, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO profile_artifacts (run_id, profile)
		 VALUES ($1, $2)
		 ON CONFLICT (run_id) DO UPDATE SET profile = $2, created_at = NOW()`,
		runID, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// GetProfile retrieves the profile snapshot for a run. Returns nil when
// the run has no snapshot.
func (db *DB) GetProfile(ctx context.Context, runID uuid.UUID) (*types.CompetencyProfile, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT profile FROM profile_artifacts WHERE run_id = $1`,
		runID,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var profile types.CompetencyProfile
	if err := json.Unmarshal(content, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

// GetRun retrieves an extraction run by ID. Returns nil when not found.
func (db *DB) GetRun(ctx context.Context, runID uuid.UUID) (*Run, error) {
	var run Run
	err := db.pool.QueryRow(ctx,
		`SELECT id, source_file, status, overall_confidence, created_at, completed_at
		 FROM extraction_runs WHERE id = $1`,
		runID,
	).Scan(&run.ID, &run.SourceFile, &run.Status, &run.OverallConfidence, &run.CreatedAt, &run.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// RunFilters holds optional filters for listing runs
type RunFilters struct {
	SourceFile string
	Status     string
	Limit      int
}

// ListRuns retrieves recent extraction runs with optional filters
func (db *DB) ListRuns(ctx context.Context, filters RunFilters) ([]Run, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, source_file, status, overall_confidence, created_at, completed_at
		FROM extraction_runs WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.SourceFile != "" {
		query += fmt.Sprintf(" AND source_file ILIKE $%d", argNum)
		args = append(args, "%"+filters.SourceFile+"%")
		argNum++
	}
	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, filters.Status)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.SourceFile, &run.Status, &run.OverallConfidence, &run.CreatedAt, &run.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}

// DeleteRun deletes an extraction run and its snapshot (via cascade)
func (db *DB) DeleteRun(ctx context.Context, runID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM extraction_runs WHERE id = $1`, runID)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("run not found: %s", runID)
	}
	return nil
}
