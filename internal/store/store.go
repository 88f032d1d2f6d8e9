// Package store persists validation runs to Postgres. All queries go through
// the prepared statements registered in internal/db.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/albapepper/drawcert/internal/db"
)

const (
	// DefaultListLimit is applied when a caller asks for zero or an
	// out-of-range number of runs.
	DefaultListLimit = 50

	// MaxListLimit caps a single listing query.
	MaxListLimit = 200
)

// Run is one persisted validation outcome.
type Run struct {
	ID         uuid.UUID `json:"id" swaggertype:"string"`
	Season     string    `json:"season"`
	Clubs      int       `json:"clubs"`
	Matches    int       `json:"matches"`
	Valid      bool      `json:"valid"`
	Errors     []string  `json:"errors"`
	Warnings   []string  `json:"warnings"`
	DurationMS int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

// InsertRun writes a run and fills in its CreatedAt from the database.
func InsertRun(ctx context.Context, pool *db.Pool, run *Run) error {
	if run.Errors == nil {
		run.Errors = []string{}
	}
	if run.Warnings == nil {
		run.Warnings = []string{}
	}

	errsJSON, err := json.Marshal(run.Errors)
	if err != nil {
		return fmt.Errorf("encode errors: %w", err)
	}
	warnsJSON, err := json.Marshal(run.Warnings)
	if err != nil {
		return fmt.Errorf("encode warnings: %w", err)
	}

	err = pool.QueryRow(ctx, "insert_run",
		run.ID, run.Season, run.Clubs, run.Matches, run.Valid,
		string(errsJSON), string(warnsJSON), run.DurationMS,
	).Scan(&run.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// GetRun fetches a run by id. Returns (nil, nil) when no run exists.
func GetRun(ctx context.Context, pool *db.Pool, id uuid.UUID) (*Run, error) {
	run, err := scanRun(pool.QueryRow(ctx, "run_by_id", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	return run, nil
}

// ListRuns returns the most recent runs, newest first. A season filter is
// applied when season is non-empty.
func ListRuns(ctx context.Context, pool *db.Pool, season string, limit int) ([]*Run, error) {
	if limit <= 0 || limit > MaxListLimit {
		limit = DefaultListLimit
	}

	var (
		rows pgx.Rows
		err  error
	)
	if season == "" {
		rows, err = pool.Query(ctx, "list_runs", limit)
	} else {
		rows, err = pool.Query(ctx, "list_runs_by_season", season, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	runs := make([]*Run, 0, limit)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("list runs: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// PurgeOldRuns deletes runs older than the retention window and reports how
// many rows were removed.
func PurgeOldRuns(ctx context.Context, pool *db.Pool, retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	tag, err := pool.Exec(ctx, "purge_old_runs", cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge old runs: %w", err)
	}
	return tag.RowsAffected(), nil
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var (
		run       Run
		errsJSON  []byte
		warnsJSON []byte
	)
	err := row.Scan(
		&run.ID, &run.Season, &run.Clubs, &run.Matches, &run.Valid,
		&errsJSON, &warnsJSON, &run.DurationMS, &run.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(errsJSON, &run.Errors); err != nil {
		return nil, fmt.Errorf("decode errors: %w", err)
	}
	if err := json.Unmarshal(warnsJSON, &run.Warnings); err != nil {
		return nil, fmt.Errorf("decode warnings: %w", err)
	}
	return &run, nil
}
