//go:build integration

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/albapepper/drawcert/internal/config"
	"github.com/albapepper/drawcert/internal/db"
)

// startPostgres spins up a throwaway Postgres, applies schema.sql and returns
// a ready pool with prepared statements registered.
func startPostgres(t *testing.T) *db.Pool {
	t.Helper()
	ctx := context.Background()

	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("drawcert"),
		tcpostgres.WithUsername("drawcert"),
		tcpostgres.WithPassword("drawcert"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	// The prepared statements reference validation_runs, so the schema has
	// to exist before db.New opens the pool.
	schema, err := os.ReadFile(filepath.Join("..", "..", "schema.sql"))
	require.NoError(t, err)

	conn, err := pgx.Connect(ctx, dsn)
	require.NoError(t, err)
	_, err = conn.Exec(ctx, string(schema))
	require.NoError(t, err)
	require.NoError(t, conn.Close(ctx))

	pool, err := db.New(ctx, &config.Config{
		DatabaseURL:    dsn,
		DBPoolMinConns: 1,
		DBPoolMaxConns: 2,
		DBPoolMaxIdle:  time.Minute,
		DBPoolMaxLife:  5 * time.Minute,
	})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

func TestRunLifecycle(t *testing.T) {
	pool := startPostgres(t)
	ctx := context.Background()

	require.NoError(t, pool.HealthCheck(ctx))

	first := &Run{
		ID:      uuid.New(),
		Season:  "2025-26",
		Clubs:   36,
		Matches: 143,
		Valid:   false,
		Errors: []string{
			"expected 144 matches, found 143",
			"hard constraints violated: total_matches, matches_per_club",
		},
		Warnings:   []string{"soft constraints not satisfied: no_consecutive_matches"},
		DurationMS: 12,
	}
	require.NoError(t, InsertRun(ctx, pool, first))
	assert.False(t, first.CreatedAt.IsZero())

	got, err := GetRun(ctx, pool, first.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "2025-26", got.Season)
	assert.Equal(t, 36, got.Clubs)
	assert.Equal(t, 143, got.Matches)
	assert.False(t, got.Valid)
	assert.Equal(t, first.Errors, got.Errors)
	assert.Equal(t, first.Warnings, got.Warnings)
	assert.EqualValues(t, 12, got.DurationMS)

	missing, err := GetRun(ctx, pool, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)

	// Nil slices must round-trip as empty arrays, not JSON null.
	time.Sleep(10 * time.Millisecond)
	second := &Run{ID: uuid.New(), Season: "2026-27", Clubs: 36, Matches: 144, Valid: true}
	require.NoError(t, InsertRun(ctx, pool, second))

	got, err = GetRun(ctx, pool, second.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []string{}, got.Errors)
	assert.Equal(t, []string{}, got.Warnings)

	runs, err := ListRuns(ctx, pool, "", 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second.ID, runs[0].ID)
	assert.Equal(t, first.ID, runs[1].ID)

	filtered, err := ListRuns(ctx, pool, "2026-27", 10)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, second.ID, filtered[0].ID)

	purged, err := PurgeOldRuns(ctx, pool, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, purged)

	runs, err = ListRuns(ctx, pool, "", 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
