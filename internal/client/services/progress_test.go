package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func progressDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE metadata (key TEXT PRIMARY KEY, value TEXT NOT NULL)`)
	require.NoError(t, err)
	return db
}

func TestProgressService_RecordLogin(t *testing.T) {
	ctx := context.Background()
	svc := NewProgressService(progressDB(t), testLogger())

	day := func(d int) func() time.Time {
		return func() time.Time { return time.Date(2026, 9, d, 12, 0, 0, 0, time.UTC) }
	}

	// First ever login starts a streak of 1.
	svc.now = day(1)
	streak, err := svc.RecordLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, streak)

	// A second login the same day keeps the streak.
	streak, err = svc.RecordLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, streak)

	// Consecutive days extend it.
	svc.now = day(2)
	streak, err = svc.RecordLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, streak)

	svc.now = day(3)
	streak, err = svc.RecordLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 3, streak)
	assert.Equal(t, 3, svc.Streak(ctx, "alice"))

	// A gap resets to 1.
	svc.now = day(7)
	streak, err = svc.RecordLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, streak)
}

func TestProgressService_StreaksArePerUser(t *testing.T) {
	ctx := context.Background()
	svc := NewProgressService(progressDB(t), testLogger())

	_, err := svc.RecordLogin(ctx, "alice")
	require.NoError(t, err)

	assert.Equal(t, 1, svc.Streak(ctx, "alice"))
	assert.Equal(t, 0, svc.Streak(ctx, "bob"))
}
