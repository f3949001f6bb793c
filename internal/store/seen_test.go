package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T, path string) (*SeenStore, func()) {
	t.Helper()
	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, Migrate(db.Pool))
	return NewSeenStore(db.Pool), func() { _ = db.Close() }
}

func TestSeenStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "seen.db")

	// first run: everything is new
	s, closeDB := openTestStore(t, path)
	require.NoError(t, s.Load(ctx))
	assert.Empty(t, s.Seen("acme"))

	s.MarkSeen("acme", []string{"https://x/jobs/1", "https://x/jobs/2"})
	assert.True(t, s.Seen("acme")["https://x/jobs/1"])
	require.NoError(t, s.Persist(ctx))
	closeDB()

	// second run: same listing, nothing new
	s, closeDB = openTestStore(t, path)
	require.NoError(t, s.Load(ctx))
	seen := s.Seen("acme")
	assert.True(t, seen["https://x/jobs/1"])
	assert.True(t, seen["https://x/jobs/2"])
	assert.False(t, seen["https://x/jobs/3"])

	// third run: one new posting
	s.MarkSeen("acme", []string{"https://x/jobs/1", "https://x/jobs/3"})
	require.NoError(t, s.Persist(ctx))
	closeDB()

	s, closeDB = openTestStore(t, path)
	defer closeDB()
	require.NoError(t, s.Load(ctx))
	assert.Len(t, s.Seen("acme"), 3)
}

func TestSeenStoreClientsAreIsolated(t *testing.T) {
	ctx := context.Background()
	s, closeDB := openTestStore(t, filepath.Join(t.TempDir(), "seen.db"))
	defer closeDB()
	require.NoError(t, s.Load(ctx))

	s.MarkSeen("acme", []string{"https://x/jobs/1"})
	assert.True(t, s.Seen("acme")["https://x/jobs/1"])
	assert.False(t, s.Seen("globex")["https://x/jobs/1"])
}

func TestSeenStorePersistIsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "seen.db")
	s, closeDB := openTestStore(t, path)
	defer closeDB()
	require.NoError(t, s.Load(ctx))

	// nothing pending: no-op
	require.NoError(t, s.Persist(ctx))

	s.MarkSeen("acme", []string{"https://x/jobs/1", "", "https://x/jobs/1"})
	require.NoError(t, s.Persist(ctx))
	// marking again after persist queues nothing new
	s.MarkSeen("acme", []string{"https://x/jobs/1"})
	require.NoError(t, s.Persist(ctx))

	var n int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM seen_jobs;`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestMigrateTwice(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "seen.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db.Pool))
	require.NoError(t, Migrate(db.Pool))
}
