package store

import (
	"context"
	"database/sql"
	"time"
)

// SeenStore tracks which posting URLs have already been reported per client.
// The set only ever grows: a URL marked seen stays seen, so relisted postings
// never re-alert.
//
// Usage per run: Load once at start, Seen/MarkSeen during the client loop,
// Persist once at the end. MarkSeen buffers in memory; nothing hits the
// database until Persist, so an aborted run leaves prior state intact.
type SeenStore struct {
	db      *sql.DB
	seen    map[string]map[string]bool // client -> url set
	pending map[string][]string        // client -> urls awaiting persist
}

func NewSeenStore(db *sql.DB) *SeenStore {
	return &SeenStore{
		db:      db,
		seen:    make(map[string]map[string]bool),
		pending: make(map[string][]string),
	}
}

// Migrate creates the seen_jobs schema, guarded by user_version so reruns are
// no-ops.
func Migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}
	if v >= 1 {
		return tx.Commit()
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS seen_jobs (
  client TEXT NOT NULL,
  url TEXT NOT NULL,
  first_seen TEXT NOT NULL,
  PRIMARY KEY (client, url)
);
CREATE INDEX IF NOT EXISTS idx_seen_jobs_client ON seen_jobs(client);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}
	return tx.Commit()
}

// Load reads the full seen mapping into memory.
func (s *SeenStore) Load(ctx context.Context) error {
	rows, err := s.db.QueryContext(ctx, `SELECT client, url FROM seen_jobs;`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var client, url string
		if err := rows.Scan(&client, &url); err != nil {
			return err
		}
		set := s.seen[client]
		if set == nil {
			set = make(map[string]bool)
			s.seen[client] = set
		}
		set[url] = true
	}
	return rows.Err()
}

// Seen returns the URL set already reported for client. The returned map may
// be nil for a never-seen client; lookups on it still work.
func (s *SeenStore) Seen(client string) map[string]bool {
	return s.seen[client]
}

// MarkSeen records urls as reported for client. Already-known URLs are
// skipped; new ones are queued for the next Persist.
func (s *SeenStore) MarkSeen(client string, urls []string) {
	set := s.seen[client]
	if set == nil {
		set = make(map[string]bool)
		s.seen[client] = set
	}
	for _, u := range urls {
		if u == "" || set[u] {
			continue
		}
		set[u] = true
		s.pending[client] = append(s.pending[client], u)
	}
}

// Persist writes all queued URLs in one transaction. Safe to call with
// nothing pending. A failure here is fatal to the run: losing seen-state
// means duplicate alerts next time.
func (s *SeenStore) Persist(ctx context.Context) error {
	if len(s.pending) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	stmt, err := tx.PrepareContext(ctx, `
INSERT OR IGNORE INTO seen_jobs(client, url, first_seen) VALUES(?,?,?);`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for client, urls := range s.pending {
		for _, u := range urls {
			if _, err := stmt.ExecContext(ctx, client, u, now); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	s.pending = make(map[string][]string)
	return nil
}
