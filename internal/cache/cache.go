// Package cache stores a digest-keyed classification cache across runs,
// so an unchanged file never has to be re-classified after its first scan.
// It is an optional accelerator: absent --cache, nothing in this package
// is ever touched, and behaviour is identical to running without it.
package cache

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"flocc/internal/model"
)

// Store wraps a SQLite database recording (digest, kind) -> line buckets.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) a cache database under dir, applying
// the same pragma tuning used elsewhere in this codebase for a small
// embedded SQLite store: WAL journaling, relaxed synchronous durability
// (the cache is disposable, never a source of truth), and a bounded busy
// timeout so concurrent workers don't fail a write outright under
// contention.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}
	dbPath := filepath.Join(dir, "cache.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("cache: open %s: %w", dbPath, err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("cache: %s: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS classifications (
	digest     TEXT PRIMARY KEY,
	kind       INTEGER NOT NULL,
	code       INTEGER NOT NULL,
	comment    INTEGER NOT NULL,
	whitespace INTEGER NOT NULL,
	run_id     TEXT NOT NULL
);
`
	_, err := s.db.Exec(schema)
	return err
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Lookup returns the cached classification for digest, if present, and
// whether the digest's kind recorded in the cache still matches kind —
// a mismatch (an extension override changed, say) is treated as a miss
// rather than returning a stale result.
func (s *Store) Lookup(digest string, kind model.FileKind) (code, comment, whitespace uint32, ok bool) {
	row := s.db.QueryRow(
		`SELECT kind, code, comment, whitespace FROM classifications WHERE digest = ?`,
		digest,
	)
	var cachedKind int
	if err := row.Scan(&cachedKind, &code, &comment, &whitespace); err != nil {
		return 0, 0, 0, false
	}
	if model.FileKind(cachedKind) != kind {
		return 0, 0, 0, false
	}
	return code, comment, whitespace, true
}

// Store records a classification result for digest under runID, replacing
// any previous entry for the same digest.
func (s *Store) Store(digest string, kind model.FileKind, code, comment, whitespace uint32, runID string) error {
	_, err := s.db.Exec(
		`INSERT INTO classifications (digest, kind, code, comment, whitespace, run_id)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(digest) DO UPDATE SET
		   kind=excluded.kind, code=excluded.code, comment=excluded.comment,
		   whitespace=excluded.whitespace, run_id=excluded.run_id`,
		digest, int(kind), code, comment, whitespace, runID,
	)
	return err
}
