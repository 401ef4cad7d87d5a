// Package cache implements an optional incremental-compile cache: a
// sqlite-backed table keyed by a content hash of the source text, mapping
// to previously generated object code (SPEC_FULL.md's supplemented
// "internal/cache" component). It changes nothing about compiler semantics
// — a cache hit and a fresh compile of the same source must always produce
// the same object bytes — it only saves the work of recomputing them.
//
// Grounded stylistically on the teacher's own use of modernc.org/sqlite as
// its sole SQL driver (internal/evaluator's SQL builtins): same driver,
// same database/sql usage pattern, blank-imported for its side-effecting
// driver registration.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"

	_ "modernc.org/sqlite"
)

// Cache wraps a sqlite-backed object-code cache keyed by source content hash.
type Cache struct {
	db *sql.DB
}

// Open opens (creating if necessary) the sqlite database at path and ensures
// its schema exists.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cache: open: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: create schema: %w", err)
	}
	return &Cache{db: db}, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS object_cache (
	source_hash TEXT PRIMARY KEY,
	object      BLOB NOT NULL
);`

// Close releases the underlying database handle.
func (c *Cache) Close() error { return c.db.Close() }

// Key returns the cache key for a given Triangle source text: the hex-encoded
// SHA-256 of its bytes.
func Key(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

// Lookup returns the cached object code for key, if present.
func (c *Cache) Lookup(key string) (object []byte, ok bool, err error) {
	row := c.db.QueryRow(`SELECT object FROM object_cache WHERE source_hash = ?`, key)
	if err := row.Scan(&object); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache: lookup: %w", err)
	}
	return object, true, nil
}

// Store records object as the result of compiling the source that hashes to
// key, replacing any previous entry.
func (c *Cache) Store(key string, object []byte) error {
	_, err := c.db.Exec(
		`INSERT INTO object_cache (source_hash, object) VALUES (?, ?)
		 ON CONFLICT(source_hash) DO UPDATE SET object = excluded.object`,
		key, object,
	)
	if err != nil {
		return fmt.Errorf("cache: store: %w", err)
	}
	return nil
}
