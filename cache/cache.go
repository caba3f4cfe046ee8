package cache

import (
	"context"
	"database/sql"
	stderrors "errors"

	_ "modernc.org/sqlite"

	"github.com/thermokit/fluidprop/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS flash_values (
	config TEXT    NOT NULL,
	output TEXT    NOT NULL,
	key1   TEXT    NOT NULL,
	val1   REAL    NOT NULL,
	key2   TEXT    NOT NULL,
	val2   REAL    NOT NULL,
	value  REAL    NOT NULL,
	PRIMARY KEY (config, output, key1, val1, key2, val2)
)`

// Key identifies one cached lookup. Config is an opaque fingerprint of
// the engine configuration (component files plus composition), so
// results from different fluids never collide.
type Key struct {
	Config string
	Output string
	K1     string
	V1     float64
	K2     string
	V2     float64
}

// normalize orders the constraint pair lexicographically so that the
// two argument orders of a commutative lookup share one row.
func (k Key) normalize() Key {
	if k.K2 < k.K1 {
		k.K1, k.K2 = k.K2, k.K1
		k.V1, k.V2 = k.V2, k.V1
	}
	return k
}

// Store is a SQLite-backed result cache. Safe for concurrent use; the
// underlying *sql.DB serializes access.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the cache database at path. Use
// ":memory:" for an ephemeral cache.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Storage("open", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Storage("init schema", err)
	}
	return &Store{db: db}, nil
}

// Get returns the cached value for k, with ok=false on a miss.
func (s *Store) Get(ctx context.Context, k Key) (float64, bool, error) {
	k = k.normalize()

	var v float64
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM flash_values
		 WHERE config=? AND output=? AND key1=? AND val1=? AND key2=? AND val2=?`,
		k.Config, k.Output, k.K1, k.V1, k.K2, k.V2).Scan(&v)
	if stderrors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Storage("get", err)
	}
	return v, true, nil
}

// Put stores value under k, replacing any previous entry.
func (s *Store) Put(ctx context.Context, k Key, value float64) error {
	k = k.normalize()

	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO flash_values
		 (config, output, key1, val1, key2, val2, value)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		k.Config, k.Output, k.K1, k.V1, k.K2, k.V2, value)
	if err != nil {
		return errors.Storage("put", err)
	}
	return nil
}

// Purge removes every entry for one configuration fingerprint.
func (s *Store) Purge(ctx context.Context, config string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM flash_values WHERE config=?`, config)
	if err != nil {
		return errors.Storage("purge", err)
	}
	return nil
}

// Len reports the number of cached entries.
func (s *Store) Len(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM flash_values`).Scan(&n); err != nil {
		return 0, errors.Storage("len", err)
	}
	return n, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
