// Package store implements the SQLite record sink for the ingestion
// pipeline: author upserts, transactional per-partition work inserts,
// author-reference resolution, and the top-300 marking pass.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/digua-cn/shici/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// DBFileName is the database file created inside the data directory.
const DBFileName = "shici.db"

// Store owns the SQLite session for one ingestion run. It is the only
// writer to the database while open.
type Store struct {
	db *sql.DB
}

// Compile-time interface check: Store must implement RecordSink.
var _ types.RecordSink = (*Store)(nil)

// Open creates the data directory if needed, opens the database, verifies
// connectivity, and applies the schema. Existing data is kept; re-opening an
// already populated database is the normal re-run path. A connection
// failure here is fatal to the run.
func Open(ctx context.Context, dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	dsn := filepath.Join(dataDir, DBFileName) +
		"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database session. Idempotent.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	if err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	return nil
}

// conn returns the live database handle, or ErrStoreClosed after Close.
func (s *Store) conn() (*sql.DB, error) {
	if s.db == nil {
		return nil, types.ErrStoreClosed
	}
	return s.db, nil
}

// CountAuthors returns the number of author rows.
func (s *Store) CountAuthors(ctx context.Context) (int, error) {
	return s.countRows(ctx, "author")
}

// CountWorks returns the number of work rows.
func (s *Store) CountWorks(ctx context.Context) (int, error) {
	return s.countRows(ctx, "work")
}

func (s *Store) countRows(ctx context.Context, table string) (int, error) {
	db, err := s.conn()
	if err != nil {
		return 0, err
	}
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting %s rows: %w", table, err)
	}
	return n, nil
}
