package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"sync"
	"time"

	"github.com/marcboeker/go-duckdb"
	"github.com/sirupsen/logrus"
)

// DefaultQuotaBytes caps the store at roughly what a browser grants a
// single origin of localStorage.
const DefaultQuotaBytes = 5 << 20

// DuckKV is a DuckDB-backed key-value store. A single `kv` table holds
// one row per logical key; the total payload size across all keys is
// bounded by a byte quota enforced on every write.
type DuckKV struct {
	db       *sql.DB
	dbPath   string
	maxBytes int64
	mu       sync.Mutex
	log      *logrus.Entry
}

// NewDuckKV opens (or creates) the store file at dbPath. maxBytes <= 0
// falls back to DefaultQuotaBytes.
func NewDuckKV(dbPath string, maxBytes int64, log *logrus.Entry) (*DuckKV, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultQuotaBytes
	}

	connector, err := duckdb.NewConnector(dbPath, func(execer driver.ExecerContext) error {
		pragmas := []string{
			"PRAGMA memory_limit='256MB'",
			"PRAGMA threads=2",
			"PRAGMA enable_progress_bar=false",
		}
		for _, pragma := range pragmas {
			if _, err := execer.ExecContext(context.Background(), pragma, nil); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create DuckDB connector: %w", err)
	}

	db := sql.OpenDB(connector)

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key        VARCHAR PRIMARY KEY,
			value      BLOB NOT NULL,
			updated_at BIGINT NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create kv table: %w", err)
	}

	return &DuckKV{
		db:       db,
		dbPath:   dbPath,
		maxBytes: maxBytes,
		log:      log,
	}, nil
}

// Get returns the value stored under key, or ErrNotFound.
func (s *DuckKV) Get(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var value []byte
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("kv get %q: %w", key, err)
	}
	return value, nil
}

// Put replaces the value stored under key. When the write would push the
// total stored bytes past the quota it fails with ErrQuotaExceeded and
// leaves the prior value in place.
func (s *DuckKV) Put(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var others int64
	err := s.db.QueryRow(
		"SELECT COALESCE(SUM(OCTET_LENGTH(value)), 0) FROM kv WHERE key <> ?", key,
	).Scan(&others)
	if err != nil {
		return fmt.Errorf("kv size check: %w", err)
	}

	if others+int64(len(value)) > s.maxBytes {
		s.log.WithFields(logrus.Fields{
			"key":   key,
			"bytes": len(value),
			"quota": s.maxBytes,
		}).Warn("kv write rejected: quota exceeded")
		return ErrQuotaExceeded
	}

	_, err = s.db.Exec(
		"INSERT OR REPLACE INTO kv (key, value, updated_at) VALUES (?, ?, ?)",
		key, value, time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("kv put %q: %w", key, err)
	}
	return nil
}

// Delete removes a key. Deleting an absent key is a no-op.
func (s *DuckKV) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("kv delete %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying database. The store file is kept; it is
// the durable state, not a temp artifact.
func (s *DuckKV) Close() error {
	return s.db.Close()
}

var _ KV = (*DuckKV)(nil)
