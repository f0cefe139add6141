package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/FumiHubCNS/hvscope/internal/domain"
	"github.com/FumiHubCNS/hvscope/internal/ports"
)

// SQLiteStore reads the append-only monitor log written by the slow-control
// poller. One row per polling cycle per module address.
type SQLiteStore struct {
	db    *sqlx.DB
	table string
}

// Open opens the database file read-only and verifies the connection.
func Open(path, table string) (*SQLiteStore, error) {
	db, err := sqlx.Connect("sqlite3", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return nil, fmt.Errorf("open log store %s: %w", path, err)
	}
	return NewSQLiteStore(db, table), nil
}

// NewSQLiteStore wraps an existing handle; used by tests and embedders.
func NewSQLiteStore(db *sqlx.DB, table string) *SQLiteStore {
	if table == "" {
		table = "monitor_logs"
	}
	return &SQLiteStore{db: db, table: table}
}

func (s *SQLiteStore) ReadAll(ctx context.Context, address string) ([]domain.LogEntry, error) {
	q := fmt.Sprintf(`SELECT timestamp, json_data FROM %s WHERE ip_address = ? ORDER BY timestamp ASC`, s.table)

	entries := []domain.LogEntry{}
	if err := s.db.SelectContext(ctx, &entries, q, address); err != nil {
		return nil, fmt.Errorf("read monitor logs for %s: %w", address, err)
	}
	return entries, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ ports.LogStore = (*SQLiteStore)(nil)
