package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
)

const defaultPostgresTable = "kv_entries"

var tableNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

type postgresStore struct {
	db    *sql.DB
	table string
}

// NewPostgres returns a store backed by a key/value table, creating it if missing.
func NewPostgres(ctx context.Context, db *sql.DB, table string) (Store, error) {
	if db == nil {
		return nil, errors.New("storage: postgres driver requires database handle")
	}
	if table == "" {
		table = defaultPostgresTable
	}
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("storage: invalid table name %q", table)
	}
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			name TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`, table)
	if _, err := db.ExecContext(ctx, query); err != nil {
		return nil, fmt.Errorf("storage: create table: %w", err)
	}
	return &postgresStore{db: db, table: table}, nil
}

func (s *postgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	query := fmt.Sprintf(`SELECT value FROM %s WHERE name = $1`, s.table)
	var value string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *postgresStore) Set(ctx context.Context, key, value string) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = NOW()
	`, s.table)
	_, err := s.db.ExecContext(ctx, query, key, value)
	return err
}

func (s *postgresStore) Remove(ctx context.Context, key string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE name = $1`, s.table)
	_, err := s.db.ExecContext(ctx, query, key)
	return err
}

func (s *postgresStore) Close(context.Context) error {
	return s.db.Close()
}
