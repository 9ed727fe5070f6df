package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	libdb "motofleet/backend/libs/db"
	libredis "motofleet/backend/libs/redis"
)

// Driver identifiers.
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

// Dependencies lets callers hand in already-open handles (tests, shared pools).
type Dependencies struct {
	SQLite   *gorm.DB
	Postgres *sql.DB
}

// New creates a store for cfg.Driver. An empty driver means memory.
func New(ctx context.Context, cfg Config, deps Dependencies) (Store, error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.Driver))
	if driver == "" {
		driver = DriverMemory
	}

	switch driver {
	case DriverMemory:
		return NewMemory(), nil
	case DriverFile:
		return NewFile(pathOrDefault(cfg.Path, "session.yaml"))
	case DriverSQLite:
		db := deps.SQLite
		if db == nil {
			var err error
			db, err = libdb.NewSQLiteDB(pathOrDefault(cfg.Path, "session.db"))
			if err != nil {
				return nil, fmt.Errorf("storage: open sqlite: %w", err)
			}
		}
		return NewSQLite(ctx, db)
	case DriverRedis:
		client, err := libredis.NewRedisClient(ctx, libredis.Options{
			Addr:     cfg.Redis.Addr,
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, fmt.Errorf("storage: connect redis: %w", err)
		}
		return NewRedis(client, cfg.Redis.Prefix), nil
	case DriverPostgres:
		db := deps.Postgres
		if db == nil {
			var err error
			db, err = libdb.NewPostgresDB(ctx, cfg.Postgres.DSN)
			if err != nil {
				return nil, fmt.Errorf("storage: connect postgres: %w", err)
			}
		}
		return NewPostgres(ctx, db, cfg.Postgres.Table)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDriver, driver)
	}
}

func pathOrDefault(path, name string) string {
	if strings.TrimSpace(path) != "" {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "motofleet", name)
}
