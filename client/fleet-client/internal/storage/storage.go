// Package storage is the persistent key-value store the client keeps its session in.
package storage

import (
	"context"
	"errors"
	"time"
)

// Keys written by the client core.
const (
	KeyToken  = "token"
	KeyUserID = "userId"
)

// ErrUnsupportedDriver is returned by New for unknown driver names.
var ErrUnsupportedDriver = errors.New("storage: unsupported driver")

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("storage: closed")

// Store is a string key-value store. A missing key reports ok=false with a nil error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close(ctx context.Context) error
}

// Config selects and tunes a driver.
type Config struct {
	Driver   string
	Path     string
	Redis    RedisConfig
	Postgres PostgresConfig
}

// RedisConfig captures connection options for the redis driver.
type RedisConfig struct {
	Addr     string
	Username string
	Password string
	DB       int
	Prefix   string
}

// PostgresConfig captures connection options for the postgres driver.
type PostgresConfig struct {
	DSN   string
	Table string
}

// entry is the row shape shared by the SQL drivers.
type entry struct {
	Key       string    `gorm:"primaryKey;column:name"`
	Value     string    `gorm:"column:value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (entry) TableName() string { return "kv_entries" }
