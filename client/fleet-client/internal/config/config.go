package config

import (
	"errors"
	"net/url"
	"strings"
	"time"

	libconfig "motofleet/backend/libs/config"
	"motofleet/client/fleet-client/internal/i18n"
	"motofleet/client/fleet-client/internal/storage"
)

// Config represents client configuration loaded from YAML/env.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Storage StorageConfig `yaml:"storage"`
	Locale  string        `yaml:"locale" env:"FLEET_LOCALE"`
}

// APIConfig points the client at the fleet REST API.
type APIConfig struct {
	BaseURL string `yaml:"baseUrl" env:"FLEET_API_URL"`
	// Timeout of zero keeps the HTTP stack default.
	Timeout time.Duration `yaml:"timeout" env:"FLEET_API_TIMEOUT"`
}

// StorageConfig selects where the session is persisted.
type StorageConfig struct {
	Driver        string `yaml:"driver" env:"FLEET_STORAGE_DRIVER"`
	Path          string `yaml:"path" env:"FLEET_STORAGE_PATH"`
	RedisAddr     string `yaml:"redisAddr" env:"FLEET_REDIS_ADDR"`
	RedisPassword string `yaml:"redisPassword" env:"FLEET_REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redisDB" env:"FLEET_REDIS_DB"`
	RedisPrefix   string `yaml:"redisPrefix" env:"FLEET_REDIS_PREFIX"`
	PostgresDSN   string `yaml:"postgresDsn" env:"FLEET_POSTGRES_DSN"`
}

// Overrides carry command-line values that win over file and environment.
type Overrides struct {
	ConfigPath string
	BaseURL    string
}

// Load reads configuration using the shared config loader.
func Load(o Overrides) (*Config, error) {
	cfg := &Config{
		Storage: StorageConfig{Driver: storage.DriverFile},
		Locale:  i18n.DefaultLocale,
	}

	if err := libconfig.Load(cfg, libconfig.Options{Path: o.ConfigPath, DotEnv: []string{".env"}}); err != nil {
		return nil, err
	}
	if o.BaseURL != "" {
		cfg.API.BaseURL = o.BaseURL
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required values.
func (c *Config) Validate() error {
	c.API.BaseURL = strings.TrimSpace(c.API.BaseURL)
	if c.API.BaseURL == "" {
		return errors.New("config: api base URL is required")
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("config: api base URL must be an absolute http(s) URL")
	}
	if c.API.Timeout < 0 {
		return errors.New("config: api timeout must not be negative")
	}
	if strings.TrimSpace(c.Locale) == "" {
		c.Locale = i18n.DefaultLocale
	}
	return nil
}

// StorageSettings converts the storage section for the storage factory.
func (c *Config) StorageSettings() storage.Config {
	return storage.Config{
		Driver: c.Storage.Driver,
		Path:   c.Storage.Path,
		Redis: storage.RedisConfig{
			Addr:     c.Storage.RedisAddr,
			Password: c.Storage.RedisPassword,
			DB:       c.Storage.RedisDB,
			Prefix:   c.Storage.RedisPrefix,
		},
		Postgres: storage.PostgresConfig{DSN: c.Storage.PostgresDSN},
	}
}
