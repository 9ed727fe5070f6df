package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	libconfig "motofleet/backend/libs/config"
)

// Config represents sandbox configuration loaded from YAML/env.
type Config struct {
	HTTP struct {
		Port string `yaml:"port" env:"SANDBOX_HTTP_PORT"`
	} `yaml:"http"`
	JWT struct {
		Secret           string `yaml:"secret" env:"SANDBOX_JWT_SECRET"`
		ExpiresInMinutes int    `yaml:"expiresInMinutes" env:"SANDBOX_JWT_EXPIRES_MINUTES"`
	} `yaml:"jwt"`
	Seed struct {
		Enabled  bool   `yaml:"enabled" env:"SANDBOX_SEED"`
		Username string `yaml:"username" env:"SANDBOX_SEED_USERNAME"`
		Password string `yaml:"password" env:"SANDBOX_SEED_PASSWORD"`
	} `yaml:"seed"`
}

// Load reads configuration using the shared config loader. .env in the working directory is honoured.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.HTTP.Port = "8080"
	cfg.JWT.ExpiresInMinutes = 60
	cfg.Seed.Username = "admin"
	cfg.Seed.Password = "admin123"

	if err := libconfig.Load(cfg, libconfig.Options{DotEnv: []string{".env"}}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required settings.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.JWT.Secret) == "" {
		return errors.New("config: jwt secret is required")
	}
	if c.JWT.ExpiresInMinutes <= 0 {
		c.JWT.ExpiresInMinutes = 60
	}
	if c.Seed.Enabled && (c.Seed.Username == "" || c.Seed.Password == "") {
		return errors.New("config: seed requires username and password")
	}
	return nil
}

// HTTPAddress ensures we always return host:port formatted string.
func (c *Config) HTTPAddress() string {
	port := strings.TrimSpace(c.HTTP.Port)
	if port == "" {
		port = "8080"
	}
	if strings.Contains(port, ":") {
		return port
	}
	return fmt.Sprintf(":%s", port)
}

// JWTExpiration converts configured expiry to duration.
func (c *Config) JWTExpiration() time.Duration {
	if c.JWT.ExpiresInMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(c.JWT.ExpiresInMinutes) * time.Minute
}
