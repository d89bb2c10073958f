// Package config handles server configuration:
// defaults overlaid with environment variables, then command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// Config holds runtime settings for the authd server.
//
// Fields:
//   - Address: bind address for the HTTP endpoint.
//   - DatabasePath: path to the SQLite database file.
//   - TokenSecret: HMAC secret for signing bearer tokens (HS256).
//   - SessionSecret: HMAC secret for signing session cookies.
//     Intentionally independent from TokenSecret.
//   - TokenTTL: lifetime of issued bearer tokens.
//   - SessionTTL: lifetime of server-side sessions.
type Config struct {
	Address       string
	DatabasePath  string
	TokenSecret   string
	SessionSecret string
	TokenTTL      time.Duration
	SessionTTL    time.Duration
}

// Переменные окружения
const (
	EnvAddress       = "AUTHD_ADDRESS"
	EnvDatabasePath  = "AUTHD_DATABASE_PATH"
	EnvTokenSecret   = "AUTHD_TOKEN_SECRET"
	EnvSessionSecret = "AUTHD_SESSION_SECRET"
	EnvTokenTTL      = "AUTHD_TOKEN_TTL"
	EnvSessionTTL    = "AUTHD_SESSION_TTL"
)

// LoadDefaults populates Config with development defaults.
// Секреты по умолчанию пусты: Validate не пропустит запуск без них
func (c *Config) LoadDefaults() {
	c.Address = ":3000"
	c.DatabasePath = "authd.db"
	c.TokenTTL = time.Hour
	c.SessionTTL = 24 * time.Hour
}

// Load builds a Config by applying defaults, then overlaying values
// from environment variables and finally from command-line flags
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}
	if err := cfg.parseFlags(os.Args[1:]); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadEnv перекрывает поля Config значениями переменных окружения
func (c *Config) loadEnv() error {
	if v, ok := os.LookupEnv(EnvAddress); ok {
		c.Address = v
	}
	if v, ok := os.LookupEnv(EnvDatabasePath); ok {
		c.DatabasePath = v
	}
	if v, ok := os.LookupEnv(EnvTokenSecret); ok {
		c.TokenSecret = v
	}
	if v, ok := os.LookupEnv(EnvSessionSecret); ok {
		c.SessionSecret = v
	}
	if v, ok := os.LookupEnv(EnvTokenTTL); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTokenTTL, err)
		}
		c.TokenTTL = d
	}
	if v, ok := os.LookupEnv(EnvSessionTTL); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvSessionTTL, err)
		}
		c.SessionTTL = d
	}

	return nil
}

// Validate проверяет конфигурацию перед запуском.
// Секреты токенов и сессий обязаны быть заданы и различаться:
// общий секрет на две подсистемы ослабляет обе
func (c *Config) Validate() error {
	if c.Address == "" {
		return errors.New("address must not be empty")
	}
	if c.DatabasePath == "" {
		return errors.New("database path must not be empty")
	}
	if c.TokenSecret == "" {
		return fmt.Errorf("%s must be set", EnvTokenSecret)
	}
	if c.SessionSecret == "" {
		return fmt.Errorf("%s must be set", EnvSessionSecret)
	}
	if c.TokenSecret == c.SessionSecret {
		return errors.New("token secret and session secret must differ")
	}
	if c.TokenTTL <= 0 {
		return errors.New("token TTL must be positive")
	}
	if c.SessionTTL <= 0 {
		return errors.New("session TTL must be positive")
	}
	return nil
}
