// Package config provides configuration management for tutormatch.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultPort is the default HTTP port for the API service.
	DefaultPort = 8080

	// DriverSQLite runs against an embedded SQLite file, the default for
	// single-node and development deployments.
	DriverSQLite = "sqlite"

	// DriverPostgres runs against a PostgreSQL server.
	DriverPostgres = "postgres"
)

// Config holds the application configuration. Values come from the
// environment; an optional .env file is loaded by the entrypoint before
// this package reads anything.
type Config struct {
	// HTTP settings
	Port            int
	ShutdownTimeout time.Duration

	// Database settings
	Driver      string // "sqlite" or "postgres"
	DatabaseURL string // postgres DSN, required for the postgres driver
	SQLitePath  string
	MaxConns    int

	// Logging
	LogLevel string // trace, debug, info, warn, error
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Port:            DefaultPort,
		ShutdownTimeout: 10 * time.Second,
		Driver:          DriverSQLite,
		SQLitePath:      "tutormatch.db",
		MaxConns:        4,
		LogLevel:        "info",
	}
}

// Load builds the configuration from environment variables, merging with
// defaults. Unset variables keep their default; set-but-invalid values are
// an error rather than a silent fallback.
func Load() (*Config, error) {
	cfg := Default()

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port < 1 || port > 65535 {
			return nil, fmt.Errorf("invalid PORT %q", v)
		}
		cfg.Port = port
	}

	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q", v)
		}
		cfg.ShutdownTimeout = d
	}

	if v := os.Getenv("DB_DRIVER"); v != "" {
		driver := strings.ToLower(strings.TrimSpace(v))
		if driver != DriverSQLite && driver != DriverPostgres {
			return nil, fmt.Errorf("invalid DB_DRIVER %q (want %q or %q)", v, DriverSQLite, DriverPostgres)
		}
		cfg.Driver = driver
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.Driver == DriverPostgres && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required with DB_DRIVER=%s", DriverPostgres)
	}

	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.SQLitePath = v
	}

	if v := os.Getenv("DB_MAX_CONNS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid DB_MAX_CONNS %q", v)
		}
		cfg.MaxConns = n
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}

	return cfg, nil
}

// ListenAddr returns the address the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}
