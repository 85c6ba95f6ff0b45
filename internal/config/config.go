// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the service.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Catalog  CatalogConfig  `koanf:"catalog"`
	Database DatabaseConfig `koanf:"database"`
	Events   EventsConfig   `koanf:"events"`
	Logging  LoggingConfig  `koanf:"logging"`
	API      APIConfig      `koanf:"api"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	// Host is the listen address.
	Host string `koanf:"host"`

	// Port is the listen port.
	Port int `koanf:"port"`

	// ReadTimeout bounds request reads.
	ReadTimeout time.Duration `koanf:"read_timeout"`

	// WriteTimeout bounds response writes.
	WriteTimeout time.Duration `koanf:"write_timeout"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the host:port listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CatalogConfig controls catalog loading.
type CatalogConfig struct {
	// Path is the CSV catalog file. A missing file is seeded with the
	// bundled sample catalog.
	Path string `koanf:"path"`
}

// DatabaseConfig controls the event database.
type DatabaseConfig struct {
	// Path is the DuckDB database file. Empty means in-memory.
	Path string `koanf:"path"`
}

// EventsConfig controls event logging behavior.
type EventsConfig struct {
	// CSVPath is the append-only CSV mirror. Empty disables the mirror.
	CSVPath string `koanf:"csv_path"`

	// RetentionDays is the window kept by periodic purges.
	RetentionDays int `koanf:"retention_days"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is the minimum level: debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	// Caller includes caller file:line in log records.
	Caller bool `koanf:"caller"`
}

// APIConfig controls API behavior.
type APIConfig struct {
	// RecommendationLimit is how many items a search returns.
	RecommendationLimit int `koanf:"recommendation_limit"`

	// RateLimitRequests is the allowed requests per window per client.
	RateLimitRequests int `koanf:"rate_limit_requests"`

	// RateLimitWindow is the rate limiting window.
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
}

// Validate checks the merged configuration for values that would fail
// at runtime.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range 1-65535", c.Server.Port)
	}
	if c.Catalog.Path == "" {
		return fmt.Errorf("catalog.path must not be empty")
	}
	if c.API.RecommendationLimit < 1 {
		return fmt.Errorf("api.recommendation_limit must be positive, got %d", c.API.RecommendationLimit)
	}
	if c.Events.RetentionDays < 1 {
		return fmt.Errorf("events.retention_days must be positive, got %d", c.Events.RetentionDays)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
