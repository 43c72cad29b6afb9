// Copyright (c) 2026 Syloma. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (content client, caches) via constructors.
  - Optional infrastructure: Redis, PostgreSQL and tracing are enabled by their URL.
*/
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Content modes.
const (
	ModeStatic = "static"
	ModeLive   = "live"
)

// # Configuration Schema

// Config holds all runtime configuration for the Syloma API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Content API
	CMSMode           string        `env:"CMS_MODE"            envDefault:"static"`
	CMSBaseURL        string        `env:"CMS_API_BASE_URL"    envDefault:"https://api.intuitiverse.com"`
	CMSProjectID      string        `env:"CMS_PROJECT_ID"`
	CMSAccessToken    string        `env:"CMS_ACCESS_TOKEN"`
	CMSRequestTimeout time.Duration `env:"CMS_REQUEST_TIMEOUT" envDefault:"10s"`
	CMSCacheTTL       time.Duration `env:"CMS_CACHE_TTL"       envDefault:"1m"`

	// Shared read cache (Redis). Empty means in-process cache.
	RedisURL string `env:"REDIS_URL"`

	// Submission journal (PostgreSQL). Empty disables the journal.
	DatabaseURL string `env:"DATABASE_URL"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Cross-Origin Resource Sharing, comma separated.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// Tracing (OTLP/HTTP collector URL). Empty disables export.
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	cfg.CMSMode = strings.ToLower(strings.TrimSpace(cfg.CMSMode))
	if cfg.CMSMode != ModeStatic && cfg.CMSMode != ModeLive {
		return nil, fmt.Errorf("config: CMS_MODE must be %q or %q, got %q", ModeStatic, ModeLive, cfg.CMSMode)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// HasCredentials reports whether both the project id and the access token are set.
func (c *Config) HasCredentials() bool {
	return strings.TrimSpace(c.CMSProjectID) != "" && strings.TrimSpace(c.CMSAccessToken) != ""
}

// LiveMode reports whether reads should try the remote content API first.
func (c *Config) LiveMode() bool {
	return c.CMSMode == ModeLive && c.HasCredentials()
}

// Origins returns the extra CORS origins with blanks removed.
func (c *Config) Origins() []string {
	origins := make([]string, 0, len(c.AllowedOrigins))
	for _, origin := range c.AllowedOrigins {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
