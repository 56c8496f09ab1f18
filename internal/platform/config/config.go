// Copyright (c) 2026 Sommelier. All rights reserved.
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

Once loaded, configuration is read-only and passed to components through their
constructors.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the Sommelier API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL), audit log only
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL string        `env:"REDIS_URL,required,notEmpty"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	// Recommendation service
	RecoAPIURL    string        `env:"RECO_API_URL,required,notEmpty"`
	RecoAPIToken  string        `env:"RECO_API_TOKEN,required,notEmpty"`
	RecoRateLimit float64       `env:"RECO_RATE_LIMIT" envDefault:"10"`
	RecoTimeout   time.Duration `env:"RECO_TIMEOUT"    envDefault:"10s"`

	// Managed restaurant
	RestaurantID  string `env:"RESTAURANT_ID,required,notEmpty"`
	SalesPoints   int    `env:"SALES_POINTS"   envDefault:"1"`
	DefaultLocale string `env:"DEFAULT_LOCALE" envDefault:"fr"`

	// Operator token verification. The private key is only needed to mint
	// tokens locally (development tooling).
	JWTPubKeyPath  string `env:"JWT_PUBLIC_KEY_PATH,required,notEmpty"`
	JWTPrivKeyPath string `env:"JWT_PRIVATE_KEY_PATH"`

	// Inbound per-address rate limit
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS"   envDefault:"20"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"40"`

	// Cross-Origin Resource Sharing
	ExtraOrigins []string `env:"EXTRA_ORIGINS" envSeparator:","`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.SalesPoints < 1 {
		return nil, fmt.Errorf("config: SALES_POINTS must be at least 1, got %d", cfg.SalesPoints)
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

// AllowedOrigins returns the extra CORS origins accepted in production.
func (c *Config) AllowedOrigins() []string {
	return c.ExtraOrigins
}
