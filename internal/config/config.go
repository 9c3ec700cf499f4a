// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// Remote news feed (headless WordPress API)
	NewsAPIBaseURL string
	NewsTimeout    time.Duration
	NewsCacheTTL   time.Duration

	// PostgreSQL connection (contact enquiries). Optional — leave
	// POSTGRES_HOST empty to run without enquiry persistence.
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Valkey (Redis-compatible cache). Optional — leave VALKEY_HOST empty
	// to run without the page and feed caches.
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// Featured slider auto-advance interval on the news page.
	FeaturedInterval time.Duration
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if critical values
// are missing in production mode.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		NewsAPIBaseURL: envOrDefault("NEWS_API_BASE_URL", "https://nolimit.buzz/headless/swapstation/wp-json/headless/v1"),
		NewsTimeout:    envDuration("NEWS_TIMEOUT_SECONDS", 10*time.Second),
		NewsCacheTTL:   envDuration("NEWS_CACHE_TTL_SECONDS", 5*time.Minute),

		DBHost:     os.Getenv("POSTGRES_HOST"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "swapstation"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "swapstation"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		FeaturedInterval: envDuration("FEATURED_INTERVAL_SECONDS", 6*time.Second),
	}

	if cfg.Env == "production" {
		if cfg.DBHost != "" && cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// HasDatabase reports whether a PostgreSQL host is configured.
func (c *Config) HasDatabase() bool {
	return c.DBHost != ""
}

// HasValkey reports whether a Valkey host is configured.
func (c *Config) HasValkey() bool {
	return c.ValkeyHost != ""
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envDuration reads a whole-seconds environment variable as a duration,
// returning a fallback if unset or unparseable.
func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return fallback
	}
	return time.Duration(secs) * time.Second
}
