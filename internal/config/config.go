// Package config loads and validates server configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	CORSOrigins []string

	// RedisURL is the session store connection string. Required.
	RedisURL string

	// DatabaseURL is the Postgres connection string. When set the catalog is
	// read from the database instead of any other source.
	DatabaseURL string

	// CatalogURL is the base URL of an upstream atlas server to mirror.
	// Used when DatabaseURL is empty.
	CatalogURL string

	// DatasetFile is an optional YAML catalog file.
	DatasetFile string

	// BearerToken guards the session routes when non-empty.
	BearerToken string

	// SessionTTL is how long an idle session survives. Defaults to 24h.
	SessionTTL time.Duration

	// RateLimit is the number of requests allowed per IP per minute. Defaults to 60.
	RateLimit int
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set or that
// fail to parse.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		CatalogURL:  os.Getenv("CATALOG_URL"),
		DatasetFile: os.Getenv("DATASET_FILE"),
		BearerToken: os.Getenv("BEARER_TOKEN"),
	}

	var missing []string

	cfg.RedisURL = os.Getenv("REDIS_URL")
	if cfg.RedisURL == "" {
		missing = append(missing, "REDIS_URL")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "24h"))
	if err != nil {
		return Config{}, fmt.Errorf("parsing SESSION_TTL: %w", err)
	}
	if ttl <= 0 {
		return Config{}, fmt.Errorf("SESSION_TTL must be positive, got %s", ttl)
	}
	cfg.SessionTTL = ttl

	limit, err := strconv.Atoi(getEnv("RATE_LIMIT_PER_MINUTE", "60"))
	if err != nil {
		return Config{}, fmt.Errorf("parsing RATE_LIMIT_PER_MINUTE: %w", err)
	}
	if limit <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive, got %d", limit)
	}
	cfg.RateLimit = limit

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
