// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// SearchDelay is the simulated latency of the demo flight and hotel
	// searches. Defaults to 1s. Set SEARCH_DELAY to any time.Duration
	// string ("250ms", "2s") to override; 0 disables the delay.
	SearchDelay time.Duration
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error when a variable is set but cannot be parsed.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
	}

	delay, err := time.ParseDuration(getEnv("SEARCH_DELAY", "1s"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid SEARCH_DELAY: %w", err)
	}
	if delay < 0 {
		return Config{}, fmt.Errorf("invalid SEARCH_DELAY: must not be negative")
	}
	cfg.SearchDelay = delay

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
