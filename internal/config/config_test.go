package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/config"
)

// TestLoad_defaults verifies that every value falls back to its default when
// no env vars are set.
func TestLoad_defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("SEARCH_DELAY", "")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	require.Equal(t, time.Second, cfg.SearchDelay)
}

// TestLoad_overrides verifies that all values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("SEARCH_DELAY", "250ms")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	require.Equal(t, 250*time.Millisecond, cfg.SearchDelay)
}

// TestLoad_invalidSearchDelay verifies that an unparsable or negative delay
// is rejected with an error naming the variable.
func TestLoad_invalidSearchDelay(t *testing.T) {
	t.Setenv("SEARCH_DELAY", "soon")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "SEARCH_DELAY")
}

func TestLoad_negativeSearchDelay(t *testing.T) {
	t.Setenv("SEARCH_DELAY", "-5s")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "SEARCH_DELAY")
}
