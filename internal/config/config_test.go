package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
	return dir
}

func TestLoadRepoConfig(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "..", "configs"))
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "skillerset_session", cfg.Session.CookieName)
	assert.False(t, cfg.Redis.Enabled)
	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:3000")
	assert.Equal(t, filepath.Join("..", "..", "configs"), cfg.ConfigDir)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "server:\n  mode: release\n"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, 24, cfg.Session.MaxAgeHours)
	assert.Equal(t, 600, cfg.RateLimit.MaxRequests)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CONTENT_DIR", "/srv/content")

	cfg, err := LoadConfig(writeConfig(t, "server:\n  port: \"8080\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "/srv/content", cfg.Content.Dir)
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown mode", "server:\n  mode: production\n"},
		{"unknown driver", "database:\n  driver: postgres\n"},
		{"non-positive session age", "session:\n  max_age_hours: 0\n"},
		{"non-positive rate limit", "rate_limit:\n  max_requests: -1\n"},
		{"tracing without endpoint", "tracing:\n  enabled: true\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
}
