package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "SERVE_API", "BACKEND_BASE_URL", "BACKEND_TIMEOUT", "CONTENT_FILE", "COOKIE_SECURE",
		"STORE_DRIVER", "DATABASE_PATH", "LOG_LEVEL", "LOG_DEVELOPMENT", "CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.True(t, cfg.Server.ServeAPI)
	assert.Equal(t, "http://localhost:8080", cfg.Site.BackendBaseURL)
	assert.Zero(t, cfg.Site.BackendTimeout)
	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "portfolio.db", cfg.Store.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "127.0.0.1:9090")
	t.Setenv("BACKEND_BASE_URL", "https://api.example.com/")
	t.Setenv("BACKEND_TIMEOUT", "15")
	t.Setenv("STORE_DRIVER", "MEMORY")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
	assert.Equal(t, "9090", cfg.Server.Port())
	assert.Equal(t, "https://api.example.com", cfg.Site.BackendBaseURL)
	assert.Equal(t, 15*time.Second, cfg.Site.BackendTimeout)
	assert.Equal(t, DriverMemory, cfg.Store.Driver)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"PORT":             "80 80",
		"BACKEND_BASE_URL": "ftp://example.com",
		"BACKEND_TIMEOUT":  "soon",
		"STORE_DRIVER":     "mongo",
		"LOG_LEVEL":        "loud",
		"SERVE_API":        "perhaps",
	}

	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestParseDurationEnvAcceptsGoSyntax(t *testing.T) {
	t.Setenv("BACKEND_TIMEOUT", "1m30s")

	got, err := parseDurationEnv("BACKEND_TIMEOUT", 0)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, got)
}
