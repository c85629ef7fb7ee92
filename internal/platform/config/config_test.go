package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "storefront", cfg.App.Name)
	assert.Equal(t, "local", cfg.App.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, int64(1<<20), cfg.Server.MaxRequestSize)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "http://localhost:3000", cfg.Services.Backend.BaseURL)
	assert.Equal(t, "backend-api", cfg.Services.Backend.Name)
	assert.Equal(t, 3, cfg.Client.Retry.MaxAttempts)
	assert.Equal(t, 100*time.Millisecond, cfg.Client.Retry.InitialInterval)
	assert.Equal(t, 3, cfg.Client.CircuitBreaker.HalfOpenLimit)
	assert.Equal(t, 90*time.Second, cfg.Client.Transport.IdleConnTimeout)

	assert.False(t, cfg.Recaptcha.Enabled)
	assert.InDelta(t, 0.5, cfg.Recaptcha.MinScore, 0.0001)
	assert.False(t, cfg.Storage.Enabled)
	assert.Equal(t, 168*time.Hour, cfg.Storage.PresignTTL)
	assert.Empty(t, cfg.Database.DSN)

	assert.Equal(t, "sc_visitor", cfg.Visitor.CookieName)
	assert.Equal(t, 8760*time.Hour, cfg.Visitor.TTL)
	assert.Equal(t, 2*time.Second, cfg.Site.NewsletterPromptDelay)
	assert.Equal(t, 5, cfg.Uploads.MaxSizeMB)
	assert.Equal(t, []string{".pdf", ".doc", ".docx"}, cfg.Uploads.AllowedExtensions)
	assert.Equal(t, map[string]bool{"newsletter-prompt": true, "products-page-ads": true}, cfg.Features)

	assert.Equal(t, "./logs/storefront.log", cfg.Log.File.Path)
	assert.Equal(t, 3, cfg.Log.File.MaxBackups)
}

func TestLoad_ProfileLayering(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "configs"), 0o755))

	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", name), []byte(body), 0o600))
	}

	write("base.yaml", `
log:
  level: debug
services:
  backend:
    base_url: https://api.base.test
features:
  products-page-ads: false
`)
	write("qa.yaml", `
services:
  backend:
    base_url: https://api.qa.test
server:
  request_timeout: 5s
`)

	t.Chdir(dir)

	t.Run("profile overrides base", func(t *testing.T) {
		cfg, err := Load("qa")
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "https://api.qa.test", cfg.Services.Backend.BaseURL)
		assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
		assert.False(t, cfg.Features["products-page-ads"])
		assert.True(t, cfg.Features["newsletter-prompt"])
	})

	t.Run("missing profile keeps base", func(t *testing.T) {
		cfg, err := Load("nonexistent")
		require.NoError(t, err)

		assert.Equal(t, "https://api.base.test", cfg.Services.Backend.BaseURL)
	})

	t.Run("environment beats files", func(t *testing.T) {
		t.Setenv("APP_SERVICES_BACKEND_BASE__URL", "https://api.env.test")
		t.Setenv("APP_LOG_LEVEL", "warn")

		cfg, err := Load("qa")
		require.NoError(t, err)

		assert.Equal(t, "https://api.env.test", cfg.Services.Backend.BaseURL)
		assert.Equal(t, "warn", cfg.Log.Level)
	})

	t.Run("malformed profile is an error", func(t *testing.T) {
		write("broken.yaml", "server: [port")

		_, err := Load("broken")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `loading profile config "broken"`)
	})
}

func TestLoad_EnvironmentTypes(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv("APP_SERVER_PORT", "9090")
	t.Setenv("APP_STORAGE_ENABLED", "true")
	t.Setenv("APP_STORAGE_PRESIGN__TTL", "24h")
	t.Setenv("APP_RECAPTCHA_MIN__SCORE", "0.7")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.Storage.Enabled)
	assert.Equal(t, 24*time.Hour, cfg.Storage.PresignTTL)
	assert.InDelta(t, 0.7, cfg.Recaptcha.MinScore, 0.0001)
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"APP_SERVER_PORT":                           "server.port",
		"APP_DATABASE_DSN":                          "database.dsn",
		"APP_STORAGE_PRESIGN__TTL":                  "storage.presign_ttl",
		"APP_CLIENT_CIRCUIT__BREAKER_MAX__FAILURES": "client.circuit_breaker.max_failures",
	}

	for in, want := range tests {
		assert.Equal(t, want, envKey(in), in)
	}
}
