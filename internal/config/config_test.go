package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps Load away from config files and env of the host.
func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	for key := range envKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv(ConfigPathEnvVar, "")
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.App.Addr)
	assert.Equal(t, "http://127.0.0.1:8000", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, "uk", cfg.UI.Language)
	assert.Equal(t, 30*time.Minute, cfg.Security.PurchaseTokenTTL)
	assert.Equal(t, 20, cfg.Security.PurchaseRatePerMinute)
	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:5173")
	assert.False(t, cfg.API.Breaker.Enabled)
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("API_BASE_URL", "http://backend:8000/")
	t.Setenv("API_TIMEOUT", "3s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,,")
	t.Setenv("UI_LANGUAGE", "en")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.App.Addr)
	assert.Equal(t, "http://backend:8000", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "en", cfg.UI.Language)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "app.yaml")
	body := "api:\n  base_url: http://api.internal:8001\n  breaker:\n    enabled: true\nui:\n  language: en\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("UI_LANGUAGE", "uk")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://api.internal:8001", cfg.API.BaseURL)
	assert.True(t, cfg.API.Breaker.Enabled)
	assert.Equal(t, uint32(3), cfg.API.Breaker.MaxRequests)
	assert.Equal(t, "uk", cfg.UI.Language, "env wins over file")
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string][2]string{
		"language": {"UI_LANGUAGE", "de"},
		"base url": {"API_BASE_URL", "not a url"},
		"level":    {"LOG_LEVEL", "loud"},
		"gin mode": {"GIN_MODE", "fast"},
	}
	for name, kv := range tests {
		t.Run(name, func(t *testing.T) {
			isolate(t)
			t.Setenv(kv[0], kv[1])
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
