package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ADDR", "APP_BASE_URL", "APP_ENV", "LOG_FORMAT", "LOG_LEVEL", "CATALOG_PATH", "CATALOG_WATCH", "PLAYGROUND_URL", "API_RATE_LIMIT"} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "https://nextjs.zbd.dev", cfg.PlaygroundURL)
	assert.Equal(t, 60, cfg.APIRateLimit)
	assert.False(t, cfg.CatalogWatch)
	assert.True(t, cfg.IsDevelopment())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("APP_ADDR", ":9000")
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("CATALOG_PATH", "/etc/docs/methods.json")
	t.Setenv("CATALOG_WATCH", "true")
	t.Setenv("API_RATE_LIMIT", "5")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.CatalogWatch)
	assert.Equal(t, 5, cfg.APIRateLimit)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"bad log format":         {"LOG_FORMAT": "xml"},
		"bad env":                {"APP_ENV": "staging"},
		"bad base url":           {"APP_BASE_URL": "not a url"},
		"non-numeric rate limit": {"API_RATE_LIMIT": "lots"},
		"zero rate limit":        {"API_RATE_LIMIT": "0"},
		"bad bool":               {"CATALOG_WATCH": "sometimes"},
		"watch without path":     {"CATALOG_WATCH": "true", "CATALOG_PATH": ""},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}
