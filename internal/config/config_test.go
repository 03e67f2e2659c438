package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"querykeys/internal/models"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.Server.Addr = DefaultServerAddr
	cfg.Server.Port = DefaultServerPort
	cfg.Downstream.URL = DefaultDownstreamURL
	cfg.Downstream.Timeout = DefaultDownstreamTimeout
	cfg.Log.Level = DefaultLogLevel
	cfg.Log.Format = DefaultLogFormat
	return cfg
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: "9090"
downstream:
  url: http://search.internal:3000/search
  timeout: 2s
  rate_limit: 5
vocabulary:
  language: [english, hindi, tamil]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultServerAddr, cfg.Server.Addr, "unset keys fall back to defaults")
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "http://search.internal:3000/search", cfg.Downstream.URL)
	assert.Equal(t, 2*time.Second, cfg.Downstream.Timeout)
	assert.Equal(t, 5.0, cfg.Downstream.RateLimit)
	assert.Equal(t, []string{"english", "hindi", "tamil"}, cfg.Vocabulary["language"])
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFile_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: info\n"), 0o600))
	t.Setenv("QUERYKEYS_DOWNSTREAM_URL", "http://env-host:4000/search")

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "http://env-host:4000/search", cfg.Downstream.URL)
}

func TestLoadConfigFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unterminated"), 0o600))

	_, err := LoadConfigFile(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"missing port", func(c *Config) { c.Server.Port = "" }, "server.port"},
		{"missing url", func(c *Config) { c.Downstream.URL = "" }, "downstream.url is required"},
		{"relative url", func(c *Config) { c.Downstream.URL = "/search" }, "absolute http(s) URL"},
		{"negative timeout", func(c *Config) { c.Downstream.Timeout = -time.Second }, "downstream.timeout"},
		{"negative rate limit", func(c *Config) { c.Downstream.RateLimit = -1 }, "downstream.rate_limit"},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"unknown category", func(c *Config) { c.Vocabulary = map[string][]string{"genre": {"drama"}} }, "unknown category"},
		{"empty category", func(c *Config) { c.Vocabulary = map[string][]string{"title": {}} }, "at least one word"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			assert.ErrorContains(t, err, tt.errMsg)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}
