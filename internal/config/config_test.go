package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, []string{"data/faqs.json"}, cfg.Data.FAQFiles)
	assert.Empty(t, cfg.Data.OrdersFile)
	assert.Equal(t, FallbackRoundRobin, cfg.Fallback.Strategy)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.CORS.AllowAll)
	assert.False(t, cfg.ChatLog.Enabled)
	assert.Zero(t, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, "0.0.0.0:5000", cfg.Addr())
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.supportbot.yml")

	original := DefaultConfig()
	original.Port = 8088
	original.Data.FAQFiles = []string{"faqs/**/*.yml", "extra.json"}
	original.Data.OrdersFile = "orders.yml"
	original.Fallback.Strategy = FallbackRandom
	original.Fallback.Seed = 42
	original.Log.Format = LogJSON
	original.ChatLog.Enabled = true
	original.RateLimit.RequestsPerSecond = 2.5
	original.RateLimit.Burst = 5

	require.NoError(t, original.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, original.Port, loaded.Port)
	assert.Equal(t, original.Data, loaded.Data)
	assert.Equal(t, original.Fallback.Strategy, loaded.Fallback.Strategy)
	assert.Equal(t, uint64(42), loaded.Fallback.Seed)
	assert.Equal(t, LogJSON, loaded.Log.Format)
	assert.True(t, loaded.ChatLog.Enabled)
	assert.Equal(t, 2.5, loaded.RateLimit.RequestsPerSecond)
	assert.Equal(t, 5, loaded.RateLimit.Burst)
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.yml")

	// A missing file yields defaults, not an error.
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yml")
	require.NoError(t, os.WriteFile(path, []byte("port: 9000\nlog:\n  level: debug\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, LogConsole, cfg.Log.Format)
	assert.Equal(t, []string{"data/faqs.json"}, cfg.Data.FAQFiles)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("port: [unterminated"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.yml")
	require.NoError(t, DefaultConfig().Save(path))

	t.Setenv("SUPPORTBOT_PORT", "7070")
	t.Setenv("SUPPORTBOT_LOG__LEVEL", "warn")
	t.Setenv("SUPPORTBOT_FALLBACK__STRATEGY", "random")
	t.Setenv("SUPPORTBOT_DATA__ORDERS_FILE", "/srv/orders.yml")
	t.Setenv("SUPPORTBOT_CHATLOG__ENABLED", "true")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, loaded.Port)
	assert.Equal(t, "warn", loaded.Log.Level)
	assert.Equal(t, FallbackRandom, loaded.Fallback.Strategy)
	assert.Equal(t, "/srv/orders.yml", loaded.Data.OrdersFile)
	assert.True(t, loaded.ChatLog.Enabled)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "port", envKey("SUPPORTBOT_PORT"))
	assert.Equal(t, "log.level", envKey("SUPPORTBOT_LOG__LEVEL"))
	assert.Equal(t, "rate_limit.requests_per_second", envKey("SUPPORTBOT_RATE_LIMIT__REQUESTS_PER_SECOND"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero port", func(c *Config) { c.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Port = 70000 }, true},
		{"unknown strategy", func(c *Config) { c.Fallback.Strategy = "shuffle" }, true},
		{"empty strategy", func(c *Config) { c.Fallback.Strategy = "" }, true},
		{"random strategy", func(c *Config) { c.Fallback.Strategy = FallbackRandom }, false},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"no faq patterns", func(c *Config) { c.Data.FAQFiles = nil }, true},
		{"chatlog without path", func(c *Config) { c.ChatLog.Enabled = true; c.ChatLog.Path = "" }, true},
		{"chatlog disabled without path", func(c *Config) { c.ChatLog.Path = "" }, false},
		{"negative rate", func(c *Config) { c.RateLimit.RequestsPerSecond = -1 }, true},
		{"rate without burst", func(c *Config) { c.RateLimit.RequestsPerSecond = 5; c.RateLimit.Burst = 0 }, true},
		{"rate with burst", func(c *Config) { c.RateLimit.RequestsPerSecond = 5; c.RateLimit.Burst = 10 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	assert.Equal(t, []string{"a.json", "b/**/*.yml"}, splitAndTrim(" a.json , b/**/*.yml ,, "))
	assert.Nil(t, splitAndTrim(""))
}

func TestValidatePort(t *testing.T) {
	assert.NoError(t, validatePort("5000"))
	assert.Error(t, validatePort("abc"))
	assert.Error(t, validatePort("0"))
	assert.Error(t, validatePort("65536"))
}
