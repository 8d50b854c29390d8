package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://huggingface.co", cfg.HubBaseURL)
	assert.Equal(t, DefaultHubFilter, cfg.HubFilter)
	assert.Equal(t, DefaultSyncLimit, cfg.SyncLimit)
	assert.Equal(t, DefaultSyncHourUTC, cfg.SyncHourUTC)
	assert.Equal(t, DefaultDatabase, cfg.DatabasePath)
	assert.Equal(t, DefaultListenAddr, cfg.ListenAddr)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("HUBSYNC_HUB_FILTER", "onnx")
	t.Setenv("HUBSYNC_SYNC_HOUR_UTC", "7")
	t.Setenv("HUBSYNC_DATABASE_PATH", "/tmp/test.db")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "onnx", cfg.HubFilter)
	assert.Equal(t, 7, cfg.SyncHourUTC)
	assert.Equal(t, "/tmp/test.db", cfg.DatabasePath)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hubsync.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hub_filter: litert\nsync_limit: 50\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "litert", cfg.HubFilter)
	assert.Equal(t, 50, cfg.SyncLimit)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/does/not/exist.yaml")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"hour too large", func(c *Config) { c.SyncHourUTC = 24 }},
		{"hour negative", func(c *Config) { c.SyncHourUTC = -1 }},
		{"zero limit", func(c *Config) { c.SyncLimit = 0 }},
		{"empty hub url", func(c *Config) { c.HubBaseURL = "" }},
		{"empty database path", func(c *Config) { c.DatabasePath = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("")
			require.NoError(t, err)
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
