// Package config loads hubsync settings from environment variables and
// an optional YAML config file via viper.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/pocketai/hubsync/pkg/errors"
)

// Config holds every runtime setting of the service.
type Config struct {
	// Hub access
	HubBaseURL string
	HubToken   string
	HubFilter  string

	// Sync behavior
	SyncLimit   int
	SyncHourUTC int

	// Service
	DatabasePath string
	ListenAddr   string
}

// Defaults match the scale of the public LiteRT model family.
const (
	DefaultHubFilter   = "tflite"
	DefaultSyncLimit   = 500
	DefaultSyncHourUTC = 3
	DefaultDatabase    = "hubsync.db"
	DefaultListenAddr  = ":8080"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("hub_base_url", "https://huggingface.co")
	v.SetDefault("hub_token", "")
	v.SetDefault("hub_filter", DefaultHubFilter)
	v.SetDefault("sync_limit", DefaultSyncLimit)
	v.SetDefault("sync_hour_utc", DefaultSyncHourUTC)
	v.SetDefault("database_path", DefaultDatabase)
	v.SetDefault("listen_addr", DefaultListenAddr)
}

// Load reads configuration from the environment (HUBSYNC_ prefix) and,
// when path is non-empty, a YAML config file. Flags bound by the CLI
// layer override both.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("HUBSYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("file", "failed to read config file", err)
		}
	}

	// Explicit getters so env var strings are cast to the right types.
	cfg := Config{
		HubBaseURL:   v.GetString("hub_base_url"),
		HubToken:     v.GetString("hub_token"),
		HubFilter:    v.GetString("hub_filter"),
		SyncLimit:    v.GetInt("sync_limit"),
		SyncHourUTC:  v.GetInt("sync_hour_utc"),
		DatabasePath: v.GetString("database_path"),
		ListenAddr:   v.GetString("listen_addr"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for values the service cannot run with.
func (c *Config) Validate() error {
	if c.SyncHourUTC < 0 || c.SyncHourUTC > 23 {
		return errors.NewConfigError("sync_hour_utc", "must be between 0 and 23", nil)
	}
	if c.SyncLimit <= 0 {
		return errors.NewConfigError("sync_limit", "must be positive", nil)
	}
	if c.HubBaseURL == "" {
		return errors.NewConfigError("hub_base_url", "must not be empty", nil)
	}
	if c.DatabasePath == "" {
		return errors.NewConfigError("database_path", "must not be empty", nil)
	}
	return nil
}
