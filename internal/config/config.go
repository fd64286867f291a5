package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the server runtime configuration. Game tuning (costs, event
// tables, roster bounds) is intentionally not configurable; the engine
// defines it.
type Config struct {
	Server struct {
		Address string `mapstructure:"address"`
	} `mapstructure:"server"`
	Database struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"database"`
	Session struct {
		// InactivityTimeout is how long a session may sit without a command
		// before the scanner aborts it.
		InactivityTimeout time.Duration `mapstructure:"inactivity_timeout"`
		// RecentTTL bounds how far back the recent-sessions listing reaches.
		RecentTTL time.Duration `mapstructure:"recent_ttl"`
	} `mapstructure:"session"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

// Load reads configuration from the given file (optional) with CAMINO_*
// environment overrides. A missing file is fine; defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("server.address", ":8080")
	v.SetDefault("database.path", "./data/camino.db")
	v.SetDefault("session.inactivity_timeout", 30*time.Minute)
	v.SetDefault("session.recent_ttl", 2*time.Hour)
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("CAMINO")
	// Nested keys map to underscored env names (CAMINO_SERVER_ADDRESS).
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("camino")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			if path != "" {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Session.InactivityTimeout <= 0 {
		return nil, fmt.Errorf("session.inactivity_timeout must be positive")
	}
	if cfg.Session.RecentTTL <= 0 {
		return nil, fmt.Errorf("session.recent_ttl must be positive")
	}
	return &cfg, nil
}
