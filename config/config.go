// Package config loads the console configuration: where the API lives,
// where the session file sits, and how the console logs.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type SessionConfig struct {
	// Path of the session file. Empty means the default under the
	// user config directory.
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Session SessionConfig `mapstructure:"session"`
	Log     LogConfig     `mapstructure:"log"`
}

// Load reads config.yml from the working directory or ./config, with
// NCS_-prefixed environment variables overriding file values. A
// missing file is fine; defaults cover everything.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetDefault("api.base_url", "http://127.0.0.1:5000/api/")
	v.SetDefault("api.timeout", 30*time.Second)
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("NCS")
	v.AutomaticEnv()
	v.BindEnv("api.base_url", "NCS_API_URL")
	v.BindEnv("session.path", "NCS_SESSION_PATH")
	v.BindEnv("log.level", "NCS_LOG_LEVEL")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Session.Path == "" {
		path, err := defaultSessionPath()
		if err != nil {
			return nil, err
		}
		cfg.Session.Path = path
	}

	return &cfg, nil
}

func defaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return filepath.Join(dir, "ncs-console", "session.json"), nil
}
