// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads the layered Roster configuration (defaults, config
// file, environment, command-line flags) and persists it as YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	appName    = "roster"
	envPrefix  = "roster"
	configName = "roster"
)

// Config is the complete client configuration.
type Config struct {
	API      APIConfig     `mapstructure:"api" yaml:"api"`
	Session  SessionConfig `mapstructure:"session" yaml:"session"`
	Notify   NotifyConfig  `mapstructure:"notify" yaml:"notify"`
	Log      LogConfig     `mapstructure:"log" yaml:"log"`
	Language string        `mapstructure:"language" yaml:"language"`
}

// APIConfig points the client at the remote directory service.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url" yaml:"base_url"`
	Key     string        `mapstructure:"key" yaml:"key,omitempty"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
	// SendToken attaches the session token as a bearer credential.
	SendToken bool `mapstructure:"send_token" yaml:"send_token"`
	// RateLimit is requests per second; 0 means unlimited.
	RateLimit float64 `mapstructure:"rate_limit" yaml:"rate_limit"`
}

// SessionConfig selects where the session token is persisted.
// Store is one of file, sqlite, postgres, mysql or memory.
type SessionConfig struct {
	Store string `mapstructure:"store" yaml:"store"`
	Path  string `mapstructure:"path" yaml:"path,omitempty"`
	DSN   string `mapstructure:"dsn" yaml:"dsn,omitempty"`
}

type NotifyConfig struct {
	Duration time.Duration `mapstructure:"duration" yaml:"duration"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file,omitempty"`
}

// Defaults returns the default value of every known key.
func Defaults() map[string]any {
	return map[string]any{
		"api.base_url":    "https://reqres.in/api",
		"api.key":         "",
		"api.timeout":     "15s",
		"api.send_token":  false,
		"api.rate_limit":  0,
		"session.store":   "file",
		"session.path":    "",
		"session.dsn":     "",
		"notify.duration": "3s",
		"log.level":       "info",
		"log.file":        "",
		"language":        "en",
	}
}

// GetConfigPath returns the full path of the user or system configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Roster")
		default: // Linux, macOS, etc.
			configDir = "/etc/roster"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, appName)
	}

	return filepath.Join(configDir, configName+".yaml"), nil
}

// DefaultDataPath returns a path inside the user config directory, used for
// the session file and the TUI log when none is configured.
func DefaultDataPath(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}
	return filepath.Join(dir, appName, name), nil
}

// LoadConfig builds a T from defaults, the first config file found, the
// environment and the flags of cmd. explicitPath, when non-nil, takes
// precedence over the standard search locations. A missing config file is not
// an error.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, explicitPath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName(configName)
	v.SetConfigType("yaml")

	if explicitPath != nil {
		v.SetConfigFile(*explicitPath)
	}

	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, fmt.Errorf("could not read config: %w", err)
		}
	}

	v.AutomaticEnv()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("could not decode config: %w", err)
	}

	return c, nil
}

// WriteConfigFile persists c to the user (or system) config path.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := GetConfigPath(system)
	if err != nil {
		return err
	}
	return WriteConfigFileTo(c, path)
}

// WriteConfigFileTo persists c as YAML at path.
func WriteConfigFileTo[T any](c *T, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	// 0600: the file may hold an API key.
	return os.WriteFile(path, data, 0o600)
}
