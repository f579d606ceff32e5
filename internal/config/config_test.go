// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cfg "github.com/toeirei/roster/internal/config"
)

func isolateConfigDir(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	return tmp
}

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	isolateConfigDir(t)

	c, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	require.NoError(t, err)

	assert.Equal(t, "https://reqres.in/api", c.API.BaseURL)
	assert.Equal(t, 15*time.Second, c.API.Timeout)
	assert.Equal(t, 3*time.Second, c.Notify.Duration)
	assert.Equal(t, "file", c.Session.Store)
	assert.Equal(t, "en", c.Language)
	assert.False(t, c.API.SendToken)
}

func TestLoadConfig_ReadsExplicitFile(t *testing.T) {
	tmp := isolateConfigDir(t)
	yaml := "api:\n  base_url: http://localhost:9999/api\n  timeout: 2s\nsession:\n  store: sqlite\n  dsn: ':memory:'\nlanguage: de\n"
	file := filepath.Join(tmp, "cfg.yaml")
	require.NoError(t, os.WriteFile(file, []byte(yaml), 0o600))

	c, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/api", c.API.BaseURL)
	assert.Equal(t, 2*time.Second, c.API.Timeout)
	assert.Equal(t, "sqlite", c.Session.Store)
	assert.Equal(t, ":memory:", c.Session.DSN)
	assert.Equal(t, "de", c.Language)
	// untouched keys keep their defaults
	assert.Equal(t, 3*time.Second, c.Notify.Duration)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	tmp := isolateConfigDir(t)
	file := filepath.Join(tmp, "cfg.yaml")
	require.NoError(t, os.WriteFile(file, []byte("language: de\n"), 0o600))
	t.Setenv("ROSTER_LANGUAGE", "en")
	t.Setenv("ROSTER_API_BASE_URL", "http://env.example/api")

	c, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	require.NoError(t, err)
	assert.Equal(t, "en", c.Language)
	assert.Equal(t, "http://env.example/api", c.API.BaseURL)
}

func TestLoadConfig_FlagOverrides(t *testing.T) {
	isolateConfigDir(t)
	cmd := &cobra.Command{}
	cmd.Flags().String("api.base_url", "", "")
	require.NoError(t, cmd.Flags().Set("api.base_url", "http://flag.example/api"))

	c, err := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), nil)
	require.NoError(t, err)
	assert.Equal(t, "http://flag.example/api", c.API.BaseURL)
}

func TestLoadConfig_MalformedFileFails(t *testing.T) {
	tmp := isolateConfigDir(t)
	file := filepath.Join(tmp, "bad.yaml")
	require.NoError(t, os.WriteFile(file, []byte("api: [unclosed\n"), 0o600))

	_, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	assert.Error(t, err)
}

func TestWriteConfigFile_RoundTrip(t *testing.T) {
	isolateConfigDir(t)

	c, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	require.NoError(t, err)
	c.Language = "de"
	c.Session.Store = "memory"

	require.NoError(t, cfg.WriteConfigFile(&c, false))

	path, err := cfg.GetConfigPath(false)
	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	back, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &path)
	require.NoError(t, err)
	assert.Equal(t, "de", back.Language)
	assert.Equal(t, "memory", back.Session.Store)
	assert.Equal(t, c.Notify.Duration, back.Notify.Duration)
}
