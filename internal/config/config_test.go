// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateHome points the config directory at a temp dir and clears env overrides.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	for _, key := range []string{"BMI_THEME", "BMI_LOG_LEVEL", "BMI_LOG_FILE", "BMI_CHAT"} {
		t.Setenv(key, "")
	}
	return home
}

// TestConfig_ConcurrentAccess tests that Global(), SetGlobal(), and ReloadGlobal()
// can be safely called concurrently without race conditions.
// Run with: go test -race -v ./internal/config/
func TestConfig_ConcurrentAccess(t *testing.T) {
	isolateHome(t)
	ResetGlobalForTesting()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)

		go func() {
			defer wg.Done()
			c := Default()
			c.Version = "test"
			SetGlobal(c)
		}()

		go func() {
			defer wg.Done()
			if Global() == nil {
				t.Error("Global() returned nil")
			}
		}()

		go func() {
			defer wg.Done()
			_, _ = ReloadGlobal("")
		}()
	}

	wg.Wait()
}

// TestConfig_GlobalInitialization tests that Global() properly initializes
// the config on first access.
func TestConfig_GlobalInitialization(t *testing.T) {
	isolateHome(t)
	ResetGlobalForTesting()

	cfg := Global()
	require.NotNil(t, cfg)
	assert.NotEmpty(t, cfg.Version)
	assert.Equal(t, "auto", cfg.UI.Theme)
}

// TestConfig_SetGlobalOverwrites tests that SetGlobal properly overwrites
// the existing global config.
func TestConfig_SetGlobalOverwrites(t *testing.T) {
	isolateHome(t)
	ResetGlobalForTesting()
	_ = Global()

	custom := Default()
	custom.Version = "custom-version"
	SetGlobal(custom)

	assert.Equal(t, "custom-version", Global().Version)
}

func TestConfig_SetGlobalBeforeFirstAccess(t *testing.T) {
	isolateHome(t)
	ResetGlobalForTesting()
	t.Cleanup(ResetGlobalForTesting)

	// A file on disk must not replace a config published earlier.
	path, err := ConfigPathTOML()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0700))
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntheme = \"light\"\n"), 0600))

	custom := Default()
	custom.UI.Theme = "dark"
	SetGlobal(custom)

	assert.Same(t, custom, Global())
}

func TestConfig_ReloadGlobal(t *testing.T) {
	isolateHome(t)
	ResetGlobalForTesting()
	t.Cleanup(ResetGlobalForTesting)

	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := Default()
	cfg.UI.Theme = "light"
	require.NoError(t, SaveTOML(cfg, path))

	loaded, err := ReloadGlobal(path)
	require.NoError(t, err)
	assert.Equal(t, "light", loaded.UI.Theme)
	assert.Same(t, loaded, Global())

	// A broken file keeps the previous global.
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntheme = \"neon\"\n"), 0600))
	_, err = ReloadGlobal(path)
	assert.Error(t, err)
	assert.Same(t, loaded, Global())
}

func TestConfig_ReloadGlobalDefaultLocation(t *testing.T) {
	isolateHome(t)
	ResetGlobalForTesting()
	t.Cleanup(ResetGlobalForTesting)

	loaded, err := ReloadGlobal("")
	require.NoError(t, err)
	assert.Equal(t, "auto", loaded.UI.Theme)
	assert.Same(t, loaded, Global())
}

func TestConfig_Default(t *testing.T) {
	cfg := Default()
	require.NotNil(t, cfg)

	assert.NoError(t, cfg.Validate())
	assert.True(t, cfg.Chat.Enabled)
	assert.Equal(t, DefaultGreeting, cfg.Chat.Greeting)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid default config", func(c *Config) {}, ""},
		{"invalid theme", func(c *Config) { c.UI.Theme = "neon" }, "ui.theme"},
		{"invalid log level", func(c *Config) { c.Logging.Level = "trace" }, "logging.level"},
		{"blank greeting", func(c *Config) { c.Chat.Greeting = "  " }, "chat.greeting"},
		{"blank greeting with chat disabled", func(c *Config) {
			c.Chat.Enabled = false
			c.Chat.Greeting = ""
		}, ""},
		{"theme is case-insensitive", func(c *Config) { c.UI.Theme = "DARK" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)

			var verrs ValidateErrors
			assert.ErrorAs(t, err, &verrs)
		})
	}
}

func TestConfig_GetSet(t *testing.T) {
	cfg := Default()

	val, err := cfg.Get("ui.theme")
	require.NoError(t, err)
	assert.Equal(t, "auto", val)

	require.NoError(t, cfg.Set("ui.theme", "dark"))
	assert.Equal(t, "dark", cfg.UI.Theme)

	require.NoError(t, cfg.Set("chat.enabled", "false"))
	assert.False(t, cfg.Chat.Enabled)

	require.NoError(t, cfg.Set("ui.show_help", true))
	assert.True(t, cfg.UI.ShowHelp)

	require.NoError(t, cfg.Set("logging.file", "/tmp/bmi.log"))
	assert.Equal(t, "/tmp/bmi.log", cfg.Logging.File)

	assert.Error(t, cfg.Set("chat.enabled", "maybe"))
	assert.Error(t, cfg.Set("ui.unknown", "x"))
	assert.Error(t, cfg.Set("version.major", "1"))
	_, err = cfg.Get("")
	assert.Error(t, err)
}

func TestConfig_GetAllKeysResolve(t *testing.T) {
	cfg := Default()
	for _, key := range GetAllKeys() {
		_, err := cfg.Get(key)
		assert.NoError(t, err, "key %s", key)
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	isolateHome(t)
	t.Setenv("BMI_THEME", "light")
	t.Setenv("BMI_LOG_LEVEL", "debug")
	t.Setenv("BMI_CHAT", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Chat.Enabled)
}

func TestConfig_SaveAndLoadTOML(t *testing.T) {
	isolateHome(t)

	cfg := Default()
	cfg.UI.Theme = "dark"
	cfg.UI.CompactMode = true
	cfg.Chat.Greeting = "Chào bạn"
	require.NoError(t, Save(cfg))

	path, err := ConfigPathTOML()
	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "dark", loaded.UI.Theme)
	assert.True(t, loaded.UI.CompactMode)
	assert.Equal(t, "Chào bạn", loaded.Chat.Greeting)

	active, err := ActivePath()
	require.NoError(t, err)
	assert.Equal(t, path, active)
}

func TestConfig_LoadJSONFallback(t *testing.T) {
	isolateHome(t)

	jsonPath, err := ConfigPathJSON()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(jsonPath), 0755))
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"ui": {"theme": "light"}}`), 0600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.UI.Theme)
	// Missing keys keep their defaults.
	assert.True(t, cfg.Chat.Enabled)
	assert.Equal(t, DefaultGreeting, cfg.Chat.Greeting)
}

func TestConfig_LoadInvalidFileFallsBackToDefaults(t *testing.T) {
	isolateHome(t)

	path, err := ConfigPathTOML()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntheme = \"neon\"\n"), 0600))

	cfg, err := Load()
	assert.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "auto", cfg.UI.Theme)
}

func TestConfig_SaveUsesActiveJSONFile(t *testing.T) {
	isolateHome(t)

	jsonPath, err := ConfigPathJSON()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(jsonPath), 0700))
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"ui": {"theme": "light"}}`), 0600))

	cfg := Default()
	cfg.UI.Theme = "dark"
	require.NoError(t, Save(cfg))

	tomlPath, err := ConfigPathTOML()
	require.NoError(t, err)
	_, statErr := os.Stat(tomlPath)
	assert.True(t, os.IsNotExist(statErr), "Save must not create a second config file")

	loaded, err := LoadFromPath(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "dark", loaded.UI.Theme)
}

func TestConfig_SaveToJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "bmi.json")

	cfg := Default()
	cfg.Logging.Level = "warn"
	require.NoError(t, SaveTo(cfg, path))

	loaded, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", loaded.Logging.Level)
}

func TestConfig_LogPath(t *testing.T) {
	home := isolateHome(t)

	cfg := Default()
	path, err := cfg.LogPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".bmi", "bmi.log"), path)

	cfg.Logging.File = "/var/tmp/custom.log"
	path, err = cfg.LogPath()
	require.NoError(t, err)
	assert.Equal(t, "/var/tmp/custom.log", path)
}

func TestConfig_CloneIsIndependent(t *testing.T) {
	cfg := Default()
	clone := cfg.Clone()
	clone.UI.Theme = "light"

	assert.Equal(t, "auto", cfg.UI.Theme)
	assert.Contains(t, cfg.String(), `"theme": "auto"`)
}
