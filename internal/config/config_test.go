package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Missing file falls back to defaults", func(t *testing.T) {
		// Given: a path that does not exist
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: loading the config
		conf, err := Load(path)

		// Then: defaults are applied
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "tictactoe.log", conf.LogFile)
		assert.Equal(t, UIAuto, conf.UI)
		assert.Equal(t, "#e02f1f", conf.Colors.WinnerX)
		assert.Equal(t, "#1f36e0", conf.Colors.WinnerO)
	})

	t.Run("Reads values from yaml", func(t *testing.T) {
		// Given: a config file overriding some keys
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nui: console\ncolors:\n  winner-o: \"#00ff00\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		conf, err := Load(path)

		// Then: file values win and the rest keeps defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, UIConsole, conf.UI)
		assert.Equal(t, "#00ff00", conf.Colors.WinnerO)
		assert.Equal(t, "#e02f1f", conf.Colors.WinnerX)
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		t.Setenv("TICTACTOE_UI", UITview)

		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.NoError(t, err)
		assert.Equal(t, UITview, conf.UI)
	})

	t.Run("Malformed file returns an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: [unclosed"), 0o600))

		_, err := Load(path)

		require.Error(t, err)
	})
}
