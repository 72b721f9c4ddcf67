package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPaths(t *testing.T) {
	paths, err := DefaultPaths()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(paths.HomeDir, "config.yaml"), paths.ConfigFile)
	assert.Equal(t, ".dashcraft", filepath.Base(paths.HomeDir))
}

func TestGetConfigFile(t *testing.T) {
	t.Run("env var takes precedence", func(t *testing.T) {
		t.Setenv("DASHCRAFT_CONFIG", "/custom/config.yaml")

		path, err := GetConfigFile()
		require.NoError(t, err)
		assert.Equal(t, "/custom/config.yaml", path)
	})

	t.Run("defaults to home config", func(t *testing.T) {
		t.Setenv("DASHCRAFT_CONFIG", "")

		path, err := GetConfigFile()
		require.NoError(t, err)
		assert.Equal(t, "config.yaml", filepath.Base(path))
	})
}

func TestExpandPath(t *testing.T) {
	t.Run("expands tilde", func(t *testing.T) {
		path, err := ExpandPath("~/x/config.yaml")
		require.NoError(t, err)
		assert.NotContains(t, path, "~")
		assert.Equal(t, "config.yaml", filepath.Base(path))
	})

	t.Run("leaves absolute paths alone", func(t *testing.T) {
		path, err := ExpandPath("/etc/dashcraft.yaml")
		require.NoError(t, err)
		assert.Equal(t, "/etc/dashcraft.yaml", path)
	})
}
