package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dashcraft/cli/internal/testutil"
)

func TestLoaderLoad(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "config.yaml")

		cfg, err := NewLoader().LoadWithDefaults(missing)
		require.NoError(t, err)

		assert.Equal(t, DefaultOutputDir, cfg.Output.Dir)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.True(t, *cfg.Log.Timestamps)
	})

	t.Run("file values are used", func(t *testing.T) {
		dir := t.TempDir()
		path := testutil.WriteFile(t, dir, "config.yaml", "output:\n  dir: /tmp/dashboards\nlog:\n  timestamps: false\n")

		cfg, err := NewLoader().LoadWithDefaults(path)
		require.NoError(t, err)

		assert.Equal(t, "/tmp/dashboards", cfg.Output.Dir)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.False(t, *cfg.Log.Timestamps)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		dir := t.TempDir()
		path := testutil.WriteFile(t, dir, "config.yaml", "output:\n  dir: /tmp/from-file\n")
		t.Setenv("DASHCRAFT_OUTPUT_DIR", "/tmp/from-env")

		cfg, err := NewLoader().LoadWithDefaults(path)
		require.NoError(t, err)

		assert.Equal(t, "/tmp/from-env", cfg.Output.Dir)
	})

	t.Run("environment overrides timestamp switch", func(t *testing.T) {
		dir := t.TempDir()
		path := testutil.WriteFile(t, dir, "config.yaml", "log:\n  timestamps: true\n")
		t.Setenv("DASHCRAFT_LOG_TIMESTAMPS", "false")

		cfg, err := NewLoader().LoadWithDefaults(path)
		require.NoError(t, err)

		require.NotNil(t, cfg.Log.Timestamps)
		assert.False(t, *cfg.Log.Timestamps)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		dir := t.TempDir()
		path := testutil.WriteFile(t, dir, "config.yaml", "output: [broken\n")

		_, err := NewLoader().Load(path)
		assert.Error(t, err)
	})
}

func TestConfigFileExists(t *testing.T) {
	t.Run("existing file", func(t *testing.T) {
		dir := t.TempDir()
		path := testutil.WriteFile(t, dir, "config.yaml", "output:\n  dir: ./x\n")

		exists, err := ConfigFileExists(path)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("missing file", func(t *testing.T) {
		exists, err := ConfigFileExists(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestWithDefaults(t *testing.T) {
	explicit := false
	cfg := &Config{
		Output: OutputConfig{Dir: "/data/out"},
		Log:    LogConfig{Timestamps: &explicit},
	}

	got := cfg.WithDefaults()
	assert.Equal(t, "/data/out", got.Output.Dir)
	assert.False(t, *got.Log.Timestamps)
}
