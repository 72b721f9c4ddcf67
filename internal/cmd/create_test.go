package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "github.com/dashcraft/cli/internal/errors"
	"github.com/dashcraft/cli/internal/testutil"
)

// execute runs the CLI with the given args and a throwaway tool config path,
// so tests never touch the user's real ~/.dashcraft.
func execute(t *testing.T, args ...string) error {
	t.Helper()

	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	missingConfig := filepath.Join(t.TempDir(), "config.yaml")
	root.SetArgs(append([]string{"--config", missingConfig}, args...))

	return root.Execute()
}

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// everything written to it.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	t.Cleanup(func() { os.Stdout = old })

	fn()

	require.NoError(t, w.Close())
	os.Stdout = old

	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	require.NoError(t, err)
	return buf.String()
}

func TestCreateCommand(t *testing.T) {
	t.Run("generates a project from a config file", func(t *testing.T) {
		dir := t.TempDir()
		cfgPath := testutil.WriteFile(t, dir, "dashboard.yaml", `
components:
  - id: chart
    options:
      title: Revenue
theme:
  mode: dark
`)
		outDir := filepath.Join(dir, "out")

		err := execute(t, "create", "-f", cfgPath, "-o", outDir)
		require.NoError(t, err)

		assert.ElementsMatch(t, []string{
			"package.json",
			"src/App.js",
			"src/components/chart.js",
			"src/index.js",
			"src/themes/theme.js",
		}, testutil.ListFiles(t, outDir))

		theme := testutil.ReadFile(t, filepath.Join(outDir, "src", "themes", "theme.js"))
		assert.Contains(t, theme, "mode: 'dark'")
	})

	t.Run("separates the header from the file tree by one blank line", func(t *testing.T) {
		dir := t.TempDir()
		cfgPath := testutil.WriteFile(t, dir, "dashboard.yaml", "components:\n  - id: chart\n")
		outDir := filepath.Join(dir, "out")

		out := captureStdout(t, func() {
			require.NoError(t, execute(t, "create", "-f", cfgPath, "-o", outDir))
		})

		lines := strings.Split(out, "\n")
		require.GreaterOrEqual(t, len(lines), 3)
		assert.True(t, strings.HasPrefix(lines[0], "Created dashboard in "), "got %q", lines[0])
		assert.Empty(t, lines[1])
		assert.NotEmpty(t, lines[2], "file tree should start right after the separator")
	})

	t.Run("missing config file maps to config exit code", func(t *testing.T) {
		err := execute(t, "create", "-f", filepath.Join(t.TempDir(), "nope.yaml"), "-o", filepath.Join(t.TempDir(), "out"))
		require.Error(t, err)
		assert.Equal(t, ExitConfigError, ExitCodeFromError(err))
	})

	t.Run("duplicate ids map to conflict exit code", func(t *testing.T) {
		dir := t.TempDir()
		cfgPath := testutil.WriteFile(t, dir, "dashboard.yaml",
			"components:\n  - id: chart\n  - id: chart\n")

		err := execute(t, "create", "-f", cfgPath, "-o", filepath.Join(dir, "out"))
		require.Error(t, err)
		assert.ErrorIs(t, err, derrors.ErrConflict)
		assert.Equal(t, ExitConflictError, ExitCodeFromError(err))
	})
}

func TestVetCommand(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		dir := t.TempDir()
		cfgPath := testutil.WriteFile(t, dir, "dashboard.yaml", "components:\n  - id: chart\n")

		require.NoError(t, execute(t, "vet", "-f", cfgPath))
	})

	t.Run("invalid id", func(t *testing.T) {
		dir := t.TempDir()
		cfgPath := testutil.WriteFile(t, dir, "dashboard.yaml", "components:\n  - id: \"bad id\"\n")

		err := execute(t, "vet", "-f", cfgPath)
		require.Error(t, err)
		assert.ErrorIs(t, err, derrors.ErrConfig)
	})
}

func TestPurgeCommand(t *testing.T) {
	t.Run("removes a generated project with --force", func(t *testing.T) {
		dir := t.TempDir()
		cfgPath := testutil.WriteFile(t, dir, "dashboard.yaml", "components:\n  - id: chart\n")
		outDir := filepath.Join(dir, "out")

		require.NoError(t, execute(t, "create", "-f", cfgPath, "-o", outDir))

		require.NoError(t, execute(t, "purge", "--force", outDir))

		_, statErr := os.Stat(outDir)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("non-existent target maps to filesystem exit code", func(t *testing.T) {
		err := execute(t, "purge", "--force", filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
		assert.Equal(t, ExitFilesystemError, ExitCodeFromError(err))
	})

	t.Run("without --force and without a terminal, purge is refused", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "out")
		require.NoError(t, os.MkdirAll(target, 0o755))

		err := execute(t, "purge", target)
		require.Error(t, err)
		assert.Equal(t, ExitUnsafePurge, ExitCodeFromError(err))

		_, statErr := os.Stat(target)
		assert.NoError(t, statErr, "target should be untouched")
	})
}
