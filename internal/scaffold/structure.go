package scaffold

import (
	"os"
	"path/filepath"

	derrors "github.com/dashcraft/cli/internal/errors"
)

// Structure is the fixed directory skeleton of a generated project. It is a
// constant of the tool, not derived from configuration.
var Structure = []string{
	"public",
	"src",
	"src/components",
	"src/layouts",
	"src/mockData",
	"src/pages",
	"src/services",
	"src/themes",
	"src/utils",
}

// EnsureStructure creates every directory of the project skeleton under root.
//
// It is idempotent: directories that already exist are left untouched, and
// calling it on a partially populated tree is safe. Only directories are
// created; no files are written.
func EnsureStructure(root string) error {
	for _, dir := range Structure {
		path := filepath.Join(root, filepath.FromSlash(dir))
		if err := os.MkdirAll(path, 0o755); err != nil {
			return derrors.NewFilesystemError("creating project directory", path, err)
		}
	}
	return nil
}
