package scaffold

import (
	"os"
	"path/filepath"

	derrors "github.com/dashcraft/cli/internal/errors"
)

// writeFileAtomic writes a generated file under root via a temporary file and
// rename, so a cancelled or failed run never leaves a half-written file. The
// parent directory is created if missing.
func writeFileAtomic(root string, f File) error {
	target := filepath.Join(root, filepath.FromSlash(f.Path))
	dir := filepath.Dir(target)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return derrors.NewFilesystemError("creating directory", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".tmp-*")
	if err != nil {
		return derrors.NewFilesystemError("creating temporary file", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(f.Content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return derrors.NewFilesystemError("writing file", target, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return derrors.NewFilesystemError("writing file", target, err)
	}

	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return derrors.NewFilesystemError("setting file mode", target, err)
	}

	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return derrors.NewFilesystemError("writing file", target, err)
	}

	return nil
}
