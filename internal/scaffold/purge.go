package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	derrors "github.com/dashcraft/cli/internal/errors"
	"github.com/dashcraft/cli/internal/output"
)

// PurgeResult describes a completed (or partially completed) purge.
type PurgeResult struct {
	// Root is the absolute path of the purged tree.
	Root string

	// Removed counts the filesystem entries removed, the root included.
	Removed int
}

// Purge recursively deletes the tree rooted at target.
//
// The target must exist, be a directory, and pass the safety guard: empty
// paths, filesystem roots, and the working directory or any of its ancestors
// are refused. Deletion is best effort: a failing sub-path does not stop
// sibling removal, and every failure is reported in the aggregated error
// alongside how much was removed.
func Purge(target string) (*PurgeResult, error) {
	abs, err := checkPurgeTarget(target)
	if err != nil {
		return nil, err
	}

	unlock, err := lockPath(abs)
	if err != nil {
		return nil, derrors.NewFilesystemError("resolving purge target", target, err)
	}
	defer unlock()

	info, err := os.Lstat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, derrors.NewFilesystemError("purge target does not exist", abs, err)
		}
		return nil, derrors.NewFilesystemError("inspecting purge target", abs, err)
	}
	if !info.IsDir() {
		return nil, derrors.NewUnsafePurgeError(
			"purge target is not a directory",
			abs,
			"Purge operates on generated project directories, not files.",
		)
	}

	output.Debug("purging dashboard", "root", abs)

	removed, errs := removeTree(abs)
	result := &PurgeResult{Root: abs, Removed: removed}

	if len(errs) > 0 {
		return result, derrors.NewPurgeIncompleteError(abs, removed, len(errs), errors.Join(errs...))
	}
	return result, nil
}

// checkPurgeTarget enforces the safety precondition and returns the absolute
// target path.
func checkPurgeTarget(target string) (string, error) {
	if strings.TrimSpace(target) == "" {
		return "", derrors.NewUnsafePurgeError(
			"purge target is empty",
			"",
			"Pass the path of a generated project directory.",
		)
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		return "", derrors.NewFilesystemError("resolving purge target", target, err)
	}

	if abs == filepath.Dir(abs) {
		return "", derrors.NewUnsafePurgeError(
			"purge target is a filesystem root",
			abs,
			"Refusing to delete a root directory.",
		)
	}

	if cwd, err := os.Getwd(); err == nil {
		if rel, rerr := filepath.Rel(abs, cwd); rerr == nil {
			inside := rel == "." ||
				(rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
			if inside {
				return "", derrors.NewUnsafePurgeError(
					"purge target contains the current working directory",
					abs,
					"Run the purge from outside the directory being removed.",
				)
			}
		}
	}

	return abs, nil
}

// removeTree removes path recursively, continuing past failures so every
// removable entry is deleted. It returns the number of entries removed and
// the failures encountered, one per sub-path.
func removeTree(path string) (int, []error) {
	info, err := os.Lstat(path)
	if err != nil {
		return 0, []error{fmt.Errorf("%s: %w", path, err)}
	}

	removed := 0
	var errs []error

	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
		} else {
			for _, e := range entries {
				n, es := removeTree(filepath.Join(path, e.Name()))
				removed += n
				errs = append(errs, es...)
			}
		}
	}

	if info.IsDir() && len(errs) > 0 {
		// Children failed; the directory cannot be empty, so skip the
		// doomed Remove and report only the real failures.
		return removed, errs
	}

	if err := os.Remove(path); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", path, err))
		return removed, errs
	}

	return removed + 1, errs
}
