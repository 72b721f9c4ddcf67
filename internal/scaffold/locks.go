package scaffold

import (
	"path/filepath"
	"sync"
)

// pathLocks serializes generate and purge operations per directory path, so a
// generation run and a purge against the same tree cannot interleave.
var pathLocks sync.Map // absolute path -> *sync.Mutex

// lockPath acquires the lock for the given directory and returns the unlock
// function. Paths are keyed by their absolute form.
func lockPath(dir string) (func(), error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	mu, _ := pathLocks.LoadOrStore(abs, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock, nil
}
