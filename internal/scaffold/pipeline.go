package scaffold

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/dashcraft/cli/internal/dashboard"
	derrors "github.com/dashcraft/cli/internal/errors"
	"github.com/dashcraft/cli/internal/output"
)

// generatorResult carries one generator's outcome back to the collector.
type generatorResult struct {
	name  string
	files []string
	err   error
}

// Generate runs one generation pipeline: validate the configuration, create
// the fixed directory structure, then run the component, theme, entrypoint,
// and manifest generators concurrently, each writing its files under root.
//
// Validation failures return before any filesystem mutation. Generator
// failures abort the run but leave partial output in place; the returned
// Result lists what was written alongside the joined error. Given the same
// configuration, repeated runs produce byte-identical output.
func Generate(d *dashboard.Dashboard, root string) (*Result, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	unlock, err := lockPath(root)
	if err != nil {
		return nil, derrors.NewFilesystemError("resolving output root", root, err)
	}
	defer unlock()

	if err := EnsureStructure(root); err != nil {
		return nil, err
	}

	output.Debug("generating dashboard",
		"root", root,
		"components", len(d.Components))

	jobs := []struct {
		name    string
		produce func() ([]File, error)
	}{
		{"components", func() ([]File, error) { return ComponentFiles(d) }},
		{"theme", func() ([]File, error) {
			f, err := ThemeFile(d.Theme)
			if err != nil {
				return nil, err
			}
			return []File{f}, nil
		}},
		{"entrypoints", EntrypointFiles},
		{"manifest", func() ([]File, error) {
			f, err := ManifestFile()
			if err != nil {
				return nil, err
			}
			return []File{f}, nil
		}},
	}

	resultChan := make(chan generatorResult, len(jobs))
	var wg sync.WaitGroup

	for _, job := range jobs {
		wg.Add(1)
		go func(name string, produce func() ([]File, error)) {
			defer wg.Done()
			resultChan <- runGenerator(root, name, produce)
		}(job.name, job.produce)
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	var written []string
	var errs []error
	for res := range resultChan {
		written = append(written, res.files...)
		if res.err != nil {
			errs = append(errs, res.err)
			continue
		}
		output.Debug("generator finished", "generator", res.name, "files", len(res.files))
	}

	sort.Strings(written)
	result := &Result{Root: root, Files: written}

	if len(errs) > 0 {
		return result, errors.Join(errs...)
	}
	return result, nil
}

// runGenerator produces one generator's files and writes them to disk.
// The first write failure aborts the generator; files already written are
// reported so the caller can account for partial output.
func runGenerator(root, name string, produce func() ([]File, error)) generatorResult {
	files, err := produce()
	if err != nil {
		return generatorResult{name: name, err: fmt.Errorf("%s generator: %w", name, err)}
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		if err := writeFileAtomic(root, f); err != nil {
			return generatorResult{
				name:  name,
				files: written,
				err:   fmt.Errorf("%s generator: %w", name, err),
			}
		}
		written = append(written, f.Path)
	}

	return generatorResult{name: name, files: written}
}
