// Package scaffold turns a dashboard configuration into a ready-to-build
// React project skeleton, and removes previously generated trees.
//
// A generation run is one call to Generate: the fixed directory structure is
// created first, then the component, theme, entrypoint, and manifest
// generators run concurrently, each writing to disjoint paths under the
// output root. Purge is the mutually exclusive counterpart operating on an
// existing tree.
package scaffold

// File is the output unit of a generator: a path relative to the output root
// and the rendered content.
type File struct {
	// Path is the output path relative to the project root, in slash form.
	Path string

	// Content is the rendered file content.
	Content []byte
}

// Result describes a completed (or partially completed) generation run.
type Result struct {
	// Root is the output root the project was generated under.
	Root string

	// Files lists the relative paths written, sorted.
	Files []string
}
