package scaffold

import (
	"fmt"
	"path"
)

// Entrypoint output paths.
var (
	IndexFilePath = path.Join("src", "index.js")
	AppFilePath   = path.Join("src", "App.js")
)

// EntrypointFiles produces the two fixed application entry points: the
// bootstrap file src/index.js and the root shell src/App.js. Their content is
// static and independent of the dashboard configuration.
func EntrypointFiles() ([]File, error) {
	index, err := Render("index.js.tmpl", nil)
	if err != nil {
		return nil, fmt.Errorf("rendering index.js: %w", err)
	}

	app, err := Render("app.js.tmpl", nil)
	if err != nil {
		return nil, fmt.Errorf("rendering App.js: %w", err)
	}

	return []File{
		{Path: IndexFilePath, Content: index},
		{Path: AppFilePath, Content: app},
	}, nil
}
