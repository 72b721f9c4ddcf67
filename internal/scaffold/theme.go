package scaffold

import (
	"fmt"
	"path"

	"github.com/dashcraft/cli/internal/dashboard"
)

// ThemeFilePath is the output path of the generated theme stub.
var ThemeFilePath = path.Join("src", "themes", "theme.js")

// ThemeFile produces the Material-UI theme stub at src/themes/theme.js.
//
// Defaults are applied here, before rendering, so the template always receives
// a complete value set. A nil theme yields the all-defaults stub.
func ThemeFile(t *dashboard.Theme) (File, error) {
	content, err := Render("theme.js.tmpl", t.WithDefaults())
	if err != nil {
		return File{}, fmt.Errorf("rendering theme: %w", err)
	}

	return File{Path: ThemeFilePath, Content: content}, nil
}
