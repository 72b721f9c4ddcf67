package scaffold

import (
	"fmt"
	"path"

	"github.com/dashcraft/cli/internal/dashboard"
)

// componentData is the substitution set for the component stub template.
type componentData struct {
	// Name is the PascalCase symbol name of the component.
	Name string

	// Title is the rendered heading, from options.title.
	Title string
}

// ComponentFiles produces one React source stub per configured component, at
// src/components/<id>.js. Component ids are assumed validated; an absent
// options map falls back to the default title.
func ComponentFiles(d *dashboard.Dashboard) ([]File, error) {
	files := make([]File, 0, len(d.Components))

	for _, c := range d.Components {
		data := componentData{
			Name:  dashboard.SymbolName(c.ID),
			Title: c.Title(),
		}

		content, err := Render("component.js.tmpl", data)
		if err != nil {
			return nil, fmt.Errorf("rendering component %q: %w", c.ID, err)
		}

		files = append(files, File{
			Path:    path.Join("src", "components", c.ID+".js"),
			Content: content,
		})
	}

	return files, nil
}
