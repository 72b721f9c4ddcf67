package scaffold

import "fmt"

// ManifestFilePath is the output path of the dependency manifest.
const ManifestFilePath = "package.json"

// ManifestFile produces the fixed npm dependency manifest at the project
// root. Dependency versions are pinned in the template; the output is the
// same on every run.
func ManifestFile() (File, error) {
	content, err := Render("package.json.tmpl", nil)
	if err != nil {
		return File{}, fmt.Errorf("rendering package.json: %w", err)
	}

	return File{Path: ManifestFilePath, Content: content}, nil
}
