package dashboard

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML dashboard configuration.
// The result is syntactically well-formed but not yet validated; callers run
// Validate before handing it to the generation pipeline.
func Parse(data []byte) (*Dashboard, error) {
	var d Dashboard
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing dashboard config: %w", err)
	}
	return &d, nil
}

// Load reads and decodes a YAML dashboard configuration file.
func Load(path string) (*Dashboard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dashboard config %s: %w", path, err)
	}
	return Parse(data)
}
