package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFileTree(t *testing.T) {
	t.Run("empty input renders nothing", func(t *testing.T) {
		assert.Empty(t, RenderFileTree("out", nil))
	})

	t.Run("renders nested paths under the root", func(t *testing.T) {
		got := RenderFileTree("out", map[string]string{
			"package.json":            "Dependency manifest",
			"src/index.js":            "Application bootstrap",
			"src/components/chart.js": "Component stub",
			"src/themes/theme.js":     "Theme definition",
		})

		assert.Contains(t, got, "out/")
		assert.Contains(t, got, "package.json")
		assert.Contains(t, got, "index.js")
		assert.Contains(t, got, "chart.js")
		assert.Contains(t, got, "theme.js")
		assert.Contains(t, got, "Dependency manifest")

		// Directories render before files under the same parent
		srcIdx := strings.Index(got, "src/")
		pkgIdx := strings.Index(got, "package.json")
		assert.Less(t, srcIdx, pkgIdx)
	})

	t.Run("uses tree connectors", func(t *testing.T) {
		got := RenderFileTree("out", map[string]string{
			"a.txt": "",
			"b.txt": "",
		})

		assert.Contains(t, got, treeEdge)
		assert.Contains(t, got, treeLast)
	})
}
