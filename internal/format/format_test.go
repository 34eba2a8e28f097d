package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jpl-au/juggler/internal/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tree(t *testing.T) route.Node {
	t.Helper()
	root, err := route.Compose(route.Root{Breadcrumb: "Stream Juggler"}, [][]route.Node{
		{{Path: "providers", Breadcrumb: "Providers", Children: []route.Node{{View: "providers.list"}}}},
		{{Path: "modules", Breadcrumb: "Modules", Children: []route.Node{
			{View: "modules.list"},
			{Path: ":type/:name/:version", Breadcrumb: "Module", View: "modules.detail"},
		}}},
	})
	require.NoError(t, err)
	return root
}

func TestTree(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Tree(&buf, tree(t)))

	want := `/ (Stream Juggler)
├── "" → providers [full]
├── providers (Providers)
│   └── "" <providers.list>
└── modules (Modules)
    ├── "" <modules.list>
    └── :type/:name/:version (Module) <modules.detail>
`
	assert.Equal(t, want, buf.String())
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Table(&buf, route.Flatten(tree(t))))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[0], "URL"))
	assert.Contains(t, lines[1], "→ /providers")
	assert.Contains(t, lines[2], "Stream Juggler › Providers")
	assert.Contains(t, lines[3], "providers.list")
	assert.Contains(t, lines[6], "/modules/:type/:name/:version")
	assert.Contains(t, lines[6], "modules.detail")

	// Columns line up: the breadcrumbs column starts at the same rune offset.
	col := strings.Index(lines[0], "BREADCRUMBS")
	assert.Equal(t, "Stream Juggler › Providers", string([]rune(lines[2])[col:]))
}

func TestTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Table(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestMarkdown(t *testing.T) {
	md := Markdown("Stream Juggler", route.Flatten(tree(t)))
	assert.True(t, strings.HasPrefix(md, "# Stream Juggler\n\n| URL |"))
	assert.Contains(t, md, "| `/` | → /providers | Stream Juggler |")
	assert.Contains(t, md, "| `/modules/:type/:name/:version` | modules.detail | Stream Juggler › Modules › Module |")
}

func TestMatch(t *testing.T) {
	m, err := route.Resolve(tree(t), "/modules/regular/kafka/1.0")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Match(&buf, m))
	out := buf.String()
	assert.Contains(t, out, "URL:         /modules/regular/kafka/1.0\n")
	assert.Contains(t, out, "View:        modules.detail\n")
	assert.Contains(t, out, "Param:       name=kafka\nParam:       type=regular\nParam:       version=1.0\n")
}
