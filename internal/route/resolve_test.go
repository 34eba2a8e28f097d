package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func consoleTree(t *testing.T) Node {
	t.Helper()
	tree, err := Compose(Root{Breadcrumb: "Stream Juggler"}, [][]Node{
		{{Path: "providers", Breadcrumb: "Providers", Children: []Node{{Path: "", View: "providers.list"}}}},
		{{Path: "services", Breadcrumb: "Services", Children: []Node{{Path: "", View: "services.list"}}}},
		{{Path: "modules", Breadcrumb: "Modules", Children: []Node{
			{Path: "", View: "modules.list"},
			{Path: ":type/:name/:version", Breadcrumb: "Module", View: "modules.detail"},
			{Path: "legacy/:name", RedirectTo: ":name"},
		}}},
		{{Path: "loop-a", RedirectTo: "loop-b"}, {Path: "loop-b", RedirectTo: "loop-a"}},
	})
	require.NoError(t, err)
	return tree
}

func TestResolve(t *testing.T) {
	tree := consoleTree(t)

	t.Run("root follows default redirect", func(t *testing.T) {
		m, err := Resolve(tree, "/")
		require.NoError(t, err)
		assert.Equal(t, "/providers", m.URL)
		assert.Equal(t, []string{"/"}, m.Redirects)
		assert.Equal(t, "providers.list", m.View)
		assert.Equal(t, []string{"Stream Juggler", "Providers"}, m.Breadcrumbs)
	})

	t.Run("feature landing", func(t *testing.T) {
		m, err := Resolve(tree, "services")
		require.NoError(t, err)
		assert.Equal(t, "/services", m.URL)
		assert.Empty(t, m.Redirects)
		assert.Equal(t, "services.list", m.View)
		require.Len(t, m.Chain, 2)
		assert.Equal(t, "services", m.Chain[0].Path)
	})

	t.Run("params captured", func(t *testing.T) {
		m, err := Resolve(tree, "/modules/regular-streaming/sj-regular/1.0/")
		require.NoError(t, err)
		assert.Equal(t, "modules.detail", m.View)
		assert.Equal(t, map[string]string{
			"type":    "regular-streaming",
			"name":    "sj-regular",
			"version": "1.0",
		}, m.Params)
		assert.Equal(t, []string{"Stream Juggler", "Modules", "Module"}, m.Breadcrumbs)
	})

	t.Run("relative redirect with params", func(t *testing.T) {
		_, err := Resolve(tree, "/modules/legacy/batch")
		// "/modules/batch" has no matching child, so the redirect lands nowhere.
		assert.ErrorIs(t, err, ErrNoMatch)
	})

	t.Run("unknown url", func(t *testing.T) {
		_, err := Resolve(tree, "/nope")
		assert.ErrorIs(t, err, ErrNoMatch)
	})

	t.Run("full redirect does not swallow longer urls", func(t *testing.T) {
		_, err := Resolve(tree, "/providers/extra")
		assert.ErrorIs(t, err, ErrNoMatch)
	})

	t.Run("redirect loop", func(t *testing.T) {
		_, err := Resolve(tree, "/loop-a")
		assert.ErrorIs(t, err, ErrRedirectLoop)
	})
}

func TestFlatten(t *testing.T) {
	tree := consoleTree(t)
	entries := Flatten(tree)

	require.NotEmpty(t, entries)
	assert.Equal(t, "/", entries[0].URL)
	assert.Equal(t, 0, entries[0].Depth)
	assert.Equal(t, []string{"Stream Juggler"}, entries[0].Breadcrumbs)

	redirect := entries[1]
	assert.Equal(t, "/", redirect.URL)
	assert.Equal(t, "/providers", redirect.RedirectTo)
	assert.Equal(t, PathMatchFull, redirect.Match)

	var urls []string
	for _, e := range entries {
		urls = append(urls, e.URL)
	}
	assert.Equal(t, []string{
		"/", "/",
		"/providers", "/providers",
		"/services", "/services",
		"/modules", "/modules", "/modules/:type/:name/:version", "/modules/legacy/:name",
		"/loop-a", "/loop-b",
	}, urls)

	detail := entries[8]
	assert.Equal(t, "Stream Juggler › Modules › Module", detail.Trail())
	assert.Equal(t, 2, detail.Depth)

	legacy := entries[9]
	assert.Equal(t, "/modules/:name", legacy.RedirectTo)
}

func TestSuggest(t *testing.T) {
	entries := Flatten(consoleTree(t))

	got := Suggest(entries, "/provider", 2)
	require.NotEmpty(t, got)
	assert.Equal(t, "/providers", got[0])

	assert.Empty(t, Suggest(entries, "/completely-unrelated-address", 3))
	assert.Empty(t, Suggest(entries, "/providers", 0))
	assert.NotPanics(t, func() {
		assert.Empty(t, Suggest(entries, "/provider", -1))
	})
}

func TestValidate_AcceptsComposedTree(t *testing.T) {
	assert.NoError(t, Validate(consoleTree(t)))
}

func TestValidate_TopLevelIndexRoute(t *testing.T) {
	err := Validate(Node{Children: []Node{{Path: "", View: "home"}}})
	assert.ErrorIs(t, err, ErrMissingPath)
}

func TestPathMatch_ZeroValueIsPrefix(t *testing.T) {
	assert.Equal(t, PathMatchPrefix, Node{}.Match())
	assert.Equal(t, "prefix", PathMatch("").String())
	assert.Equal(t, "full", PathMatchFull.String())
}
