package core

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/jpl-au/juggler/feature"
	"github.com/jpl-au/juggler/feature/instances"
	"github.com/jpl-au/juggler/feature/modules"
	"github.com/jpl-au/juggler/feature/providers"
	"github.com/jpl-au/juggler/internal/config"
	"github.com/jpl-au/juggler/internal/route"
	"github.com/jpl-au/juggler/internal/searchbox"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) feature.Context {
	t.Helper()
	root, err := route.Compose(route.Root{Breadcrumb: "Stream Juggler"}, [][]route.Node{
		providers.Routes, modules.Routes, instances.Routes,
	})
	require.NoError(t, err)
	return feature.NewContext(root, &config.Config{})
}

func request(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return tc.Text
}

func TestHandleRoutes(t *testing.T) {
	fctx := testContext(t)

	res, err := handleRoutes(context.Background(), fctx, request(nil))
	require.NoError(t, err)
	var root route.Node
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &root))
	assert.Len(t, root.Children, 4)
	assert.Equal(t, "providers", root.Children[0].RedirectTo)

	res, err = handleRoutes(context.Background(), fctx, request(map[string]any{"flat": true}))
	require.NoError(t, err)
	var entries []route.Entry
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &entries))
	assert.Equal(t, route.Flatten(fctx.Routes()), entries)
}

func TestHandleResolve(t *testing.T) {
	fctx := testContext(t)

	t.Run("redirect", func(t *testing.T) {
		res, err := handleResolve(context.Background(), fctx, request(map[string]any{"url": "/"}))
		require.NoError(t, err)
		assert.False(t, res.IsError)
		var m route.Match
		require.NoError(t, json.Unmarshal([]byte(text(t, res)), &m))
		assert.Equal(t, "/providers", m.URL)
		assert.Equal(t, []string{"/"}, m.Redirects)
	})

	t.Run("params", func(t *testing.T) {
		res, err := handleResolve(context.Background(), fctx, request(map[string]any{"url": "/instances/sj-out"}))
		require.NoError(t, err)
		var m route.Match
		require.NoError(t, json.Unmarshal([]byte(text(t, res)), &m))
		assert.Equal(t, map[string]string{"name": "sj-out"}, m.Params)
	})

	t.Run("no match suggests", func(t *testing.T) {
		res, err := handleResolve(context.Background(), fctx, request(map[string]any{"url": "/instance"}))
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, text(t, res), "did you mean /instances")
	})

	t.Run("missing url", func(t *testing.T) {
		res, err := handleResolve(context.Background(), fctx, request(nil))
		require.NoError(t, err)
		assert.True(t, res.IsError)
	})
}

func TestSnapshotRoundTrip(t *testing.T) {
	root := testContext(t).Routes()

	b, err := Snapshot(root)
	require.NoError(t, err)
	require.NoError(t, validateSnapshot(b))
	assert.Contains(t, string(b), "redirect_to: providers\n")
	assert.Contains(t, string(b), "path_match: full\n")
}

func TestValidateSnapshot(t *testing.T) {
	assert.ErrorContains(t, validateSnapshot([]byte("path: [\n")), "malformed snapshot")
	assert.ErrorIs(t, validateSnapshot([]byte("path: \"\"\nchildren:\n  - path: a\n  - path: a\n")), route.ErrDuplicatePath)
	assert.ErrorIs(t, validateSnapshot([]byte("path: \"\"\nchildren:\n  - path: \"\"\n    view: x\n")), route.ErrMissingPath)
}

func TestNewSearchBox(t *testing.T) {
	box, err := newSearchBox("distinct")
	require.NoError(t, err)
	assert.Equal(t, searchbox.PolicyDistinct, box.Policy())
	assert.Equal(t, searchbox.StateUninitialized, box.State())

	_, err = newSearchBox("sometimes")
	assert.ErrorIs(t, err, searchbox.ErrUnknownPolicy)
}

func TestFeature(t *testing.T) {
	f := New()
	assert.Equal(t, "core", f.Name())

	var names []string
	for _, c := range f.Commands() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"routes", "check", "resolve", "browse", "serve", "config", "version"}, names)

	var tools []string
	for _, tool := range f.MCPTools() {
		tools = append(tools, tool.Tool.Name)
	}
	assert.Equal(t, []string{"juggler_routes", "juggler_resolve"}, tools)
}
