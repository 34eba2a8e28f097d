// mcp.go defines the MCP tools exposing the navigation tree.

package core

import (
	"context"

	"github.com/jpl-au/juggler/feature"
	"github.com/jpl-au/juggler/internal/log"
	jmcp "github.com/jpl-au/juggler/internal/mcp"
	"github.com/jpl-au/juggler/internal/route"
	"github.com/mark3labs/mcp-go/mcp"
)

func routesTool() feature.MCPTool {
	return feature.MCPTool{
		Tool: mcp.NewTool("juggler_routes",
			mcp.WithDescription("Return the console navigation tree composed from every feature module"),
			mcp.WithBoolean("flat", mcp.Description("Return one row per URL instead of the nested tree")),
		),
		Handler: handleRoutes,
	}
}

func resolveTool() feature.MCPTool {
	return feature.MCPTool{
		Tool: mcp.NewTool("juggler_resolve",
			mcp.WithDescription("Resolve a console URL: follow redirects, capture parameters, return the view and breadcrumb trail"),
			mcp.WithString("url", mcp.Required(), mcp.Description("URL to resolve, e.g. /modules/regular/sj-kafka/1.0")),
		),
		Handler: handleResolve,
	}
}

func handleRoutes(_ context.Context, fctx feature.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root := fctx.Routes()
	flat := jmcp.Bool(req, "flat", false)
	log.Event("mcp:juggler_routes", "list").Detail("flat", flat).Write(nil)
	if flat {
		return jmcp.JSON(route.Flatten(root))
	}
	return jmcp.JSON(root)
}

func handleResolve(_ context.Context, fctx feature.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := req.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError("url is required"), nil //nolint:nilerr
	}

	m, err := resolve(fctx.Routes(), url)
	log.Event("mcp:juggler_resolve", "resolve").Target(url).Resolved(m.URL).Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jmcp.JSON(m)
}
