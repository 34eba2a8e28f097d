// mcp.go defines types for MCP tool registration by features.

package feature

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// MCPTool pairs an MCP tool definition with its handler.
type MCPTool struct {
	Tool    mcp.Tool
	Handler MCPHandler
}

// MCPHandler processes MCP tool requests. The Context gives access to the
// composed route tree and configuration.
type MCPHandler func(ctx context.Context, fctx Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
