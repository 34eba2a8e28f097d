// result.go holds helpers shared by tool handlers for reading arguments and
// building results. Optional arguments fall back to defaults instead of
// failing the call.

package mcp

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// String extracts a string argument, returning def if it is missing or not
// a string.
func String(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// Bool extracts a boolean argument. JSON booleans decode as bool, so "true"
// passed as a string yields def.
func Bool(req mcp.CallToolRequest, name string, def bool) bool {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(bool); ok {
		return v
	}
	return def
}

// JSON serialises v as indented JSON in a text result. Marshal failures
// become error results so every failure reaches the client the same way.
func JSON(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
