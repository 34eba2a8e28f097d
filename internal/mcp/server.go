// Package mcp implements the Model Context Protocol server, exposing the
// composed route table to LLM clients over stdio.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/juggler/feature"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// NewServer builds an MCP server with every tool bound to fctx.
func NewServer(fctx feature.Context, tools []feature.MCPTool) *server.MCPServer {
	s := server.NewMCPServer(
		"juggler",
		Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	for _, t := range tools {
		s.AddTool(t.Tool, bind(fctx, t.Handler))
	}
	return s
}

// Serve starts the MCP server over stdio. It blocks until the client
// disconnects.
func Serve(fctx feature.Context, tools []feature.MCPTool) error {
	// stdout is reserved for JSON-RPC messages
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	s := NewServer(fctx, tools)
	slog.Info("juggler MCP server ready", "version", Version, "transport", "stdio", "tools", len(tools))

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

func bind(fctx feature.Context, h feature.MCPHandler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return h(ctx, fctx, req)
	}
}
