// serve.go implements "juggler serve". It blocks, answering MCP requests
// over stdio until the client disconnects.

package core

import (
	"github.com/jpl-au/juggler/cmd"
	"github.com/jpl-au/juggler/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio, exposing the
composed navigation tree through the juggler_routes and juggler_resolve tools.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return mcp.Serve(cmd.Context(), cmd.MCPTools())
		},
	}
}
