// Package core provides the core juggler commands: routes, check, resolve,
// browse, serve, config and version, plus the juggler_routes and
// juggler_resolve MCP tools.
package core

import (
	"github.com/jpl-au/juggler/feature"
	"github.com/spf13/cobra"
)

// Feature implements the core feature.
type Feature struct {
	ctx feature.Context
}

var (
	_ feature.Feature       = (*Feature)(nil)
	_ feature.Initializable = (*Feature)(nil)
)

// New returns the core feature.
func New() *Feature { return &Feature{} }

// Name returns "core".
func (f *Feature) Name() string { return "core" }

// Init receives the composed navigation tree.
func (f *Feature) Init(ctx feature.Context) error {
	f.ctx = ctx
	return nil
}

// Commands returns the core CLI commands.
func (f *Feature) Commands() []*cobra.Command {
	return []*cobra.Command{
		f.newRoutesCmd(),
		f.newCheckCmd(),
		f.newResolveCmd(),
		f.newBrowseCmd(),
		newServeCmd(),
		newConfigCmd(),
		newVersionCmd(),
	}
}

// MCPTools returns the route table tools.
func (f *Feature) MCPTools() []feature.MCPTool {
	return []feature.MCPTool{routesTool(), resolveTool()}
}
