// Package feature provides the plugin architecture for juggler. Each console
// feature (providers, services, streams, ...) is a Feature that registers
// itself with the registry and contributes its own route sub-tree, without
// knowing about any other feature.
package feature

import (
	"github.com/jpl-au/juggler/internal/route"
	"github.com/spf13/cobra"
)

// Feature defines the contract for juggler features.
type Feature interface {
	// Name returns a unique identifier for this feature.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command

	// MCPTools returns MCP tools to register with the server.
	MCPTools() []MCPTool
}

// Navigable features contribute routes to the console's navigation tree.
// The returned list is the feature's top-level routes in display order;
// each may nest its own children. The composer copies the list, so
// implementations may return a package-level value.
type Navigable interface {
	Feature
	Routes() []route.Node
}

// RouteLists returns the route lists of all Navigable features in
// registration order, ready for route.Compose.
func RouteLists() [][]route.Node {
	var lists [][]route.Node
	for _, f := range All() {
		if n, ok := f.(Navigable); ok {
			lists = append(lists, n.Routes())
		}
	}
	return lists
}

// Initializable features receive the shared Context once the navigation
// tree has been composed, before any of their commands run.
type Initializable interface {
	Feature
	Init(ctx Context) error
}
