package feature

import (
	"github.com/jpl-au/juggler/internal/route"
	"github.com/spf13/cobra"
)

// Section is a Navigable feature that only contributes routes. Console
// sections without commands or tools embed or return one.
type Section struct {
	name   string
	routes []route.Node
}

var _ Navigable = (*Section)(nil)

// NewSection creates a route-only feature.
func NewSection(name string, routes []route.Node) *Section {
	return &Section{name: name, routes: routes}
}

func (s *Section) Name() string { return s.name }

// Routes returns the section's top-level routes.
func (s *Section) Routes() []route.Node { return s.routes }

func (s *Section) Commands() []*cobra.Command { return nil }

func (s *Section) MCPTools() []MCPTool { return nil }
