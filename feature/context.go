// context.go defines the Context handed to feature commands and MCP tools.
//
// The route tree is composed once, after every feature has registered, so
// features receive it through Context rather than building it themselves.

package feature

import (
	"github.com/jpl-au/juggler/internal/config"
	"github.com/jpl-au/juggler/internal/route"
)

// Context provides features controlled access to shared state.
type Context interface {
	// Routes returns the composed navigation tree. It must not be modified.
	Routes() route.Node

	// Config returns the loaded configuration.
	Config() *config.Config
}

type featureContext struct {
	routes route.Node
	cfg    *config.Config
}

// NewContext creates a feature context.
func NewContext(routes route.Node, cfg *config.Config) Context {
	return &featureContext{routes: routes, cfg: cfg}
}

func (c *featureContext) Routes() route.Node { return c.routes }

func (c *featureContext) Config() *config.Config { return c.cfg }
