/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_features.go composes the navigation tree and wires features.
//
// Features register during init() but the tree is composed only on first
// command execution, once every feature is known. Composition happens
// exactly once per process; the result is shared through the feature
// Context.

package cmd

import (
	"fmt"
	"sync"

	"github.com/jpl-au/juggler/feature"
	"github.com/jpl-au/juggler/internal/config"
	"github.com/jpl-au/juggler/internal/route"
)

var (
	featContext feature.Context
	initOnce    sync.Once
	initErr     error
)

// LoadConfig reads the --config file if given, otherwise local-then-global.
func LoadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}

// initFeatures loads configuration, composes the route tree and hands the
// resulting Context to every Initializable feature.
func initFeatures() error {
	initOnce.Do(func() {
		cfg, err := LoadConfig()
		if err != nil {
			initErr = fmt.Errorf("load config: %w", err)
			return
		}

		root, err := route.Compose(route.Root{
			Path:       cfg.RootPath(),
			Breadcrumb: cfg.Title(),
		}, feature.RouteLists())
		if err != nil {
			initErr = fmt.Errorf("compose routes: %w", err)
			return
		}

		featContext = feature.NewContext(root, cfg)
		for _, f := range feature.All() {
			if fi, ok := f.(feature.Initializable); ok {
				if err := fi.Init(featContext); err != nil {
					initErr = fmt.Errorf("init feature %s: %w", f.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

// Context returns the shared feature context, or nil before composition.
func Context() feature.Context {
	return featContext
}

// MCPTools collects the MCP tools of every registered feature.
func MCPTools() []feature.MCPTool {
	var tools []feature.MCPTool
	for _, f := range feature.All() {
		tools = append(tools, f.MCPTools()...)
	}
	return tools
}

var featuresOnce sync.Once

// registerFeatures adds commands from all registered features.
func registerFeatures() {
	featuresOnce.Do(func() {
		for _, f := range feature.All() {
			for _, c := range f.Commands() {
				rootCmd.AddCommand(c)
			}
		}
	})
}
