// Package providers contributes the Providers section of the console.
package providers

import (
	"github.com/jpl-au/juggler/feature"
	"github.com/jpl-au/juggler/internal/route"
)

// New returns the providers feature.
func New() *feature.Section {
	return feature.NewSection("providers", Routes)
}

// Routes is the providers sub-tree.
var Routes = []route.Node{{
	Path:       "providers",
	Breadcrumb: "Providers",
	Children: []route.Node{
		{Path: "", View: "providers.list"},
	},
}}
