// Package instances contributes the Instances section of the console.
package instances

import (
	"github.com/jpl-au/juggler/feature"
	"github.com/jpl-au/juggler/internal/route"
)

// New returns the instances feature.
func New() *feature.Section {
	return feature.NewSection("instances", Routes)
}

// Routes is the instances sub-tree.
var Routes = []route.Node{{
	Path:       "instances",
	Breadcrumb: "Instances",
	Children: []route.Node{
		{Path: "", View: "instances.list"},
		{Path: ":name", Breadcrumb: "Instance", View: "instances.detail"},
	},
}}
