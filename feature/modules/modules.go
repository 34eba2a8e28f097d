// Package modules contributes the Modules section of the console.
package modules

import (
	"github.com/jpl-au/juggler/feature"
	"github.com/jpl-au/juggler/internal/route"
)

// New returns the modules feature.
func New() *feature.Section {
	return feature.NewSection("modules", Routes)
}

// Routes is the modules sub-tree.
var Routes = []route.Node{{
	Path:       "modules",
	Breadcrumb: "Modules",
	Children: []route.Node{
		{Path: "", View: "modules.list"},
		{Path: ":type/:name/:version", Breadcrumb: "Module", View: "modules.detail"},
	},
}}
