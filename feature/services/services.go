// Package services contributes the Services section of the console.
package services

import (
	"github.com/jpl-au/juggler/feature"
	"github.com/jpl-au/juggler/internal/route"
)

// New returns the services feature.
func New() *feature.Section {
	return feature.NewSection("services", Routes)
}

// Routes is the services sub-tree.
var Routes = []route.Node{{
	Path:       "services",
	Breadcrumb: "Services",
	Children: []route.Node{
		{Path: "", View: "services.list"},
	},
}}
