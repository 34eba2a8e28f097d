// Package streams contributes the Streams section of the console.
package streams

import (
	"github.com/jpl-au/juggler/feature"
	"github.com/jpl-au/juggler/internal/route"
)

// New returns the streams feature.
func New() *feature.Section {
	return feature.NewSection("streams", Routes)
}

// Routes is the streams sub-tree.
var Routes = []route.Node{{
	Path:       "streams",
	Breadcrumb: "Streams",
	Children: []route.Node{
		{Path: "", View: "streams.list"},
	},
}}
