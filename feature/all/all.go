// Package all registers every built-in juggler feature. Import it for its
// side effect.
//
// Features are registered here rather than in their own init functions:
// registration order is the console's navigation order, and Go initialises
// imported packages in import-path order, not in the order listed.
package all

import (
	"github.com/jpl-au/juggler/feature"
	"github.com/jpl-au/juggler/feature/core"
	"github.com/jpl-au/juggler/feature/instances"
	"github.com/jpl-au/juggler/feature/modules"
	"github.com/jpl-au/juggler/feature/providers"
	"github.com/jpl-au/juggler/feature/services"
	"github.com/jpl-au/juggler/feature/streams"
)

func init() {
	feature.Register(providers.New())
	feature.Register(services.New())
	feature.Register(streams.New())
	feature.Register(modules.New())
	feature.Register(instances.New())
	feature.Register(core.New())
}
