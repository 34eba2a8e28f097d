package route_test

import (
	"fmt"

	"github.com/jpl-au/juggler/internal/route"
)

// Example composes a console from two feature lists and lists the result.
func Example() {
	providers := []route.Node{{Path: "providers", Breadcrumb: "Providers"}}
	services := []route.Node{{Path: "services", Breadcrumb: "Services"}}

	tree, err := route.Compose(route.Root{Breadcrumb: "Stream Juggler"}, [][]route.Node{providers, services})
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, e := range route.Flatten(tree)[1:] {
		if e.RedirectTo != "" {
			fmt.Printf("%s -> %s\n", e.URL, e.RedirectTo)
			continue
		}
		fmt.Printf("%s (%s)\n", e.URL, e.Trail())
	}

	// Output:
	// / -> /providers
	// /providers (Stream Juggler › Providers)
	// /services (Stream Juggler › Services)
}
