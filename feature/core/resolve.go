// resolve.go implements "juggler resolve", following a URL through the
// navigation tree the way the console's router does.

package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jpl-au/juggler/cmd"
	"github.com/jpl-au/juggler/internal/format"
	"github.com/jpl-au/juggler/internal/log"
	"github.com/jpl-au/juggler/internal/route"
	"github.com/spf13/cobra"
)

// suggestions is how many "did you mean" URLs are offered.
const suggestions = 3

func (f *Feature) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve URL",
		Short: "Resolve a URL through the navigation tree",
		Long: `Resolve a URL through the navigation tree: follow redirects, capture
parameters and print the final URL, view and breadcrumb trail.

  juggler resolve /                              # lands on the first feature
  juggler resolve /modules/regular/sj-kafka/1.0  # captures :type/:name/:version`,
		Args: cobra.ExactArgs(1),
		RunE: f.runResolve,
	}
}

func (f *Feature) runResolve(_ *cobra.Command, args []string) error {
	url := args[0]
	m, err := resolve(f.ctx.Routes(), url)
	log.Event("core:resolve", "resolve").Target(url).Resolved(m.URL).
		Detail("redirects", len(m.Redirects)).Write(err)
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	if cmd.Structured() {
		return cmd.Print(m)
	}
	return format.Match(cmd.Out(), m)
}

// resolve wraps route.Resolve, appending near-miss URLs to ErrNoMatch.
func resolve(root route.Node, url string) (route.Match, error) {
	m, err := route.Resolve(root, url)
	if errors.Is(err, route.ErrNoMatch) {
		if near := route.Suggest(route.Flatten(root), url, suggestions); len(near) > 0 {
			return m, fmt.Errorf("%w (did you mean %s?)", err, strings.Join(near, ", "))
		}
	}
	return m, err
}
