// browse.go implements "juggler browse", an interactive route list filtered
// through the console search box.

package core

import (
	"fmt"

	"github.com/jpl-au/juggler/cmd"
	"github.com/jpl-au/juggler/internal/browse"
	"github.com/jpl-au/juggler/internal/log"
	"github.com/jpl-au/juggler/internal/route"
	"github.com/jpl-au/juggler/internal/searchbox"
	"github.com/spf13/cobra"
)

func (f *Feature) newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse and filter the navigation tree",
		Long: `Open an interactive list of every route. Typing filters the list; enter
prints the selected URL, esc quits.

The search.policy config key controls when the filter emits:
  every     on every keystroke (default)
  distinct  only when the text changed`,
		Args: cobra.NoArgs,
		RunE: f.runBrowse,
	}
}

func (f *Feature) runBrowse(_ *cobra.Command, _ []string) (err error) {
	var selected string
	defer func() {
		log.Event("core:browse", "browse").Resolved(selected).Write(err)
	}()

	box, err := newSearchBox(f.ctx.Config().SearchPolicy())
	if err != nil {
		return cmd.PrintJSONError(err)
	}
	root := f.ctx.Routes()
	selected, err = browse.Run(root.Breadcrumb, route.Flatten(root), box)
	if err != nil {
		return cmd.PrintJSONError(err)
	}
	if selected == "" {
		return nil
	}
	if cmd.Structured() {
		return cmd.Print(map[string]string{"url": selected})
	}
	fmt.Fprintln(cmd.Out(), selected)
	return nil
}

// newSearchBox builds the list's search box with the configured policy.
func newSearchBox(policy string) (*searchbox.Box, error) {
	p, err := searchbox.ParsePolicy(policy)
	if err != nil {
		return nil, err
	}
	return searchbox.New(searchbox.WithPolicy(p), searchbox.WithName("browse")), nil
}
