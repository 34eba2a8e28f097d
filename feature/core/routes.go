// routes.go implements "juggler routes", printing the composed navigation
// tree. Terminal output of --markdown is rendered with glamour; pipes get
// the raw markdown.

package core

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/jpl-au/juggler/cmd"
	"github.com/jpl-au/juggler/feature"
	"github.com/jpl-au/juggler/internal/format"
	"github.com/jpl-au/juggler/internal/log"
	"github.com/jpl-au/juggler/internal/route"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func (f *Feature) newRoutesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "routes",
		Short: "Print the composed navigation tree",
		Long: `Print the navigation tree composed from every feature module.

  juggler routes              # tree
  juggler routes --flat       # one row per URL
  juggler routes --markdown   # markdown table
  juggler routes -o yaml      # the tree as YAML (same format as the snapshot)`,
		Args: cobra.NoArgs,
		RunE: f.runRoutes,
	}
	c.Flags().Bool(feature.FlagFlat, false, "List one row per URL")
	c.Flags().Bool(feature.FlagMarkdown, false, "Render as a markdown table")
	c.Flags().Bool(feature.FlagRaw, false, "Do not render markdown on terminals")
	c.MarkFlagsMutuallyExclusive(feature.FlagFlat, feature.FlagMarkdown)
	return c
}

func (f *Feature) runRoutes(c *cobra.Command, _ []string) (err error) {
	flat, _ := c.Flags().GetBool(feature.FlagFlat)
	md, _ := c.Flags().GetBool(feature.FlagMarkdown)
	raw, _ := c.Flags().GetBool(feature.FlagRaw)

	root := f.ctx.Routes()
	entries := route.Flatten(root)
	defer func() {
		log.Event("core:routes", "list").Detail("count", len(entries)-1).Write(err)
	}()

	switch {
	case cmd.Structured() && flat:
		return cmd.Print(entries)
	case cmd.Structured():
		return cmd.Print(root)
	case flat:
		return format.Table(cmd.Out(), entries)
	case md:
		return renderMarkdown(format.Markdown(root.Breadcrumb, entries), raw)
	default:
		return format.Tree(cmd.Out(), root)
	}
}

// renderMarkdown writes markdown, rendered with glamour when stdout is a
// terminal and raw is not set.
func renderMarkdown(content string, raw bool) error {
	if !raw && term.IsTerminal(int(os.Stdout.Fd())) {
		rendered, err := glamour.Render(content, "dark")
		if err == nil {
			fmt.Fprint(cmd.Out(), rendered)
			return nil
		}
	}
	_, err := io.WriteString(cmd.Out(), content)
	return err
}
