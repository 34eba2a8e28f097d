// version.go implements the version command.

package core

import (
	"fmt"

	"github.com/jpl-au/juggler/cmd"
	"github.com/jpl-au/juggler/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, git commit, Go version, and platform.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			info := version.Get()
			if cmd.Structured() {
				return cmd.Print(info)
			}
			fmt.Fprint(cmd.Out(), info.String())
			return nil
		},
	}
}
