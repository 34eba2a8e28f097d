/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// PersistentPreRunE composes the navigation tree before any feature command
// runs. A configuration error there is fatal: the command is aborted and the
// process exits non-zero. Commands listed in noRoutesCommands skip
// composition so a broken route table can still be inspected and fixed.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/jpl-au/juggler/internal/log"
	"github.com/spf13/cobra"
)

// noRoutesCommands run without composing the route tree.
var noRoutesCommands = map[string]bool{
	"config":     true,
	"version":    true,
	"help":       true,
	"completion": true,
}

var rootCmd = &cobra.Command{
	Use:   "juggler",
	Short: "Navigation map and search filter for the Stream Juggler console",
	Long: `Composes the Stream Juggler console's navigation tree from its feature modules
(providers, services, streams, modules, instances), checks it against a
committed snapshot, resolves URLs through it, and serves it over MCP.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

func init() {
	rootCmd.PersistentPreRunE = preRun
}

// preRun validates global flags and composes the route tree. It is assigned
// in init because it reaches rootCmd through PrintJSONError.
func preRun(cmd *cobra.Command, _ []string) error {
	if output != "" && !slices.Contains(validOutputFormats, output) {
		return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
	}

	if noRoutesCommands[topLevelCmdName(cmd)] {
		return nil
	}
	return PrintJSONError(initFeatures())
}

// topLevelCmdName returns the name of the top-level command (direct child of root).
// For "juggler routes --tree", returns "routes".
func topLevelCmdName(cmd *cobra.Command) string {
	for cmd.HasParent() && cmd.Parent().HasParent() {
		cmd = cmd.Parent()
	}
	return cmd.Name()
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, registers features, executes the command and exits
// with code 1 on error.
func Execute() {
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}
	if wd, err := os.Getwd(); err == nil {
		log.SetProject(wd)
	}

	registerFeatures()
	err := rootCmd.Execute()
	log.Close()

	if err != nil {
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing and feature access.
func RootCmd() *cobra.Command {
	return rootCmd
}
