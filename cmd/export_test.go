package cmd

import (
	"sync"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Reset returns the CLI to its pre-execution state so each test composes
// the route tree from its own config.
func Reset() {
	registerFeatures()
	initOnce = sync.Once{}
	initErr = nil
	featContext = nil
	output, configPath = "", ""
	rootCmd.SilenceErrors = false
	resetFlags(rootCmd)
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}
