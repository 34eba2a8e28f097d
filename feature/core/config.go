// config.go implements "juggler config".
//
// Local config (.juggler/config.yaml) takes precedence over global
// (~/.juggler/config.yaml). --local forces the local file even if it does
// not exist yet. Writes go to the file reads came from.

package core

import (
	"fmt"
	"maps"
	"slices"

	"github.com/jpl-au/juggler/cmd"
	"github.com/jpl-au/juggler/feature"
	"github.com/jpl-au/juggler/internal/config"
	"github.com/jpl-au/juggler/internal/log"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "View or set config values",
		Long: `View or set config values.

  juggler config                       # show config
  juggler config search.policy         # show search.policy
  juggler config search.policy distinct

Keys:
  console.title    root breadcrumb (default "Stream Juggler")
  console.root     path of the navigation root (default empty)
  search.policy    every | distinct
  routes.snapshot  snapshot file for check (default routes.yaml)

Configuration locations:
  Global: ~/.juggler/config.yaml
  Local:  .juggler/config.yaml

Uses --config if given, else local config if it exists, otherwise global.`,
		Args: cobra.MaximumNArgs(2),
		RunE: runConfig,
	}
	c.Flags().Bool(feature.FlagLocal, false, "Use local config (.juggler/config.yaml)")
	return c
}

func runConfig(c *cobra.Command, args []string) error {
	forceLocal, _ := c.Flags().GetBool(feature.FlagLocal)

	var cfg *config.Config
	var err error
	if forceLocal {
		cfg, err = config.LoadScope(config.ScopeLocal)
	} else {
		cfg, err = cmd.LoadConfig()
	}
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("config load: %w", err))
	}

	scopeName := "global"
	switch cfg.Scope() {
	case config.ScopeLocal:
		scopeName = "local"
	case config.ScopeFile:
		scopeName = cfg.Path()
	}

	switch len(args) {
	case 0:
		all := cfg.All()
		log.Event("core:config", "list").Write(nil)
		if cmd.Structured() {
			return cmd.Print(all)
		}
		for _, k := range slices.Sorted(maps.Keys(all)) {
			fmt.Fprintf(cmd.Out(), "%s: %s\n", k, all[k])
		}

	case 1:
		v, err := cfg.Get(args[0])
		log.Event("core:config", "get").Target(args[0]).Write(err)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("config get %q: %w", args[0], err))
		}
		if cmd.Structured() {
			return cmd.Print(map[string]string{args[0]: v})
		}
		fmt.Fprintln(cmd.Out(), v)

	case 2:
		if err := cfg.Set(args[0], args[1]); err != nil {
			log.Event("core:config", "set").Target(args[0]).Write(err)
			return cmd.PrintJSONError(fmt.Errorf("config set %q: %w", args[0], err))
		}

		saveErr := cfg.Save()
		log.Event("core:config", "set").Target(args[0]).Detail("scope", scopeName).Write(saveErr)
		if saveErr != nil {
			return cmd.PrintJSONError(fmt.Errorf("config save: %w", saveErr))
		}
		if cmd.Structured() {
			return cmd.Print(map[string]string{"key": args[0], "value": args[1], "scope": scopeName})
		}
		fmt.Fprintf(cmd.Out(), "%s = %s (%s)\n", args[0], args[1], scopeName)
	}
	return nil
}
