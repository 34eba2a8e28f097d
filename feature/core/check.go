// check.go implements "juggler check", the start-up validation pass run
// ahead of time: the composed tree is compared line by line with a
// committed YAML snapshot so route changes show up in review.

package core

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/jpl-au/juggler/cmd"
	"github.com/jpl-au/juggler/feature"
	"github.com/jpl-au/juggler/internal/diff"
	"github.com/jpl-au/juggler/internal/log"
	"github.com/jpl-au/juggler/internal/route"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// ErrSnapshotMismatch is returned when the composed tree differs from the
// snapshot.
var ErrSnapshotMismatch = errors.New("route table differs from snapshot")

// checkResult is the structured output of check.
type checkResult struct {
	Snapshot string `json:"snapshot" yaml:"snapshot"`
	Match    bool   `json:"match" yaml:"match"`
	Updated  bool   `json:"updated,omitempty" yaml:"updated,omitempty"`
	Added    int    `json:"added,omitempty" yaml:"added,omitempty"`
	Removed  int    `json:"removed,omitempty" yaml:"removed,omitempty"`
	Diff     string `json:"diff,omitempty" yaml:"diff,omitempty"`
}

func (f *Feature) newCheckCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "check",
		Short: "Compare the navigation tree with its snapshot",
		Long: `Validate the composed navigation tree and compare it with a committed YAML
snapshot (routes.snapshot, default routes.yaml). Exits non-zero and prints a
diff when they differ.

  juggler check                      # compare with routes.yaml
  juggler check --snapshot nav.yaml  # compare with another file
  juggler check --update             # rewrite the snapshot`,
		Args: cobra.NoArgs,
		RunE: f.runCheck,
	}
	c.Flags().String(feature.FlagSnapshot, "", "Snapshot file (default: routes.snapshot config)")
	c.Flags().Bool(feature.FlagUpdate, false, "Write the composed tree to the snapshot")
	return c
}

func (f *Feature) runCheck(c *cobra.Command, _ []string) (err error) {
	path, _ := c.Flags().GetString(feature.FlagSnapshot)
	update, _ := c.Flags().GetBool(feature.FlagUpdate)
	if path == "" {
		path = f.ctx.Config().Snapshot()
	}

	res := checkResult{Snapshot: path}
	defer func() {
		action := "check"
		if update {
			action = "update"
		}
		log.Event("core:check", action).Target(path).
			Detail("added", res.Added).Detail("removed", res.Removed).
			Write(err)
	}()

	current, err := Snapshot(f.ctx.Routes())
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	if update {
		if err = os.WriteFile(path, current, 0644); err != nil {
			return cmd.PrintJSONError(fmt.Errorf("write snapshot: %w", err))
		}
		res.Match, res.Updated = true, true
		if cmd.Structured() {
			return cmd.Print(res)
		}
		fmt.Fprintf(cmd.Out(), "wrote %s\n", path)
		return nil
	}

	saved, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		err = fmt.Errorf("snapshot %s not found (run: juggler check --update)", path)
		return cmd.PrintJSONError(err)
	}
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("read snapshot: %w", err))
	}
	if err = validateSnapshot(saved); err != nil {
		return cmd.PrintJSONError(fmt.Errorf("snapshot %s: %w", path, err))
	}

	d := diff.Compute(string(saved), string(current), path, "composed")
	res.Match = !d.Changed()
	res.Added, res.Removed = d.Added, d.Removed
	if !res.Match {
		res.Diff = d.Diff
		err = ErrSnapshotMismatch
	}

	if cmd.Structured() {
		if perr := cmd.Print(res); perr != nil {
			return perr
		}
		if err != nil {
			c.Root().SilenceErrors = true
		}
		return err
	}
	if res.Match {
		fmt.Fprintf(cmd.Out(), "%s: ok\n", path)
		return nil
	}
	fmt.Fprint(cmd.Out(), d.Format(term.IsTerminal(int(os.Stdout.Fd()))))
	return err
}

// Snapshot renders a navigation tree in the YAML snapshot format.
func Snapshot(root route.Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// validateSnapshot checks that a saved snapshot is itself a valid tree, so a
// hand-edited file is reported as broken rather than merely different.
func validateSnapshot(data []byte) error {
	var root route.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return fmt.Errorf("malformed snapshot: %w", err)
	}
	return route.Validate(root)
}
