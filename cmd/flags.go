/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// flags.go defines global CLI flags and accessors for shared state.
//
// Features read flag values through the exported accessors rather than the
// variables, so they stay decoupled from cobra internals.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var validOutputFormats = []string{"json", "yaml"}

var (
	output     string
	configPath string
)

// out is the output writer for commands. Tests replace it to capture output.
var out io.Writer = os.Stdout

// Out returns the output writer.
func Out() io.Writer { return out }

// SetOut sets the output writer (for testing).
func SetOut(w io.Writer) { out = w }

// Output returns the output format flag value.
func Output() string { return output }

// ConfigPath returns the explicit config file, if --config was given.
func ConfigPath() string { return configPath }

// JSON returns true if JSON output is requested.
func JSON() bool { return output == "json" }

// YAML returns true if YAML output is requested.
func YAML() bool { return output == "yaml" }

// Structured returns true if any machine-readable output is requested.
func Structured() bool { return JSON() || YAML() }

// PrintJSON marshals v to JSON and writes it to the output writer.
// Returns nil if output format is not JSON.
func PrintJSON(v any) error {
	if output != "json" {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(out, string(b))
	return nil
}

// PrintYAML marshals v to YAML with two-space indentation and writes it to
// the output writer. Returns nil if output format is not YAML.
func PrintYAML(v any) error {
	if output != "yaml" {
		return nil
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	return enc.Close()
}

// Print writes v in the requested structured format. It is a no-op for
// plain text output.
func Print(v any) error {
	if err := PrintJSON(v); err != nil {
		return err
	}
	return PrintYAML(v)
}

// PrintJSONError prints err as {"error": "..."} when JSON output is
// requested and silences cobra's own error print. The error is still
// returned so the process exits non-zero.
func PrintJSONError(err error) error {
	if output != "json" || err == nil {
		return err
	}
	_ = PrintJSON(map[string]string{"error": err.Error()})
	rootCmd.SilenceErrors = true
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format: json, yaml")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: .juggler/config.yaml, then ~/.juggler/config.yaml)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return validOutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
}
