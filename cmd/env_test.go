// Command tests run the real root command in-process against a temporary
// HOME and working directory, with every built-in feature registered.

package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jpl-au/juggler/cmd"
	_ "github.com/jpl-au/juggler/feature/all"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	t    *testing.T
	home string
	dir  string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{t: t, home: t.TempDir(), dir: t.TempDir()}
	t.Setenv("HOME", env.home)
	t.Chdir(env.dir)
	cmd.Reset()
	t.Cleanup(func() { cmd.SetOut(os.Stdout) })
	return env
}

// runErr executes juggler with args and returns everything written.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()
	cmd.Reset()

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	root := cmd.RootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	require.NoError(e.t, err, "juggler %v\noutput: %s", args, out)
	return out
}

// localConfig writes .juggler/config.yaml in the working directory.
func (e *testEnv) localConfig(content string) {
	e.t.Helper()
	p := filepath.Join(e.dir, ".juggler", "config.yaml")
	require.NoError(e.t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(e.t, os.WriteFile(p, []byte(content), 0644))
}

func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}
