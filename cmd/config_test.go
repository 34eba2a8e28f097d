package cmd_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_ListDefaults(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("config")
	assert.Equal(t, "console.root: \nconsole.title: Stream Juggler\nroutes.snapshot: routes.yaml\nsearch.policy: every\n", out)
}

func TestConfig_SetLocalThenGet(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("config", "search.policy", "distinct", "--local")
	env.contains(out, "search.policy = distinct (local)")
	assert.FileExists(t, ".juggler/config.yaml")

	out = env.run("config", "search.policy")
	assert.Equal(t, "distinct\n", out)
}

func TestConfig_SetGlobal(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("config", "console.title", "Juggler")
	env.contains(out, "(global)")
	assert.FileExists(t, env.home+"/.juggler/config.yaml")

	out = env.run("routes")
	env.contains(out, "/ (Juggler)\n")
}

func TestConfig_InvalidValue(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.runErr("config", "search.policy", "sometimes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config value")

	_, err = env.runErr("config", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key")
}

func TestConfig_JSON(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("config", "-o", "json")
	var all map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &all))
	assert.Equal(t, "every", all["search.policy"])
}

func TestConfig_ExplicitFile(t *testing.T) {
	env := newTestEnv(t)
	env.localConfig("console:\n  title: Local\n")

	out := env.run("config", "console.title", "--config", env.dir+"/.juggler/config.yaml")
	assert.Equal(t, "Local\n", out)

	_, err := env.runErr("routes", "--config", env.dir+"/missing.yaml")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("version")
	env.contains(out, "Build Tag:")

	out = env.run("version", "-o", "json")
	env.contains(out, `"build_tag"`)
}
