package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	orig := Version
	Version = "v1.2.3"
	t.Cleanup(func() { Version = orig })

	info := Get()
	assert.Equal(t, "v1.2.3", info.BuildTag)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, "v1.2.3", Short())
	assert.Contains(t, info.String(), "Build Tag:    v1.2.3\n")
}
