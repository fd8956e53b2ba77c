package version

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "1.2.0", normalize("v1.2.0"))
	assert.Equal(t, "1.2.0", normalize("1.2"))
	assert.Equal(t, "nightly", normalize("nightly"))
}

func TestGetVersion(t *testing.T) {
	savedTag, savedCommit, savedLabel := gitTag, gitCommit, versionLabel
	t.Cleanup(func() {
		gitTag, gitCommit, versionLabel = savedTag, savedCommit, savedLabel
	})

	gitTag, gitCommit, versionLabel = "", "", ""
	assert.Equal(t, unknownVersion, GetVersion(true, false))

	gitTag, gitCommit = "v0.3.1", "abc123"
	assert.Equal(t, "0.3.1", GetVersion(true, false))
	assert.Equal(t, "0.3.1.abc123", GetVersion(false, true))
	assert.Equal(t,
		fmt.Sprintf("create-addon version 0.3.1, %s/%s. commit: abc123",
			runtime.GOOS, runtime.GOARCH),
		GetVersion(false, false))

	versionLabel = "custom"
	assert.Equal(t, "0.3.1/custom", GetVersion(true, false))
}
