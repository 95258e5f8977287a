package version

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	defer func(tag, commit string) {
		gitTag, gitCommit = tag, commit
	}(gitTag, gitCommit)

	gitTag, gitCommit = "", ""
	assert.Equal(t, unknownVersion, GetVersion(true, false))

	gitTag, gitCommit = "v1.2.0", "3a4b5c6"
	assert.Equal(t, "1.2.0", GetVersion(true, false))
	assert.Equal(t, "1.2.0.3a4b5c6", GetVersion(false, true))
	assert.Equal(t, fmt.Sprintf("stamp version 1.2.0, %s/%s. commit: 3a4b5c6",
		runtime.GOOS, runtime.GOARCH), GetVersion(false, false))

	gitTag = "v2.0.0-rc1"
	assert.Equal(t, "2.0.0-rc1", GetVersion(true, false))

	gitTag = "nightly"
	assert.Equal(t, "nightly", GetVersion(true, false))
}
