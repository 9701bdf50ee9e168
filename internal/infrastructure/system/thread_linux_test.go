//go:build linux

package system

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func TestCurrentThreadID_Linux(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	assert.Equal(t, uint64(unix.Gettid()), currentThreadID())
	assert.NotZero(t, currentThreadID())
}
