//go:build !linux && !windows

package system

// No portable thread id outside Linux and Windows.
func currentThreadID() uint64 {
	return 0
}
