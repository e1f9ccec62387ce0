//go:build !windows

package lockfile

import (
	"os"
	"syscall"
)

// signalProbe reports whether pid is running by sending it signal 0, which
// performs existence and permission checks without actually signaling the
// process.
func signalProbe(pid int) bool {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return proc.Signal(syscall.Signal(0)) == nil
}
