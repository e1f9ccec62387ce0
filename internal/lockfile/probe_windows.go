//go:build windows

package lockfile

import "os"

// signalProbe reports whether pid is running. Windows does not support a
// signal-0-style existence probe through os.Process, so a process handle
// that can still be opened is treated as evidence the process is alive;
// anything else is treated as stale.
func signalProbe(pid int) bool {
	_, err := os.FindProcess(pid)
	return err == nil
}
