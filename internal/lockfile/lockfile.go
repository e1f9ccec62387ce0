// Package lockfile implements the backend's advisory single-instance guard:
// a PID file at {configDir}/.ssenrah.lock. It is a direct port of the
// original Rust lockfile module, extended to probe for a live process on
// non-Linux Unixes via a signal(0) probe rather than only /proc.
package lockfile

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// FileName is the lockfile's name within the config directory.
const FileName = ".ssenrah.lock"

// ErrAlreadyRunning is returned by Acquire when a live process already
// holds the lock.
var ErrAlreadyRunning = errors.New("another ssenrah instance is already running")

// Path returns the lockfile path within configDir.
func Path(configDir string) string {
	return filepath.Join(configDir, FileName)
}

// Acquire creates the lockfile with this process's PID. If a lockfile
// already exists and names a process that is no longer running, it is
// treated as stale and replaced. If it names a live process, Acquire
// returns ErrAlreadyRunning.
func Acquire(configDir string) error {
	path := Path(configDir)

	if contents, err := os.ReadFile(path); err == nil {
		if pid, perr := strconv.Atoi(strings.TrimSpace(string(contents))); perr == nil {
			if processRunning(pid) {
				return ErrAlreadyRunning
			}
		}
		_ = os.Remove(path)
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0o644)
}

// Release removes the lockfile, if present. Safe to call even if Acquire
// was never called or already failed.
func Release(configDir string) {
	_ = os.Remove(Path(configDir))
}

// processRunning reports whether pid names a currently running process. On
// Linux it checks for /proc/{pid}; elsewhere it defers to the platform-
// specific signalProbe. This is advisory only: a false negative merely lets
// a new instance start next to a stale lock.
func processRunning(pid int) bool {
	if runtime.GOOS == "linux" {
		_, err := os.Stat("/proc/" + strconv.Itoa(pid))
		return err == nil
	}
	return signalProbe(pid)
}
