// Package platformdetect probes the host for the facts
// Engine.GetPlatformInfo reports that the path resolver doesn't already
// know: the OS family, whether the process is running under WSL, the
// user's shell, and whether the Claude Code CLI is installed and where.
// It is a direct, idiomatic port of the original Rust platform::detect
// module.
package platformdetect

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Info is the raw platform-detection payload.
type Info struct {
	OS                  string
	IsWSL               bool
	Shell               string
	ClaudeCodeInstalled bool
	ClaudeCodePath      string
}

// Detect probes the current host and returns everything it can determine.
func Detect() Info {
	installed, path := detectClaudeCode()
	return Info{
		OS:                  detectOS(),
		IsWSL:               isWSL(),
		Shell:               detectShell(),
		ClaudeCodeInstalled: installed,
		ClaudeCodePath:      path,
	}
}

// detectOS returns the target OS as a lowercase string, matching the
// original's detect_os.
func detectOS() string {
	switch runtime.GOOS {
	case "darwin":
		return "macos"
	case "windows":
		return "windows"
	case "linux":
		return "linux"
	default:
		return "unknown"
	}
}

// isWSL checks whether the process is running inside WSL by reading
// /proc/version, matching the original's is_wsl.
func isWSL() bool {
	if runtime.GOOS != "linux" {
		return false
	}

	contents, err := os.ReadFile("/proc/version")
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(string(contents)), "microsoft")
}

// detectShell resolves the user's shell: CLAUDE_CODE_SHELL, then SHELL,
// then a platform fallback, matching the original's detect_shell.
func detectShell() string {
	if shell := os.Getenv("CLAUDE_CODE_SHELL"); shell != "" {
		return shell
	}
	if shell := os.Getenv("SHELL"); shell != "" {
		return shell
	}
	if runtime.GOOS == "windows" {
		return "cmd.exe"
	}
	return "/bin/sh"
}

// detectClaudeCode reports whether the claude CLI binary can be found,
// trying `which`/`where` first and falling back to a list of common
// installation paths, matching the original's detect_claude_code.
func detectClaudeCode() (installed bool, path string) {
	lookup := "which"
	if runtime.GOOS == "windows" {
		lookup = "where"
	}

	if out, err := exec.Command(lookup, "claude").Output(); err == nil {
		if found := firstLine(strings.TrimSpace(string(out))); found != "" {
			return true, found
		}
	}

	for _, candidate := range commonInstallPaths() {
		if _, err := os.Stat(candidate); err == nil {
			return true, candidate
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		for _, rel := range []string{
			filepath.Join(".npm-global", "bin", "claude"),
			filepath.Join(".local", "bin", "claude"),
		} {
			candidate := filepath.Join(home, rel)
			if _, err := os.Stat(candidate); err == nil {
				return true, candidate
			}
		}
	}

	return false, ""
}

func commonInstallPaths() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"/usr/local/bin/claude", "/opt/homebrew/bin/claude"}
	case "windows":
		return nil
	default:
		return []string{"/usr/local/bin/claude", "/usr/bin/claude"}
	}
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx != -1 {
		return s[:idx]
	}
	return s
}
