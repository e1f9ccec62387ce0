package effconfig

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/hyperblaze/ssenrah/claudecontract"
)

// HomeDir returns the current user's home directory.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", PlatformErr("could not determine home directory: " + err.Error())
	}
	return home, nil
}

// ConfigDir resolves the Claude Code config directory: CLAUDE_CONFIG_DIR if
// set and non-empty, else {home}/.claude.
func ConfigDir() (string, error) {
	if dir := os.Getenv("CLAUDE_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	home, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, claudecontract.DirClaude), nil
}

// ManagedSettingsDir resolves the machine-wide, admin-controlled settings
// directory. Returns ok=false when the platform has none (e.g. Windows).
func ManagedSettingsDir() (dir string, ok bool) {
	switch runtime.GOOS {
	case "darwin":
		return "/Library/Application Support/ClaudeCode", true
	case "linux":
		return "/etc/claude-code", true
	default:
		return "", false
	}
}

// ResolveSettingsPath resolves the settings.json path for scope, given the
// current (possibly unset) project root.
func ResolveSettingsPath(scope Scope, projectRoot *string) (string, error) {
	switch scope {
	case ScopeUser:
		dir, err := ConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, claudecontract.FileSettings), nil
	case ScopeProject:
		root, err := requireProjectRoot(projectRoot, "reading project settings")
		if err != nil {
			return "", err
		}
		return filepath.Join(root, claudecontract.DirClaude, claudecontract.FileSettings), nil
	case ScopeLocal:
		root, err := requireProjectRoot(projectRoot, "reading local settings")
		if err != nil {
			return "", err
		}
		return filepath.Join(root, claudecontract.DirClaude, claudecontract.FileSettingsLocal), nil
	case ScopeManaged:
		dir, ok := ManagedSettingsDir()
		if !ok {
			return "", PlatformErr("managed settings directory is not supported on this platform")
		}
		return filepath.Join(dir, claudecontract.FileManagedSettings), nil
	default:
		return "", PlatformErr("unknown scope: " + string(scope))
	}
}

// MemoryScope identifies one of the four memory (CLAUDE.md) file variants.
// Unlike Scope, "project_root" has no settings.json counterpart: it names
// the CLAUDE.md that lives directly at the project root rather than inside
// .claude/.
type MemoryScope string

const (
	MemoryUser        MemoryScope = "user"
	MemoryProject     MemoryScope = "project"
	MemoryProjectRoot MemoryScope = "project_root"
	MemoryLocal       MemoryScope = "local"
)

// ResolveMemoryPath resolves the CLAUDE.md path for the given memory scope.
func ResolveMemoryPath(scope MemoryScope, projectRoot *string) (string, error) {
	switch scope {
	case MemoryUser:
		dir, err := ConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, claudecontract.FileClaudeMD), nil
	case MemoryProject:
		root, err := requireProjectRoot(projectRoot, "reading project memory")
		if err != nil {
			return "", err
		}
		return filepath.Join(root, claudecontract.DirClaude, claudecontract.FileClaudeMD), nil
	case MemoryProjectRoot:
		root, err := requireProjectRoot(projectRoot, "reading project root memory")
		if err != nil {
			return "", err
		}
		return filepath.Join(root, claudecontract.FileClaudeMD), nil
	case MemoryLocal:
		root, err := requireProjectRoot(projectRoot, "reading local memory")
		if err != nil {
			return "", err
		}
		return filepath.Join(root, claudecontract.DirClaude, "CLAUDE.local.md"), nil
	default:
		return "", PlatformErr("unknown memory scope: " + string(scope))
	}
}

// ResolveAgentsDir resolves the agents directory for scope ("user" or
// "project").
func ResolveAgentsDir(scope string, projectRoot *string) (string, error) {
	switch scope {
	case "user":
		dir, err := ConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, claudecontract.DirAgents), nil
	case "project":
		root, err := requireProjectRoot(projectRoot, "accessing project agents")
		if err != nil {
			return "", err
		}
		return filepath.Join(root, claudecontract.DirClaude, claudecontract.DirAgents), nil
	default:
		return "", PlatformErr("unknown agent scope: " + scope)
	}
}

// ResolveSkillsDir resolves the skills (commands) directory for scope
// ("user" or "project").
func ResolveSkillsDir(scope string, projectRoot *string) (string, error) {
	switch scope {
	case "user":
		dir, err := ConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, claudecontract.DirCommands), nil
	case "project":
		root, err := requireProjectRoot(projectRoot, "accessing project skills")
		if err != nil {
			return "", err
		}
		return filepath.Join(root, claudecontract.DirClaude, claudecontract.DirCommands), nil
	default:
		return "", PlatformErr("unknown skill scope: " + scope)
	}
}

// ResolveMCPPath resolves the MCP config file path for source ("project",
// "user", or "managed").
func ResolveMCPPath(source string, projectRoot *string) (string, error) {
	switch source {
	case "project":
		root, err := requireProjectRoot(projectRoot, "reading project MCP config")
		if err != nil {
			return "", err
		}
		return filepath.Join(root, claudecontract.DirClaude, claudecontract.FileMCPConfig), nil
	case "user":
		home, err := HomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".claude.json"), nil
	case "managed":
		dir, ok := ManagedSettingsDir()
		if !ok {
			return "", PlatformErr("managed settings directory is not supported on this platform")
		}
		return filepath.Join(dir, "managed-mcp.json"), nil
	default:
		return "", PlatformErr("unknown MCP source: " + source)
	}
}

func requireProjectRoot(projectRoot *string, action string) (string, error) {
	if projectRoot == nil || *projectRoot == "" {
		return "", NoProject("No project is open. Open a project before " + action + ".")
	}
	return *projectRoot, nil
}
