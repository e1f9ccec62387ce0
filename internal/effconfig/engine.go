package effconfig

import (
	"sync"

	"github.com/hyperblaze/ssenrah/internal/backendlog"
	"github.com/hyperblaze/ssenrah/internal/platformdetect"
)

// Engine is the Go-native binding of the external RPC surface documented in
// the design notes: one method per RPC name, operating against the single
// currently-open project and at most one active file-change subscription.
// It is the seam a real RPC transport (out of scope for this module) would
// sit behind.
type Engine struct {
	project *ProjectState

	watcherMu sync.Mutex
	watcher   *Watcher
	subID     string
}

// NewEngine returns an Engine with no project open and no active
// subscription.
func NewEngine() *Engine {
	return &Engine{project: NewProjectState()}
}

// GetPlatformInfo reports OS, WSL, shell, and Claude Code CLI detection
// alongside the resolved config and managed-settings directories.
func (e *Engine) GetPlatformInfo() (PlatformInfo, error) {
	dir, err := ConfigDir()
	if err != nil {
		return PlatformInfo{}, err
	}
	detected := platformdetect.Detect()

	info := PlatformInfo{
		OS:                  detected.OS,
		IsWSL:               detected.IsWSL,
		Shell:               detected.Shell,
		ClaudeCodeInstalled: detected.ClaudeCodeInstalled,
		ClaudeCodePath:      detected.ClaudeCodePath,
		ConfigDir:           dir,
	}
	if managedDir, ok := ManagedSettingsDir(); ok {
		info.ManagedSettingsDir = managedDir
	}
	return info, nil
}

// GetProjectInfo returns a snapshot of the currently open project, if any.
func (e *Engine) GetProjectInfo() ProjectInfo {
	return e.project.GetProjectInfo()
}

// OpenProject validates and opens path as the current project root, moving
// any active file-change subscription's project-scoped watches over to it.
func (e *Engine) OpenProject(path string) (ProjectInfo, error) {
	info, err := e.project.OpenProject(path)
	if err != nil {
		return ProjectInfo{}, err
	}

	e.watcherMu.Lock()
	if e.watcher != nil {
		e.watcher.SetProjectRoot(info.ProjectRoot)
	}
	e.watcherMu.Unlock()

	backendlog.For("project").WithField("root", *info.ProjectRoot).Info("opened project")
	return info, nil
}

// projectRoot snapshots the current project root without holding the
// project-state mutex across any subsequent I/O.
func (e *Engine) projectRoot() *string {
	return e.project.CurrentRoot()
}

// currentWatcher snapshots the active watcher, or nil if no subscription is
// active. Writers pass this to MarkSelfWrite so the subscriber never sees
// its own write reflected back as an external change.
func (e *Engine) currentWatcher() *Watcher {
	e.watcherMu.Lock()
	defer e.watcherMu.Unlock()
	return e.watcher
}

// ReadSettings reads the settings.json document for scope.
func (e *Engine) ReadSettings(scope Scope) (map[string]any, bool, error) {
	return ReadSettings(scope, e.projectRoot())
}

// WriteSettings atomically writes value as the settings.json document for a
// writable scope.
func (e *Engine) WriteSettings(scope WritableScope, value map[string]any) error {
	if !scope.IsValid() {
		return PlatformErr("unknown writable scope: " + string(scope))
	}
	return WriteSettings(scope.ToScope(), e.projectRoot(), value, e.currentWatcher())
}

// ReadManagedSettings reads the organization-managed settings document.
func (e *Engine) ReadManagedSettings() (map[string]any, bool, error) {
	return ReadManagedSettings()
}

// ComputeEffectiveConfig reads all four scopes and folds them into the
// merged effective configuration.
func (e *Engine) ComputeEffectiveConfig() (EffectiveConfig, error) {
	root := e.projectRoot()

	user, _, err := ReadSettings(ScopeUser, root)
	if err != nil {
		return EffectiveConfig{}, err
	}

	var project, local map[string]any
	if root != nil {
		project, _, err = ReadSettings(ScopeProject, root)
		if err != nil {
			return EffectiveConfig{}, err
		}
		local, _, err = ReadSettings(ScopeLocal, root)
		if err != nil {
			return EffectiveConfig{}, err
		}
	}

	managed, _, err := ReadManagedSettings()
	if err != nil {
		if engineErr, ok := AsEngineError(err); !ok || engineErr.Kind() != KindPlatformError {
			return EffectiveConfig{}, err
		}
		managed = nil
	}

	return ComputeEffective(user, project, local, managed), nil
}

// ValidateSettings performs structural validation of a settings document.
func (e *Engine) ValidateSettings(settings map[string]any) ValidationResult {
	return ValidateSettings(settings)
}

// ValidatePermissionRule validates a single permission rule string.
func (e *Engine) ValidatePermissionRule(rule string) PermissionRuleResult {
	return ValidatePermissionRule(rule)
}

// ValidateHookMatcher validates a hook matcher regular expression.
func (e *Engine) ValidateHookMatcher(matcher string) HookMatcherResult {
	return ValidateHookMatcher(matcher)
}

// ReadMCPConfig reads the MCP server configuration for source.
func (e *Engine) ReadMCPConfig(source string) (map[string]any, bool, error) {
	return ReadMCPConfig(source, e.projectRoot())
}

// WriteMCPConfig atomically writes servers as the MCP server configuration
// for source.
func (e *Engine) WriteMCPConfig(source string, servers map[string]any) error {
	return WriteMCPConfig(source, e.projectRoot(), servers, e.currentWatcher())
}

// ReadManagedMCP reads the organization-managed MCP server configuration.
func (e *Engine) ReadManagedMCP() (map[string]any, bool, error) {
	return ReadMCPConfig("managed", nil)
}

// ReadMemory reads the CLAUDE.md content for the given memory scope.
func (e *Engine) ReadMemory(scope MemoryScope) (string, bool, error) {
	return ReadMemory(scope, e.projectRoot())
}

// WriteMemory atomically writes content as the CLAUDE.md for the given
// memory scope.
func (e *Engine) WriteMemory(scope MemoryScope, content string) error {
	return WriteMemory(scope, e.projectRoot(), content, e.currentWatcher())
}

// ListAgents lists the agent markdown files in scope's agents directory.
func (e *Engine) ListAgents(scope string) ([]ResourceInfo, error) {
	return ListAgents(scope, e.projectRoot())
}

// ReadAgent reads a single agent by name from scope.
func (e *Engine) ReadAgent(scope, name string) (ResourceContent, error) {
	return ReadAgent(scope, e.projectRoot(), name)
}

// WriteAgent atomically writes a single agent file by name to scope.
func (e *Engine) WriteAgent(scope, name string, content ResourceContent) error {
	return WriteAgent(scope, e.projectRoot(), name, content, e.currentWatcher())
}

// DeleteAgent removes a single agent file by name from scope.
func (e *Engine) DeleteAgent(scope, name string) error {
	return DeleteAgent(scope, e.projectRoot(), name, e.currentWatcher())
}

// ListSkills lists the skills in scope's skills directory.
func (e *Engine) ListSkills(scope string) ([]ResourceInfo, error) {
	return ListSkills(scope, e.projectRoot())
}

// ReadSkill reads a single skill by name from scope.
func (e *Engine) ReadSkill(scope, name string) (ResourceContent, error) {
	return ReadSkill(scope, e.projectRoot(), name)
}

// WriteSkill atomically writes a skill by name to scope.
func (e *Engine) WriteSkill(scope, name string, content ResourceContent) error {
	return WriteSkill(scope, e.projectRoot(), name, content, e.currentWatcher())
}

// DeleteSkill removes a skill by name from scope.
func (e *Engine) DeleteSkill(scope, name string) error {
	return DeleteSkill(scope, e.projectRoot(), name, e.currentWatcher())
}

// ReadSkillFile reads an auxiliary file inside a directory-form skill.
func (e *Engine) ReadSkillFile(scope, skillName, relPath string) (string, error) {
	return ReadSkillFile(scope, e.projectRoot(), skillName, relPath)
}

// WriteSkillFile atomically writes an auxiliary file inside a directory-form
// skill.
func (e *Engine) WriteSkillFile(scope, skillName, relPath, content string) error {
	return WriteSkillFile(scope, e.projectRoot(), skillName, relPath, content, e.currentWatcher())
}

// EnsureClaudeDir creates the current project's .claude directory if
// missing.
func (e *Engine) EnsureClaudeDir() (string, error) {
	return EnsureClaudeDir(e.projectRoot())
}

// SubscribeFileChanges starts (or restarts) the file-change watcher scoped
// to the currently open project and returns its event channel. Only one
// subscription may be active per process: calling this again replaces the
// prior watcher and releases all of its watches, matching the original
// backend's single-subscriber contract.
func (e *Engine) SubscribeFileChanges() (<-chan FileChangeEvent, error) {
	e.watcherMu.Lock()
	defer e.watcherMu.Unlock()

	if e.watcher != nil {
		e.watcher.Unsubscribe(e.subID)
		e.watcher.Close()
		e.watcher = nil
		e.subID = ""
	}

	w, err := NewWatcher()
	if err != nil {
		return nil, err
	}
	w.SetProjectRoot(e.projectRoot())

	id, ch := w.Subscribe()
	e.watcher = w
	e.subID = id
	return ch, nil
}

// UnsubscribeFileChanges stops the active file-change watcher, if any, and
// releases all of its watches.
func (e *Engine) UnsubscribeFileChanges() {
	e.watcherMu.Lock()
	defer e.watcherMu.Unlock()

	if e.watcher == nil {
		return
	}
	e.watcher.Unsubscribe(e.subID)
	e.watcher.Close()
	e.watcher = nil
	e.subID = ""
}

// Close releases any active subscription. Safe to call on an Engine with no
// active subscription.
func (e *Engine) Close() {
	e.UnsubscribeFileChanges()
}
