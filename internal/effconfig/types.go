package effconfig

// PlatformInfo describes the host platform, resolved at runtime. Shape
// matches the original backend's get_platform_info payload.
type PlatformInfo struct {
	OS                  string `json:"os" validate:"required"`
	IsWSL               bool   `json:"isWsl"`
	Shell               string `json:"shell" validate:"required"`
	ClaudeCodeInstalled bool   `json:"claudeCodeInstalled"`
	ClaudeCodePath      string `json:"claudeCodePath,omitempty"`
	ConfigDir           string `json:"configDir" validate:"required"`
	ManagedSettingsDir  string `json:"managedSettingsDir,omitempty"`
}

// ProjectInfo describes the currently-opened project, or the absence of one.
type ProjectInfo struct {
	ProjectRoot     *string `json:"projectRoot"`
	ClaudeDirExists bool    `json:"claudeDirExists"`
	GitRoot         *string `json:"gitRoot"`
}

// ValidationIssue is a single structured validation error or warning.
type ValidationIssue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// ValidationResult is the outcome of validating a settings document.
type ValidationResult struct {
	Valid    bool              `json:"valid"`
	Errors   []ValidationIssue `json:"errors"`
	Warnings []ValidationIssue `json:"warnings"`
}

// PermissionRuleResult is the outcome of validating a permission rule string
// of the form "ToolName" or "ToolName(specifier)".
type PermissionRuleResult struct {
	Valid      bool    `json:"valid"`
	Tool       string  `json:"tool"`
	Specifier  *string `json:"specifier,omitempty"`
	ErrMessage *string `json:"error,omitempty"`
}

// HookMatcherResult is the outcome of validating a hook matcher regex.
type HookMatcherResult struct {
	Valid      bool    `json:"valid"`
	ErrMessage *string `json:"error,omitempty"`
}

// Override describes a single field whose value was set by more than one
// scope, with the highest-precedence scope winning.
type Override struct {
	Path             string   `json:"path"`
	EffectiveScope   string   `json:"effectiveScope"`
	OverriddenScopes []string `json:"overriddenScopes"`
	EffectiveValue   any      `json:"effectiveValue"`
}

// EffectiveConfig is the merged view of all four configuration scopes.
type EffectiveConfig struct {
	Settings  map[string]any    `json:"settings"`
	Sources   map[string]string `json:"sources"`
	Overrides []Override        `json:"overrides"`
}

// FileChangeKind is the classification of a filesystem change event.
type FileChangeKind string

const (
	ChangeCreated  FileChangeKind = "created"
	ChangeModified FileChangeKind = "modified"
	ChangeDeleted  FileChangeKind = "deleted"
)

// FileChangeEvent is emitted on the subscription channel returned by
// Engine.SubscribeFileChanges.
type FileChangeEvent struct {
	Path  string         `json:"path"`
	Kind  FileChangeKind `json:"kind"`
	Scope string         `json:"scope"`
}

// ResourceInfo is the summary shape returned when listing agents or skills:
// the file or directory name, the scope it was found in, its parsed
// frontmatter, and a preview of the body (first 200 characters).
type ResourceInfo struct {
	Name        string         `json:"name"`
	Scope       string         `json:"scope"`
	Frontmatter map[string]any `json:"frontmatter"`
	BodyPreview string         `json:"bodyPreview"`
}

// ResourceContent is the full frontmatter + body payload for reading or
// writing a single agent or skill file.
type ResourceContent struct {
	Frontmatter map[string]any `json:"frontmatter"`
	Body        string         `json:"body"`
}
