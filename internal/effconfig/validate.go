package effconfig

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/hyperblaze/ssenrah/claudecontract"
)

var (
	validatorOnce     sync.Once
	validatorInstance *validator.Validate
)

// structValidator returns the process-wide validator instance, created on
// first use.
func structValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInstance = validator.New()
	})
	return validatorInstance
}

// permissionRulePattern matches a permission rule of the form "ToolName" or
// "ToolName(specifier)", e.g. "Bash(git diff:*)" or "Read".
var permissionRulePattern = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)(?:\((.+)\))?$`)

// mcpToolPrefix marks a permission rule's tool as belonging to an MCP
// server rather than a built-in tool, e.g. "mcp__github__create_issue".
// These are legitimate even though claudecontract.AllToolNames only
// enumerates the built-ins.
const mcpToolPrefix = "mcp__"

// isKnownToolName reports whether tool is a recognized built-in tool or an
// MCP-provided tool name, which can't be statically enumerated.
func isKnownToolName(tool string) bool {
	if strings.HasPrefix(tool, mcpToolPrefix) {
		return true
	}
	return slices.Contains(claudecontract.AllToolNames(), tool)
}

// ValidatePermissionRule validates a single permission rule string from a
// settings document's permissions.allow/deny/ask arrays.
func ValidatePermissionRule(rule string) PermissionRuleResult {
	matches := permissionRulePattern.FindStringSubmatch(rule)
	if matches == nil {
		msg := "permission rule must be \"ToolName\" or \"ToolName(specifier)\""
		return PermissionRuleResult{Valid: false, ErrMessage: &msg}
	}

	result := PermissionRuleResult{Valid: true, Tool: matches[1]}
	if matches[2] != "" {
		specifier := matches[2]
		result.Specifier = &specifier
	}
	return result
}

// ValidateHookMatcher validates that matcher compiles as a regular
// expression, the same engine Claude Code uses to match tool names against
// a hook's matcher field.
func ValidateHookMatcher(matcher string) HookMatcherResult {
	if _, err := regexp.Compile(matcher); err != nil {
		msg := err.Error()
		return HookMatcherResult{Valid: false, ErrMessage: &msg}
	}
	return HookMatcherResult{Valid: true}
}

// ValidateSettings performs structural validation of a settings document.
// Placeholder: full schema validation comes later; for now this catches the
// shapes the UI would otherwise silently write malformed data for.
func ValidateSettings(settings map[string]any) ValidationResult {
	var errs []ValidationIssue
	var warnings []ValidationIssue

	if perms, ok := settings["permissions"]; ok {
		permsObj, ok := perms.(map[string]any)
		if !ok {
			errs = append(errs, ValidationIssue{Path: "permissions", Message: "must be an object", Code: "invalid_type"})
		} else {
			for _, field := range []string{"allow", "deny", "ask"} {
				rules, ok := permsObj[field]
				if !ok {
					continue
				}
				list, ok := rules.([]any)
				if !ok {
					errs = append(errs, ValidationIssue{Path: "permissions." + field, Message: "must be an array", Code: "invalid_type"})
					continue
				}
				for i, item := range list {
					s, ok := item.(string)
					if !ok {
						errs = append(errs, ValidationIssue{Path: "permissions." + field, Message: "entries must be strings", Code: "invalid_type"})
						continue
					}
					res := ValidatePermissionRule(s)
					if !res.Valid {
						errs = append(errs, ValidationIssue{
							Path:    "permissions." + field + "[" + strconv.Itoa(i) + "]",
							Message: *res.ErrMessage,
							Code:    "invalid_permission_rule",
						})
						continue
					}
					if !isKnownToolName(res.Tool) {
						warnings = append(warnings, ValidationIssue{
							Path:    "permissions." + field + "[" + strconv.Itoa(i) + "]",
							Message: "\"" + res.Tool + "\" is not a built-in tool; this is fine for MCP or custom tool names",
							Code:    "unrecognized_tool",
						})
					}
				}
			}

			if rawMode, ok := permsObj["defaultMode"]; ok {
				mode, ok := rawMode.(string)
				if !ok || !claudecontract.PermissionMode(mode).IsValid() {
					errs = append(errs, ValidationIssue{
						Path:    "permissions.defaultMode",
						Message: "must be one of default, acceptEdits, bypassPermissions, plan",
						Code:    "invalid_permission_mode",
					})
				}
			}
		}
	}

	if hooks, ok := settings["hooks"]; ok {
		hooksObj, ok := hooks.(map[string]any)
		if !ok {
			errs = append(errs, ValidationIssue{Path: "hooks", Message: "must be an object", Code: "invalid_type"})
		} else {
			for event, groups := range hooksObj {
				if !claudecontract.HookEvent(event).IsValid() {
					warnings = append(warnings, ValidationIssue{
						Path:    "hooks." + event,
						Message: "\"" + event + "\" is not a recognized hook event",
						Code:    "unrecognized_hook_event",
					})
				}

				list, ok := groups.([]any)
				if !ok {
					errs = append(errs, ValidationIssue{Path: "hooks." + event, Message: "must be an array", Code: "invalid_type"})
					continue
				}
				for i, group := range list {
					groupObj, ok := group.(map[string]any)
					if !ok {
						continue
					}
					matcher, ok := groupObj["matcher"].(string)
					if !ok || matcher == "" {
						continue
					}
					if res := ValidateHookMatcher(matcher); !res.Valid {
						errs = append(errs, ValidationIssue{
							Path:    "hooks." + event + "[" + strconv.Itoa(i) + "].matcher",
							Message: *res.ErrMessage,
							Code:    "invalid_hook_matcher",
						})
					}
				}
			}
		}
	}

	return ValidationResult{
		Valid:    len(errs) == 0,
		Errors:   errs,
		Warnings: warnings,
	}
}

