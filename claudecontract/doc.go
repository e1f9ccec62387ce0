// Package claudecontract provides a single source of truth for the on-disk
// and in-memory "contract" the Claude Code CLI exposes to a configuration
// backend: settings scopes, file and directory names, permission modes, hook
// event names, and built-in tool identifiers. Volatile strings live here so
// that a CLI update only requires touching one package.
//
// # Package Contents
//
//   - paths.go: file and directory names (.claude, settings.json, etc.) and
//     the SettingSource precedence ordering
//   - permissions.go: permission mode, behavior, and destination constants
//   - tools.go: built-in tool names and categories, used by permission rule
//     validation
//   - formats.go: transport types and hook lifecycle event names
//
// # Usage
//
//	import "github.com/hyperblaze/ssenrah/claudecontract"
//
//	if src == claudecontract.SettingSourceManaged { ... }
//	if !claudecontract.HookPreToolUse.IsValid() { ... }
package claudecontract
