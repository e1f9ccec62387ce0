package effconfig

import "github.com/hyperblaze/ssenrah/claudecontract"

// Scope identifies one of the four configuration layers. It is an alias of
// claudecontract.SettingSource so the path resolver and the RPC-facing
// Engine share a single enumeration with the rest of the module.
type Scope = claudecontract.SettingSource

const (
	ScopeUser    = claudecontract.SettingSourceUser
	ScopeProject = claudecontract.SettingSourceProject
	ScopeLocal   = claudecontract.SettingSourceLocal
	ScopeManaged = claudecontract.SettingSourceManaged
)

// WritableScope is the subset of Scope the GUI may write to. Managed is
// read-only by contract.
type WritableScope string

const (
	WritableUser    WritableScope = "user"
	WritableProject WritableScope = "project"
	WritableLocal   WritableScope = "local"
)

// ToScope converts a WritableScope into the corresponding Scope.
func (w WritableScope) ToScope() Scope {
	switch w {
	case WritableUser:
		return ScopeUser
	case WritableProject:
		return ScopeProject
	case WritableLocal:
		return ScopeLocal
	default:
		return ""
	}
}

// IsValid reports whether w is one of the three writable scopes.
func (w WritableScope) IsValid() bool {
	switch w {
	case WritableUser, WritableProject, WritableLocal:
		return true
	default:
		return false
	}
}

// ParseScope parses a lowercase scope name into a Scope, matching the wire
// representation used by the external interface.
func ParseScope(s string) (Scope, error) {
	for _, candidate := range claudecontract.ValidSettingSources() {
		if string(candidate) == s {
			return candidate, nil
		}
	}
	return "", PlatformErr("unknown scope: " + s)
}
