package effconfig

import "sort"

// deepMergeFields are object-valued JSON paths merged key-by-key rather than
// replaced wholesale.
var deepMergeFields = map[string]bool{
	"permissions":          true,
	"sandbox":              true,
	"sandbox.network":      true,
	"hooks":                true,
	"env":                  true,
	"attribution":          true,
	"spinnerTipsOverride":  true,
	"spinnerVerbs":         true,
	"statusLine":           true,
	"fileSuggestion":       true,
}

// arrayReplaceFields documents fields that are array-valued and replaced
// wholesale by a higher scope. The distinction from scalar-replace is
// purely informational: both behave identically in the merge engine, and
// this table exists for UI tooltips and documentation, not for dispatch.
var arrayReplaceFields = map[string]bool{
	"permissions.allow":                   true,
	"permissions.deny":                    true,
	"permissions.ask":                     true,
	"permissions.additionalDirectories":   true,
	"availableModels":                     true,
	"companyAnnouncements":                true,
	"sandbox.excludedCommands":            true,
	"sandbox.network.allowedDomains":      true,
	"sandbox.network.allowUnixSockets":    true,
	"enabledMcpjsonServers":               true,
	"disabledMcpjsonServers":              true,
	"allowedMcpServers":                   true,
	"deniedMcpServers":                    true,
}

// IsDeepMergeField reports whether path uses deep-merge semantics.
func IsDeepMergeField(path string) bool {
	return deepMergeFields[path]
}

// IsArrayReplaceField reports whether path is documented as array-replace.
// Informational only; see arrayReplaceFields.
func IsArrayReplaceField(path string) bool {
	return arrayReplaceFields[path]
}

type pathContribution struct {
	scope string
	value any
}

// ComputeEffective computes the merged configuration from up to four scopes,
// applied in fixed precedence order: user, project, local, managed. Any
// argument may be nil, meaning that scope is absent and contributes nothing.
func ComputeEffective(user, project, local, managed map[string]any) EffectiveConfig {
	result := map[string]any{}
	sources := map[string]string{}
	allPaths := map[string][]pathContribution{}

	scopes := []struct {
		name string
		data map[string]any
	}{
		{"user", user},
		{"project", project},
		{"local", local},
		{"managed", managed},
	}

	for _, s := range scopes {
		if s.data != nil {
			mergeObject(result, s.data, s.name, "", sources, allPaths)
		}
	}

	overrides := make([]Override, 0)
	for path, entries := range allPaths {
		if len(entries) < 2 {
			continue
		}
		last := entries[len(entries)-1]
		overridden := make([]string, 0, len(entries)-1)
		for _, e := range entries[:len(entries)-1] {
			overridden = append(overridden, e.scope)
		}
		overrides = append(overrides, Override{
			Path:             path,
			EffectiveScope:   last.scope,
			OverriddenScopes: overridden,
			EffectiveValue:   last.value,
		})
	}
	sort.Slice(overrides, func(i, j int) bool { return overrides[i].Path < overrides[j].Path })

	return EffectiveConfig{
		Settings:  result,
		Sources:   sources,
		Overrides: overrides,
	}
}

// mergeObject recursively merges source into result, tracking source
// attribution and all path contributions for override detection. Iteration
// order over source is irrelevant to the output: every key's final
// disposition is determined solely by its own value and the merge
// classification table, not by the order keys are visited.
func mergeObject(
	result map[string]any,
	source map[string]any,
	scopeName string,
	prefix string,
	sources map[string]string,
	allPaths map[string][]pathContribution,
) {
	for key, value := range source {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		if value == nil {
			delete(result, key)
			sources[path] = scopeName
			allPaths[path] = append(allPaths[path], pathContribution{scopeName, nil})
			continue
		}

		if IsDeepMergeField(path) {
			if valueObj, ok := value.(map[string]any); ok {
				if existing, ok := result[key].(map[string]any); ok {
					merged := make(map[string]any, len(existing))
					for k, v := range existing {
						merged[k] = v
					}
					mergeObject(merged, valueObj, scopeName, path, sources, allPaths)
					result[key] = merged
					continue
				}
			}
		}

		// Replace semantics: scalar, array-replace, or first-time set.
		result[key] = value
		sources[path] = scopeName
		allPaths[path] = append(allPaths[path], pathContribution{scopeName, value})
	}
}
