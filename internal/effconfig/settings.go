package effconfig

import "encoding/json"

// ReadSettings reads the settings.json document for scope. A missing file
// is not an error: it is reported as (nil, false, nil).
func ReadSettings(scope Scope, projectRoot *string) (map[string]any, bool, error) {
	path, err := ResolveSettingsPath(scope, projectRoot)
	if err != nil {
		return nil, false, err
	}
	return readJSONFile(path)
}

// WriteSettings atomically writes settings as the settings.json document for
// scope. Managed settings are read-only and may never be written.
func WriteSettings(scope Scope, projectRoot *string, settings map[string]any, w *Watcher) error {
	if scope == ScopeManaged {
		return ValidationFailed([]ValidationIssue{
			{Path: "", Message: "managed settings are read-only", Code: "read_only_scope"},
		})
	}

	path, err := ResolveSettingsPath(scope, projectRoot)
	if err != nil {
		return err
	}

	content, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return WriteFailed(path, "failed to encode settings: "+err.Error())
	}

	if err := ensureParentDir(path); err != nil {
		return err
	}
	if w != nil {
		w.MarkSelfWrite(path)
	}
	return atomicWrite(path, content)
}

// ReadManagedSettings reads the organization-managed settings.json, if the
// platform supports a managed settings directory.
func ReadManagedSettings() (map[string]any, bool, error) {
	return ReadSettings(ScopeManaged, nil)
}
