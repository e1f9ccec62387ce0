package effconfig

// ReadMemory reads the CLAUDE.md content for the given memory scope. A
// missing file is reported as (\"\", false, nil), not an error.
func ReadMemory(scope MemoryScope, projectRoot *string) (string, bool, error) {
	path, err := ResolveMemoryPath(scope, projectRoot)
	if err != nil {
		return "", false, err
	}
	return readTextFile(path)
}

// WriteMemory atomically writes content as the CLAUDE.md for the given
// memory scope.
func WriteMemory(scope MemoryScope, projectRoot *string, content string, w *Watcher) error {
	path, err := ResolveMemoryPath(scope, projectRoot)
	if err != nil {
		return err
	}

	if err := ensureParentDir(path); err != nil {
		return err
	}
	if w != nil {
		w.MarkSelfWrite(path)
	}
	return atomicWrite(path, []byte(content))
}
