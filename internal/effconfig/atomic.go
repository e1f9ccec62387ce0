package effconfig

import (
	"os"
	"path/filepath"

	"github.com/hyperblaze/ssenrah/internal/backendlog"
)

// atomicWrite writes content to path by first writing a sibling temp file
// and then renaming it into place, so the destination either contains the
// full content or is left untouched. The temp file is removed on any
// failure. Parent directories must already exist; callers ensure this.
func atomicWrite(path string, content []byte) error {
	tmpPath := path + ".ssenrah-tmp"

	if err := os.WriteFile(tmpPath, content, 0o644); err != nil {
		os.Remove(tmpPath)
		return WriteFailed(path, "failed to write temp file: "+err.Error())
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return WriteFailed(path, "failed to rename temp file: "+err.Error())
	}

	backendlog.BytesWritten("atomic", path, len(content))
	return nil
}

// ensureParentDir creates the parent directory of path, if it does not
// already exist.
func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return WriteFailed(path, "failed to create parent directory: "+err.Error())
	}
	return nil
}
