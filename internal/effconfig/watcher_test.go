package effconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectScope_LocalFilesByName(t *testing.T) {
	assert.Equal(t, ScopeLocal, detectScope("/home/user/project/.claude/settings.local.json", nil))
	assert.Equal(t, ScopeLocal, detectScope("/home/user/project/CLAUDE.local.md", nil))
}

func TestDetectScope_ManagedByPathSubstring(t *testing.T) {
	assert.Equal(t, ScopeManaged, detectScope("/etc/claude-code/managed-settings.json", nil))
}

func TestDetectScope_ProjectWhenUnderProjectRoot(t *testing.T) {
	root := "/home/user/myproject"
	path := filepath.Join(root, ".claude", "settings.json")
	assert.Equal(t, ScopeProject, detectScope(path, &root))
}

func TestDetectScope_UserWhenNoProjectMatch(t *testing.T) {
	assert.Equal(t, ScopeUser, detectScope("/home/user/.claude.json", nil))
}

func TestWatcher_SelfWriteSuppression(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Close()

	w.MarkSelfWrite("/tmp/example/settings.json")
	assert.True(t, w.isSelfWrite("/tmp/example/settings.json"))

	time.Sleep(selfWriteSuppressWindow + 50*time.Millisecond)
	assert.False(t, w.isSelfWrite("/tmp/example/settings.json"))
}

func TestWatcher_SubscribeUnsubscribe(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Close()

	id, ch := w.Subscribe()
	require.NotEmpty(t, id)

	w.Unsubscribe(id)

	_, open := <-ch
	assert.False(t, open)
}

func TestWatcher_SetProjectRootUpdatesScope(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Close()

	root := t.TempDir()
	w.SetProjectRoot(&root)

	got := w.CurrentProjectRoot()
	require.NotNil(t, got)
	assert.Equal(t, root, *got)

	w.SetProjectRoot(nil)
	assert.Nil(t, w.CurrentProjectRoot())
}

func TestWatcher_SetProjectRootWatchesNestedDirs(t *testing.T) {
	root := t.TempDir()
	agentsDir := filepath.Join(root, ".claude", "agents")
	require.NoError(t, os.MkdirAll(agentsDir, 0o755))

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Close()

	w.SetProjectRoot(&root)

	w.mu.Lock()
	_, watched := w.watchedPaths[agentsDir]
	w.mu.Unlock()
	assert.True(t, watched, "expected recursive watch to cover %s", agentsDir)
}

func TestWatcher_NewSubdirGetsWatchedAutomatically(t *testing.T) {
	root := t.TempDir()
	claudeDir := filepath.Join(root, ".claude")
	require.NoError(t, os.MkdirAll(claudeDir, 0o755))

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Close()

	w.SetProjectRoot(&root)

	skillsDir := filepath.Join(claudeDir, "skills")
	require.NoError(t, os.Mkdir(skillsDir, 0o755))

	require.Eventually(t, func() bool {
		w.mu.Lock()
		defer w.mu.Unlock()
		_, watched := w.watchedPaths[skillsDir]
		return watched
	}, time.Second, 10*time.Millisecond)
}
