package effconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectState_NoProjectOpenByDefault(t *testing.T) {
	p := NewProjectState()
	info := p.GetProjectInfo()
	assert.Nil(t, info.ProjectRoot)
}

func TestProjectState_OpenProject(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".claude"), 0o755))

	p := NewProjectState()
	info, err := p.OpenProject(dir)
	require.NoError(t, err)
	require.NotNil(t, info.ProjectRoot)
	assert.True(t, info.ClaudeDirExists)
}

func TestProjectState_OpenProjectMissingPath(t *testing.T) {
	p := NewProjectState()
	_, err := p.OpenProject(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)

	engineErr, ok := AsEngineError(err)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, engineErr.Kind())
}

func TestProjectState_OpenProjectRejectsFile(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "not-a-dir.txt")
	require.NoError(t, os.WriteFile(filePath, []byte("x"), 0o644))

	p := NewProjectState()
	_, err := p.OpenProject(filePath)
	require.Error(t, err)

	engineErr, ok := AsEngineError(err)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, engineErr.Kind())
}

func TestProjectState_FindsGitRootFromNestedDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))
	nested := filepath.Join(root, "src", "pkg")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	p := NewProjectState()
	info, err := p.OpenProject(nested)
	require.NoError(t, err)
	require.NotNil(t, info.GitRoot)
	assert.Equal(t, root, *info.GitRoot)
}

func TestProjectState_NoGitRootFound(t *testing.T) {
	dir := t.TempDir()

	p := NewProjectState()
	info, err := p.OpenProject(dir)
	require.NoError(t, err)
	assert.Nil(t, info.GitRoot)
}

func TestProjectState_CloseProject(t *testing.T) {
	dir := t.TempDir()
	p := NewProjectState()
	_, err := p.OpenProject(dir)
	require.NoError(t, err)

	p.CloseProject()
	info := p.GetProjectInfo()
	assert.Nil(t, info.ProjectRoot)
}

func TestEnsureClaudeDir_CreatesWhenMissing(t *testing.T) {
	dir := t.TempDir()

	claudeDir, err := EnsureClaudeDir(&dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".claude"), claudeDir)

	info, err := os.Stat(claudeDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureClaudeDir_IdempotentWhenPresent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".claude"), 0o755))

	claudeDir, err := EnsureClaudeDir(&dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".claude"), claudeDir)
}

func TestEnsureClaudeDir_RequiresProject(t *testing.T) {
	_, err := EnsureClaudeDir(nil)
	require.Error(t, err)

	engineErr, ok := AsEngineError(err)
	require.True(t, ok)
	assert.Equal(t, KindNoProject, engineErr.Kind())
}
