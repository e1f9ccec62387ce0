package effconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkills_ListEmptyDirectoryIsNotAnError(t *testing.T) {
	t.Setenv("CLAUDE_CONFIG_DIR", t.TempDir())

	skills, err := ListSkills("user", nil)
	require.NoError(t, err)
	assert.Empty(t, skills)
}

func TestSkills_StandaloneFileForm(t *testing.T) {
	t.Setenv("CLAUDE_CONFIG_DIR", t.TempDir())

	content := ResourceContent{
		Frontmatter: map[string]any{"name": "commit-helper", "description": "Writes commit messages"},
		Body:        "Use conventional commits.\n",
	}
	require.NoError(t, WriteSkill("user", nil, "commit-helper", content, nil))

	got, err := ReadSkill("user", nil, "commit-helper")
	require.NoError(t, err)
	assert.Equal(t, "commit-helper", got.Frontmatter["name"])

	list, err := ListSkills("user", nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "commit-helper", list[0].Name)
}

func TestSkills_DirectoryForm(t *testing.T) {
	configDir := t.TempDir()
	t.Setenv("CLAUDE_CONFIG_DIR", configDir)

	skillDir := filepath.Join(configDir, "commands", "pdf-tools")
	require.NoError(t, os.MkdirAll(skillDir, 0o755))
	skillMD := "---\nname: pdf-tools\ndescription: Extracts text from PDFs\n---\nUse pdftotext.\n"
	require.NoError(t, os.WriteFile(filepath.Join(skillDir, "SKILL.md"), []byte(skillMD), 0o644))

	got, err := ReadSkill("user", nil, "pdf-tools")
	require.NoError(t, err)
	assert.Equal(t, "pdf-tools", got.Frontmatter["name"])

	list, err := ListSkills("user", nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "pdf-tools", list[0].Name)
}

func TestSkills_DirectoryFormAuxiliaryFileRoundTrip(t *testing.T) {
	configDir := t.TempDir()
	t.Setenv("CLAUDE_CONFIG_DIR", configDir)

	skillDir := filepath.Join(configDir, "commands", "pdf-tools")
	require.NoError(t, os.MkdirAll(skillDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(skillDir, "SKILL.md"), []byte("---\nname: pdf-tools\n---\nbody\n"), 0o644))

	require.NoError(t, WriteSkillFile("user", nil, "pdf-tools", "scripts/extract.sh", "#!/bin/sh\npdftotext \"$1\"\n", nil))

	got, err := ReadSkillFile("user", nil, "pdf-tools", "scripts/extract.sh")
	require.NoError(t, err)
	assert.Contains(t, got, "pdftotext")
}

func TestSkills_DeleteDirectoryFormRemovesWholeDirectory(t *testing.T) {
	configDir := t.TempDir()
	t.Setenv("CLAUDE_CONFIG_DIR", configDir)

	skillDir := filepath.Join(configDir, "commands", "pdf-tools")
	require.NoError(t, os.MkdirAll(skillDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(skillDir, "SKILL.md"), []byte("---\nname: pdf-tools\n---\nbody\n"), 0o644))

	require.NoError(t, DeleteSkill("user", nil, "pdf-tools", nil))

	_, err := os.Stat(skillDir)
	assert.True(t, os.IsNotExist(err))
}

func TestSkills_ReadMissingReturnsNotFound(t *testing.T) {
	t.Setenv("CLAUDE_CONFIG_DIR", t.TempDir())

	_, err := ReadSkill("user", nil, "ghost")
	require.Error(t, err)

	engineErr, ok := AsEngineError(err)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, engineErr.Kind())
}
