package effconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMemory_MissingIsNotAnError(t *testing.T) {
	t.Setenv("CLAUDE_CONFIG_DIR", t.TempDir())

	content, ok, err := ReadMemory(MemoryUser, nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, content)
}

func TestWriteMemory_ThenReadRoundTrips(t *testing.T) {
	t.Setenv("CLAUDE_CONFIG_DIR", t.TempDir())

	require.NoError(t, WriteMemory(MemoryUser, nil, "# Notes\n", nil))

	content, ok, err := ReadMemory(MemoryUser, nil)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "# Notes\n", content)
}

func TestWriteMemory_ProjectRootVariantWritesAtRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, WriteMemory(MemoryProjectRoot, &root, "root memory\n", nil))

	content, ok, err := ReadMemory(MemoryProjectRoot, &root)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "root memory\n", content)

	// Project-scope memory (under .claude/) is a distinct file.
	_, ok, err = ReadMemory(MemoryProject, &root)
	require.NoError(t, err)
	assert.False(t, ok)
}
