//go:build unit

package fs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_Exists(t *testing.T) {
	fs := NewFS()
	dir := t.TempDir()

	exists, err := fs.Exists(dir)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = fs.Exists(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFS_CreateFileWithContent(t *testing.T) {
	fs := NewFS()
	path := filepath.Join(t.TempDir(), "a", "b", "README.md")

	require.NoError(t, fs.CreateFileWithContent(path, []byte("# demo"), 0644))

	content, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# demo", string(content))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestFS_WriteFileAtomic_EmptyContent(t *testing.T) {
	fs := NewFS()
	path := filepath.Join(t.TempDir(), ".gitignore")

	require.NoError(t, fs.WriteFileAtomic(path, nil, 0644))

	content, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, content)

	entries, err := fs.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must not be left behind")
}

func TestFS_CreateFileIfNotExists(t *testing.T) {
	fs := NewFS()
	path := filepath.Join(t.TempDir(), "git-repo.config")

	require.NoError(t, fs.CreateFileIfNotExists(path, []byte("first"), 0600))
	require.NoError(t, fs.CreateFileIfNotExists(path, []byte("second"), 0600))

	content, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first", string(content))
}

func TestFS_Rename(t *testing.T) {
	fs := NewFS()
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "old")
	newPath := filepath.Join(dir, "new")
	require.NoError(t, fs.MkdirAll(oldPath, 0755))

	require.NoError(t, fs.Rename(oldPath, newPath))

	info, err := os.Stat(newPath)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	exists, err := fs.Exists(oldPath)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFS_Rename_TargetExists(t *testing.T) {
	fs := NewFS()
	dir := t.TempDir()
	require.NoError(t, fs.MkdirAll(filepath.Join(dir, "old"), 0755))
	require.NoError(t, fs.MkdirAll(filepath.Join(dir, "new"), 0755))

	err := fs.Rename(filepath.Join(dir, "old"), filepath.Join(dir, "new"))
	assert.True(t, errors.Is(err, os.ErrExist))
}

func TestFS_RemoveAll(t *testing.T) {
	fs := NewFS()
	root := filepath.Join(t.TempDir(), "repo")
	require.NoError(t, fs.CreateFileWithContent(filepath.Join(root, "nested", "file"), []byte("x"), 0644))

	require.NoError(t, fs.RemoveAll(root))

	exists, err := fs.Exists(root)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFS_ExpandPath(t *testing.T) {
	fs := NewFS()
	home := t.TempDir()
	t.Setenv("HOME", home)

	expanded, err := fs.ExpandPath("~/.git-repo")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".git-repo"), expanded)

	expanded, err = fs.ExpandPath("/abs/path")
	require.NoError(t, err)
	assert.Equal(t, "/abs/path", expanded)
}
