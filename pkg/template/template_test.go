//go:build unit

package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/git-repo/pkg/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_EnsureDefaultAndRead(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "gitignore")
	store := NewStore(fs.NewFS(), dir)

	require.NoError(t, store.EnsureDefault([]byte("*.log\nbuild/\n")))

	rules, err := store.Read(DefaultName)
	require.NoError(t, err)
	assert.Equal(t, []string{"*.log", "build/"}, rules)

	// An existing default is left untouched.
	require.NoError(t, store.EnsureDefault([]byte("other\n")))
	rules, err = store.Read(DefaultName)
	require.NoError(t, err)
	assert.Equal(t, []string{"*.log", "build/"}, rules)
}

func TestStore_ReadKeepsLineOrder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.gitignore"), []byte("# Go\r\n*.exe\r\n\r\nvendor/"), 0644))

	rules, err := NewStore(fs.NewFS(), dir).Read("go")
	require.NoError(t, err)
	assert.Equal(t, []string{"# Go", "*.exe", "", "vendor/"}, rules)
}

func TestStore_ReadEmptyTemplate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.gitignore"), nil, 0644))

	rules, err := NewStore(fs.NewFS(), dir).Read("empty")
	require.NoError(t, err)
	assert.Empty(t, rules)
}

func TestStore_ReadNotFound(t *testing.T) {
	_, err := NewStore(fs.NewFS(), t.TempDir()).Read("python")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestStore_ReadInvalidName(t *testing.T) {
	_, err := NewStore(fs.NewFS(), t.TempDir()).Read("../secret")
	assert.ErrorIs(t, err, ErrInvalidTemplateName)
}

func TestStore_Save(t *testing.T) {
	srcDir := t.TempDir()
	src := filepath.Join(srcDir, "python.gitignore")
	require.NoError(t, os.WriteFile(src, []byte("__pycache__/\n*.pyc\n"), 0644))

	dir := filepath.Join(t.TempDir(), "gitignore")
	store := NewStore(fs.NewFS(), dir)

	name, err := store.Save(src)
	require.NoError(t, err)
	assert.Equal(t, "python", name)

	rules, err := store.Read("python")
	require.NoError(t, err)
	assert.Equal(t, []string{"__pycache__/", "*.pyc"}, rules)
}

func TestStore_SaveInvalidExtension(t *testing.T) {
	src := filepath.Join(t.TempDir(), "python.txt")
	require.NoError(t, os.WriteFile(src, []byte("*.pyc\n"), 0644))

	dir := filepath.Join(t.TempDir(), "gitignore")
	_, err := NewStore(fs.NewFS(), dir).Save(src)
	assert.ErrorIs(t, err, ErrInvalidExtension)

	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr), "nothing is written on rejection")
}

func TestStore_SaveMissingSource(t *testing.T) {
	_, err := NewStore(fs.NewFS(), t.TempDir()).Save(filepath.Join(t.TempDir(), "missing.gitignore"))
	assert.ErrorIs(t, err, ErrSourceNotFound)
}

func TestStore_List(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rust.gitignore"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.gitignore"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.gitignore"), 0755))

	names, err := NewStore(fs.NewFS(), dir).List()
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "rust"}, names)
}

func TestStore_ListMissingDir(t *testing.T) {
	names, err := NewStore(fs.NewFS(), filepath.Join(t.TempDir(), "none")).List()
	require.NoError(t, err)
	assert.Empty(t, names)
}
