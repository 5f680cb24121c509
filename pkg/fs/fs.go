// Package fs provides the filesystem operations used to lay out local repositories.
package fs

import (
	"os"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=fs.go -destination=mocks/fs.gen.go -package=mocks

// FS is the filesystem seen by the orchestrator, the template store and the config store.
type FS interface {
	// Exists reports whether path exists; only unexpected stat failures are errors.
	Exists(path string) (bool, error)

	ReadFile(path string) ([]byte, error)
	ReadDir(path string) ([]os.DirEntry, error)
	MkdirAll(path string, perm os.FileMode) error

	// WriteFileAtomic replaces filename through a temporary sibling and a rename.
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error

	// CreateFileWithContent writes path atomically after creating its parent directories.
	CreateFileWithContent(path string, content []byte, perm os.FileMode) error

	// CreateFileIfNotExists is CreateFileWithContent, skipped when filename is already there.
	CreateFileIfNotExists(filename string, initialContent []byte, perm os.FileMode) error

	RemoveAll(path string) error

	// Rename moves a repository directory; an existing newPath fails with os.ErrExist.
	Rename(oldPath, newPath string) error

	// ExpandPath resolves a leading ~ against the user's home directory.
	ExpandPath(path string) (string, error)
}

type realFS struct{}

// NewFS returns the FS backed by the os package.
func NewFS() FS {
	return &realFS{}
}
