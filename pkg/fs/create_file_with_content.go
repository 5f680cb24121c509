package fs

import (
	"os"
	"path/filepath"
)

func (f *realFS) CreateFileWithContent(path string, content []byte, perm os.FileMode) error {
	if err := f.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return f.WriteFileAtomic(path, content, perm)
}
