package fs

import "os"

func (f *realFS) CreateFileIfNotExists(filename string, initialContent []byte, perm os.FileMode) error {
	if exists, err := f.Exists(filename); err != nil || exists {
		return err
	}
	return f.CreateFileWithContent(filename, initialContent, perm)
}
