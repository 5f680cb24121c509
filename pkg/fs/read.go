package fs

import "os"

func (f *realFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (f *realFS) ReadDir(path string) ([]os.DirEntry, error) {
	return os.ReadDir(path)
}
