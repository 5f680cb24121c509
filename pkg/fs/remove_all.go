package fs

import "os"

func (f *realFS) RemoveAll(path string) error {
	return os.RemoveAll(path)
}
