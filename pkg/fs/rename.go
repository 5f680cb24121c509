package fs

import "os"

func (f *realFS) Rename(oldPath, newPath string) error {
	taken, err := f.Exists(newPath)
	if err != nil {
		return err
	}
	if taken {
		return &os.LinkError{Op: "rename", Old: oldPath, New: newPath, Err: os.ErrExist}
	}
	return os.Rename(oldPath, newPath)
}
