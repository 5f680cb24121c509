package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (f *realFS) ExpandPath(path string) (string, error) {
	rest, ok := strings.CutPrefix(path, "~")
	if !ok {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, rest), nil
}
