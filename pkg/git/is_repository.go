package git

import (
	"os"
	"path/filepath"
	"strings"
)

func (g *realGit) IsRepository(repoPath string) (bool, error) {
	if _, err := os.Stat(repoPath); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	output, err := run(repoPath, "rev-parse", "--show-toplevel")
	if err != nil {
		// outside of any work tree
		return false, nil
	}

	top, err := filepath.EvalSymlinks(strings.TrimSpace(output))
	if err != nil {
		return false, err
	}
	dir, err := filepath.EvalSymlinks(repoPath)
	if err != nil {
		return false, err
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false, err
	}
	return filepath.Clean(top) == absDir, nil
}
