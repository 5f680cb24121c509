package git

import (
	"fmt"
	"strings"
)

// GetRemoteURL returns the fetch URL of remoteName.
func (g *realGit) GetRemoteURL(repoPath, remoteName string) (string, error) {
	output, err := run(repoPath, "remote", "get-url", remoteName)
	switch {
	case err == nil:
		return strings.TrimSpace(output), nil
	case strings.Contains(output, "No such remote"):
		return "", fmt.Errorf("%w: %s", ErrRemoteNotFound, remoteName)
	case strings.Contains(output, "not a git repository"):
		return "", fmt.Errorf("%w: %s", ErrNotARepository, repoPath)
	default:
		return "", err
	}
}
