package git

import (
	"fmt"
	"strings"
)

// Commit records the staged changes; an empty index gives ErrNothingToCommit.
func (g *realGit) Commit(repoPath, message string) error {
	output, err := run(repoPath, "commit", "--message", message)
	if err != nil && strings.Contains(output, "nothing to commit") {
		return fmt.Errorf("%w in %s", ErrNothingToCommit, repoPath)
	}
	return err
}
