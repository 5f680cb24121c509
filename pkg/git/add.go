package git

// Add stages files, paths relative to repoPath.
func (g *realGit) Add(repoPath string, files ...string) error {
	_, err := run(repoPath, append([]string{"add", "--"}, files...)...)
	return err
}
