package git

// Init creates a repository in repoPath. An empty branch keeps git's own default.
func (g *realGit) Init(repoPath, branch string) error {
	args := []string{"init"}
	if branch != "" {
		args = append(args, "--initial-branch="+branch)
	}
	_, err := run(repoPath, args...)
	return err
}
