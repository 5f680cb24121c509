package git

func (g *realGit) Push(params PushParams) error {
	args := []string{"push"}
	if params.SetUpstream {
		args = append(args, "--set-upstream")
	}
	_, err := run(params.RepoPath, append(args, params.RemoteName, params.Branch)...)
	return err
}
