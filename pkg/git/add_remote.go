package git

func (g *realGit) AddRemote(repoPath, remoteName, remoteURL string) error {
	_, err := run(repoPath, "remote", "add", remoteName, remoteURL)
	return err
}
