// Package git drives the local git binary for repository lifecycle operations.
package git

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=git.go -destination=mocks/git.gen.go -package=mocks

// DefaultRemote is the remote name registered for the hosting service.
const DefaultRemote = "origin"

// Git is the subset of git commands a repository's lifecycle needs.
type Git interface {
	Init(repoPath, branch string) error

	// IsRepository is true only for the top of a work tree, not for a directory nested in one.
	IsRepository(repoPath string) (bool, error)

	Add(repoPath string, files ...string) error
	Commit(repoPath, message string) error

	AddRemote(repoPath, remoteName, remoteURL string) error
	GetRemoteURL(repoPath, remoteName string) (string, error)

	// Push sends Branch to RemoteName; SetUpstream makes the local branch track it.
	Push(params PushParams) error
}

// PushParams configures Push.
type PushParams struct {
	RepoPath    string
	RemoteName  string
	Branch      string
	SetUpstream bool
}

type realGit struct{}

// NewGit returns a Git running the git binary found in PATH.
func NewGit() Git {
	return &realGit{}
}
