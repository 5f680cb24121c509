package git

import "errors"

// Git-specific error types.
var (
	ErrNotARepository  = errors.New("not a git repository")
	ErrRemoteNotFound  = errors.New("remote not found")
	ErrNothingToCommit = errors.New("nothing to commit")
)
