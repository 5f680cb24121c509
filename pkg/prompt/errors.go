// Package prompt provides interactive prompt functionality for git-repo.
package prompt

import "errors"

// Error definitions for prompt package.
var (
	ErrInvalidConfirmationInput = errors.New("invalid input: please enter 'y' or 'n'")
	ErrNoChoices                = errors.New("no choices available")
	ErrNoSelection              = errors.New("no selection made")
)
