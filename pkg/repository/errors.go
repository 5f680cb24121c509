// Package repository orchestrates the lifecycle of a paired local/remote repository.
package repository

import "errors"

// Error definitions for repository package.
var (
	// Precondition errors.
	ErrAlreadyExists = errors.New("local repository already exists")
	ErrNoCredential  = errors.New("no access token available for remote operation")

	// Credential errors.
	ErrInvalidCredential = errors.New("access token was rejected by the remote")

	// Missing counterpart errors, reported as non-fatal steps.
	ErrRemoteNotFound = errors.New("repository does not exist on remote")
	ErrLocalNotFound  = errors.New("repository does not exist locally")

	// Naming errors. Conflicts are reported as non-fatal steps.
	ErrNamingConflict = errors.New("repository name is already taken on remote")
	ErrEmptyName      = errors.New("repository name cannot be empty")
	ErrInvalidName    = errors.New("invalid repository name")

	// Unexpected failures.
	ErrUnexpectedRemote = errors.New("unexpected remote failure")
	ErrUnexpectedLocal  = errors.New("unexpected local failure")
)
