package forge

import "errors"

// Forge-specific errors.
var (
	ErrUnauthorized        = errors.New("unauthorized access to forge API")
	ErrForbidden           = errors.New("access token lacks permission for this request")
	ErrRepositoryNotFound  = errors.New("repository not found on forge")
	ErrRepositoryNameTaken = errors.New("repository name already exists on forge")
	ErrRateLimited         = errors.New("rate limited by forge API")
	ErrEmptyToken          = errors.New("access token cannot be empty")
)
