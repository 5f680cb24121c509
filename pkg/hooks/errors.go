package hooks

import "errors"

// Error definitions for the hooks package.
var (
	ErrNilHook       = errors.New("hook cannot be nil")
	ErrPreHookFailed = errors.New("pre-hook failed")
	ErrPostHook      = errors.New("post-hook failed")
	ErrErrorHook     = errors.New("error-hook failed")
)
