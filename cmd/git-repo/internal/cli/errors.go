package cli

import "errors"

// Error definitions for the CLI.
var (
	ErrInvalidToken   = errors.New("token is not valid")
	ErrNoToken        = errors.New("no access token: pass --token or run `git-repo config --token <TOKEN>`")
	ErrLoadSettings   = errors.New("failed to load settings")
	ErrBuildLogger    = errors.New("failed to set up logging")
	ErrInstallDefault = errors.New("failed to install the default ignore template")
	ErrSettingsExist  = errors.New("settings file already exists: pass --force to overwrite it")
)
