package config

import "errors"

// Error definitions for config package.
var (
	// Settings file errors.
	ErrSettingsNotFound   = errors.New("settings file not found")
	ErrSettingsFileParse  = errors.New("failed to parse settings file")
	ErrDataDirEmpty       = errors.New("data_dir cannot be empty")
	ErrDefaultBranchEmpty = errors.New("default_branch cannot be empty")

	// Key/value store errors.
	ErrConfigFileParse = errors.New("failed to parse config file")
	ErrKeyEmpty        = errors.New("config key cannot be empty")
	ErrInvalidKey      = errors.New("config key cannot contain '=' or line breaks")
	ErrInvalidValue    = errors.New("invalid config value")
)
