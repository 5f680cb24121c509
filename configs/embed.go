// Package configs provides embedded default files for the git-repo application.
package configs

import _ "embed"

// DefaultSettingsYAML contains the default settings file content.
//
//go:embed default.yaml
var DefaultSettingsYAML []byte

// DefaultGitignore contains the rules of the "default" ignore template.
//
//go:embed default.gitignore
var DefaultGitignore []byte
