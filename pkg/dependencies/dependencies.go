// Package dependencies wires the collaborators of the repository orchestrator.
package dependencies

import (
	"errors"

	"github.com/lerenn/git-repo/pkg/config"
	"github.com/lerenn/git-repo/pkg/forge"
	"github.com/lerenn/git-repo/pkg/fs"
	"github.com/lerenn/git-repo/pkg/git"
	"github.com/lerenn/git-repo/pkg/hooks"
	"github.com/lerenn/git-repo/pkg/logger"
	"github.com/lerenn/git-repo/pkg/prompt"
	"github.com/lerenn/git-repo/pkg/template"
)

// Errors returned by Validate.
var (
	ErrFSMissing            = errors.New("fs dependency is required but not set")
	ErrGitMissing           = errors.New("git dependency is required but not set")
	ErrSettingsMissing      = errors.New("settings dependency is required but not set")
	ErrLoggerMissing        = errors.New("logger dependency is required but not set")
	ErrPromptMissing        = errors.New("prompt dependency is required but not set")
	ErrHookManagerMissing   = errors.New("hook manager dependency is required but not set")
	ErrForgeProviderMissing = errors.New("forge provider dependency is required but not set")
)

// Dependencies is shared by every orchestrator built from it.
type Dependencies struct {
	FS            fs.FS
	Git           git.Git
	Settings      *config.Settings
	ConfigStore   config.Store
	Templates     template.Store
	Logger        logger.Logger
	Prompt        prompt.Prompter
	HookManager   hooks.HookManagerInterface
	ForgeProvider forge.Provider
}

// New returns Dependencies with the process-wide defaults; settings, stores and the forge provider are left unset.
func New() *Dependencies {
	return &Dependencies{
		FS:          fs.NewFS(),
		Git:         git.NewGit(),
		Logger:      logger.NewNoopLogger(),
		Prompt:      prompt.NewPrompt(),
		HookManager: hooks.NewHookManager(),
	}
}

// WithFS replaces the filesystem.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithGit replaces the git instance.
func (d *Dependencies) WithGit(git git.Git) *Dependencies {
	d.Git = git
	return d
}

// WithSettings replaces the settings.
func (d *Dependencies) WithSettings(settings config.Settings) *Dependencies {
	d.Settings = &settings
	return d
}

// WithConfigStore replaces the key/value config store.
func (d *Dependencies) WithConfigStore(store config.Store) *Dependencies {
	d.ConfigStore = store
	return d
}

// WithTemplates replaces the ignore template store.
func (d *Dependencies) WithTemplates(store template.Store) *Dependencies {
	d.Templates = store
	return d
}

// WithLogger replaces the logger.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithPrompt replaces the prompt.
func (d *Dependencies) WithPrompt(prompt prompt.Prompter) *Dependencies {
	d.Prompt = prompt
	return d
}

// WithHookManager replaces the hook manager.
func (d *Dependencies) WithHookManager(hm hooks.HookManagerInterface) *Dependencies {
	d.HookManager = hm
	return d
}

// WithForgeProvider replaces the forge provider.
func (d *Dependencies) WithForgeProvider(provider forge.Provider) *Dependencies {
	d.ForgeProvider = provider
	return d
}

// Validate checks the dependencies the repository orchestrator needs.
func (d *Dependencies) Validate() error {
	switch {
	case d.FS == nil:
		return ErrFSMissing
	case d.Git == nil:
		return ErrGitMissing
	case d.Settings == nil:
		return ErrSettingsMissing
	case d.Logger == nil:
		return ErrLoggerMissing
	case d.Prompt == nil:
		return ErrPromptMissing
	case d.HookManager == nil:
		return ErrHookManagerMissing
	case d.ForgeProvider == nil:
		return ErrForgeProviderMissing
	}
	return d.Settings.Validate()
}
