// Package cli provides common configuration and wiring for the git-repo CLI.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/lerenn/git-repo/configs"
	"github.com/lerenn/git-repo/pkg/config"
	"github.com/lerenn/git-repo/pkg/dependencies"
	"github.com/lerenn/git-repo/pkg/forge"
	"github.com/lerenn/git-repo/pkg/fs"
	defaulthooks "github.com/lerenn/git-repo/pkg/hooks/default"
	"github.com/lerenn/git-repo/pkg/logger"
	"github.com/lerenn/git-repo/pkg/prompt"
	"github.com/lerenn/git-repo/pkg/repository"
	"github.com/lerenn/git-repo/pkg/template"
)

var (
	// Verbose enables debug output on the console.
	Verbose bool
	// Token overrides the token stored in the config file.
	Token string
	// SettingsPath specifies a custom settings file path.
	SettingsPath string
)

// NewSettingsManager creates a settings Manager with the appropriate path.
func NewSettingsManager() config.Manager {
	if SettingsPath != "" {
		return config.NewManager(SettingsPath)
	}
	return config.NewManager(config.DefaultSettingsPath())
}

// NewAppParams contains parameters for NewApp.
type NewAppParams struct {
	In  io.Reader
	Out io.Writer
}

// App bundles the collaborators a command needs.
type App struct {
	Settings     config.Settings
	Deps         *dependencies.Dependencies
	Orchestrator repository.Orchestrator
	Out          io.Writer
}

// NewApp loads the settings and wires every dependency.
func NewApp(params NewAppParams) (*App, error) {
	settings, err := NewSettingsManager().GetSettingsWithFallback()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadSettings, err)
	}

	log, err := logger.NewLogger(logger.Options{
		Verbose: Verbose,
		LogFile: settings.LogFile,
		Console: params.Out,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildLogger, err)
	}

	fsInstance := fs.NewFS()
	templates := template.NewStore(fsInstance, settings.TemplatesDir)
	if err := templates.EnsureDefault(configs.DefaultGitignore); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInstallDefault, err)
	}

	hookManager, err := defaulthooks.NewDefaultHooksManager(log)
	if err != nil {
		return nil, err
	}

	deps := dependencies.New().
		WithFS(fsInstance).
		WithLogger(log).
		WithPrompt(prompt.NewPromptWithIO(params.In, params.Out)).
		WithSettings(settings).
		WithConfigStore(config.NewStore(fsInstance, settings.ConfigFile)).
		WithTemplates(templates).
		WithHookManager(hookManager).
		WithForgeProvider(forge.NewGitHubProvider(settings.APIURL, settings.APITimeout))

	app := &App{
		Settings: settings,
		Deps:     deps,
		Out:      params.Out,
	}
	if app.Orchestrator, err = app.NewOrchestrator(NewPromptResolver(deps.Prompt)); err != nil {
		return nil, err
	}
	return app, nil
}

// NewOrchestrator builds an orchestrator resolving name conflicts with resolver.
func (a *App) NewOrchestrator(resolver repository.NameResolver) (repository.Orchestrator, error) {
	return repository.NewOrchestrator(repository.NewOrchestratorParams{
		Dependencies: a.Deps,
		Resolver:     resolver,
	})
}

// NewPromptResolver asks the user for a new name on each conflict.
func NewPromptResolver(p prompt.Prompter) repository.NameResolver {
	return repository.ResolverFunc(func(ctx context.Context, taken string) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return p.PromptForRepositoryName(taken)
	})
}
