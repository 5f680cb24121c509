package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/lerenn/git-repo/pkg/config"
	"github.com/lerenn/git-repo/pkg/dependencies"
	"github.com/lerenn/git-repo/pkg/forge"
	"github.com/lerenn/git-repo/pkg/hooks"
	"github.com/lerenn/git-repo/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=repository.go -destination=mocks/repository.gen.go -package=mocks

// Orchestrator sequences local and remote steps of the repository lifecycle.
// Every operation returns the report of the steps it went through; the error is
// only set for fatal failures.
type Orchestrator interface {
	// Create initializes the local repository and, when authenticated, uploads it.
	Create(ctx context.Context, h *Handle, params CreateParams) (*Report, error)
	// Delete deletes the remote repository then the local one, always attempting both.
	Delete(ctx context.Context, h *Handle) (*Report, error)
	// DeleteRemote deletes the remote repository only.
	DeleteRemote(ctx context.Context, h *Handle) (*Report, error)
	// DeleteLocal deletes the local working copy only.
	DeleteLocal(ctx context.Context, h *Handle) (*Report, error)
	// Rename renames the remote repository and the local directory independently.
	Rename(ctx context.Context, h *Handle, newName string) (*Report, error)
	// CheckCredential reports whether the remote accepts the token.
	CheckCredential(ctx context.Context, token string) (bool, error)
}

// NewOrchestratorParams contains parameters for creating a new Orchestrator instance.
type NewOrchestratorParams struct {
	Dependencies *dependencies.Dependencies
	// Resolver is asked for a new name on conflicts; defaults to SuffixResolver.
	Resolver NameResolver
}

type realOrchestrator struct {
	deps     *dependencies.Dependencies
	resolver NameResolver
}

// NewOrchestrator creates a new Orchestrator instance.
func NewOrchestrator(params NewOrchestratorParams) (Orchestrator, error) {
	deps := params.Dependencies
	if deps == nil {
		return nil, fmt.Errorf("dependencies are required")
	}
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dependencies: %w", err)
	}

	resolver := params.Resolver
	if resolver == nil {
		resolver = SuffixResolver{}
	}

	return &realOrchestrator{
		deps:     deps,
		resolver: resolver,
	}, nil
}

func (o *realOrchestrator) logger() logger.Logger {
	return o.deps.Logger
}

func (o *realOrchestrator) settings() config.Settings {
	return *o.deps.Settings
}

// executeWithHooks executes an operation with pre and post hooks.
func (o *realOrchestrator) executeWithHooks(
	operationName string, params map[string]interface{}, operation func() (*Report, error),
) (*Report, error) {
	ctx := &hooks.HookContext{
		Operation:  operationName,
		Parameters: params,
		Results:    make(map[string]interface{}),
	}

	if err := o.deps.HookManager.ExecutePreHooks(operationName, ctx); err != nil {
		return newReport(operationName), err
	}

	var report *Report
	var resultErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				resultErr = fmt.Errorf("panic in %s: %v", operationName, r)
			}
		}()
		report, resultErr = operation()
	}()
	if report == nil {
		report = newReport(operationName)
	}

	ctx.Error = resultErr
	ctx.Results["report"] = report
	if resultErr == nil {
		ctx.Results["success"] = true
	}

	var hookErr error
	if resultErr != nil {
		hookErr = o.deps.HookManager.ExecuteErrorHooks(operationName, ctx)
	} else {
		hookErr = o.deps.HookManager.ExecutePostHooks(operationName, ctx)
	}
	if hookErr != nil {
		return report, errors.Join(resultErr, hookErr)
	}
	return report, resultErr
}

// remoteSession is an authenticated connection to the forge.
type remoteSession struct {
	forge   forge.Forge
	account *forge.Account
}

// connect builds the forge client for the handle and fetches the account behind the token.
func (o *realOrchestrator) connect(ctx context.Context, h *Handle, report *Report) (*remoteSession, error) {
	token, ok := h.token()
	if !ok {
		report.fail(StepAuthenticate, ErrNoCredential)
		return nil, ErrNoCredential
	}
	return o.connectWithToken(ctx, token, report)
}

func (o *realOrchestrator) connectWithToken(ctx context.Context, token string, report *Report) (*remoteSession, error) {
	f, err := o.deps.ForgeProvider(token)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrUnexpectedRemote, err)
		report.fail(StepAuthenticate, err)
		return nil, err
	}

	account, err := f.AuthenticatedUser(ctx)
	if err != nil {
		err = remoteError(err)
		o.logger().Errorf("Cannot authenticate on %s: %v", f.Name(), err)
		report.fail(StepAuthenticate, err)
		return nil, err
	}

	o.logger().Logf("Authenticated on %s as %s", f.Name(), account.Login)
	report.info(StepAuthenticate, fmt.Sprintf("authenticated as %s", account.Login))
	return &remoteSession{forge: f, account: account}, nil
}

// remoteError maps forge errors to the repository taxonomy.
func remoteError(err error) error {
	switch {
	case errors.Is(err, forge.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	case errors.Is(err, forge.ErrRepositoryNotFound):
		return fmt.Errorf("%w: %w", ErrRemoteNotFound, err)
	default:
		return fmt.Errorf("%w: %w", ErrUnexpectedRemote, err)
	}
}

// runLocalStep logs, runs and records a local step; failures are wrapped as ErrUnexpectedLocal.
func (o *realOrchestrator) runLocalStep(report *Report, step, status, done string, fn func() error) error {
	o.logger().Infof("%s", status)
	if err := fn(); err != nil {
		err = fmt.Errorf("%w: %s: %w", ErrUnexpectedLocal, step, err)
		o.logger().Errorf("%v", err)
		report.fail(step, err)
		return err
	}
	o.logger().Infof("%s", done)
	report.info(step, done)
	return nil
}
