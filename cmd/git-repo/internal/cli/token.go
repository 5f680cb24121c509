package cli

import (
	"context"
	"fmt"

	"github.com/lerenn/git-repo/pkg/config"
	"github.com/lerenn/git-repo/pkg/repository"
)

// ResolveToken returns the --token flag, falling back to the stored token.
func (a *App) ResolveToken() (string, error) {
	if Token != "" {
		return Token, nil
	}

	token, _, err := a.Deps.ConfigStore.Get(config.TokenKey)
	if err != nil {
		return "", fmt.Errorf("failed to read stored token: %w", err)
	}
	return token, nil
}

// Credential checks the effective token, if any, before anything is mutated.
// Without a token the handle is local only.
func (a *App) Credential(ctx context.Context) (repository.Credential, error) {
	token, err := a.ResolveToken()
	if err != nil {
		return nil, err
	}
	if token == "" {
		return repository.LocalOnly{}, nil
	}

	if err := a.CheckToken(ctx, token); err != nil {
		return nil, err
	}
	return repository.Authenticated{Token: token}, nil
}

// CheckToken prints "Token is not valid." and fails when the remote rejects token.
func (a *App) CheckToken(ctx context.Context, token string) error {
	valid, err := a.Orchestrator.CheckCredential(ctx, token)
	if err != nil {
		return err
	}
	if !valid {
		fmt.Fprintln(a.Out, "Token is not valid.")
		return ErrInvalidToken
	}
	return nil
}
