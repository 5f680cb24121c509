// Package forge provides the remote hosting service client.
package forge

import "context"

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=forge.go -destination=mocks/forge.gen.go -package=mocks

// Account identifies the authenticated owner of remote repositories.
type Account struct {
	Login string
	Name  string
}

// Repository describes a repository hosted on the forge.
type Repository struct {
	Name     string
	Owner    string
	CloneURL string
	HTMLURL  string
	Private  bool
}

// Forge interface defines the repository operations of a hosting service.
type Forge interface {
	// Name returns the name of the forge.
	Name() string

	// AuthenticatedUser fetches the account the token belongs to.
	AuthenticatedUser(ctx context.Context) (*Account, error)

	// ListRepositoryNames lists the names of every repository owned by the account.
	ListRepositoryNames(ctx context.Context, account *Account) ([]string, error)

	// CreateRepository creates a repository under the account.
	CreateRepository(ctx context.Context, account *Account, name string, private bool) (*Repository, error)

	// DeleteRepository deletes a repository of the account.
	DeleteRepository(ctx context.Context, account *Account, name string) error

	// RenameRepository changes the name of a repository of the account.
	RenameRepository(ctx context.Context, account *Account, name, newName string) error
}

// Provider builds a Forge authenticated with the given token.
type Provider func(token string) (Forge, error)
