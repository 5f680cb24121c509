package forge

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
)

const (
	// GitHubName is the name identifier for GitHub forge.
	GitHubName = "github"
	// DefaultTimeout bounds every GitHub API call.
	DefaultTimeout = 30 * time.Second
	// listPageSize is the page size used when listing repositories.
	listPageSize = 100
)

// NewGitHubParams contains parameters for NewGitHub.
type NewGitHubParams struct {
	Token string
	// BaseURL overrides the API endpoint (GitHub Enterprise or tests).
	BaseURL string
	// Timeout bounds each API call; DefaultTimeout when zero.
	Timeout time.Duration
	// HTTPClient defaults to http.DefaultClient.
	HTTPClient *http.Client
}

// GitHub represents the GitHub forge implementation.
type GitHub struct {
	client  *github.Client
	timeout time.Duration
}

// NewGitHub creates a new GitHub forge authenticated with a token.
func NewGitHub(params NewGitHubParams) (*GitHub, error) {
	if params.Token == "" {
		return nil, ErrEmptyToken
	}

	client := github.NewClient(params.HTTPClient).WithAuthToken(params.Token)

	if params.BaseURL != "" {
		baseURL, err := url.Parse(strings.TrimSuffix(params.BaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL %q: %w", params.BaseURL, err)
		}
		client.BaseURL = baseURL
	}

	timeout := params.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &GitHub{
		client:  client,
		timeout: timeout,
	}, nil
}

// NewGitHubProvider returns a Provider creating GitHub forges that share the given settings.
func NewGitHubProvider(baseURL string, timeout time.Duration) Provider {
	return func(token string) (Forge, error) {
		return NewGitHub(NewGitHubParams{
			Token:   token,
			BaseURL: baseURL,
			Timeout: timeout,
		})
	}
}

// Name returns the name of the forge.
func (g *GitHub) Name() string {
	return GitHubName
}

// AuthenticatedUser fetches the account the token belongs to.
func (g *GitHub) AuthenticatedUser(ctx context.Context) (*Account, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	user, resp, err := g.client.Users.Get(ctx, "")
	if err != nil {
		err = g.handleGitHubError(err, resp, "authenticated user")
		// A token that may not even read its own user is not usable.
		if errors.Is(err, ErrForbidden) {
			return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
		}
		return nil, err
	}

	return &Account{
		Login: user.GetLogin(),
		Name:  user.GetName(),
	}, nil
}

// ListRepositoryNames lists the names of every repository owned by the account.
func (g *GitHub) ListRepositoryNames(ctx context.Context, account *Account) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	opts := &github.RepositoryListByAuthenticatedUserOptions{
		Affiliation: "owner",
		ListOptions: github.ListOptions{PerPage: listPageSize},
	}

	var names []string
	for {
		repos, resp, err := g.client.Repositories.ListByAuthenticatedUser(ctx, opts)
		if err != nil {
			return nil, g.handleGitHubError(err, resp, "repositories of "+account.Login)
		}
		for _, repo := range repos {
			names = append(names, repo.GetName())
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return names, nil
}

// CreateRepository creates a repository under the account.
func (g *GitHub) CreateRepository(
	ctx context.Context, account *Account, name string, private bool,
) (*Repository, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	repo, resp, err := g.client.Repositories.Create(ctx, "", &github.Repository{
		Name:    github.String(name),
		Private: github.Bool(private),
	})
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnprocessableEntity {
			return nil, fmt.Errorf("%w: %s/%s", ErrRepositoryNameTaken, account.Login, name)
		}
		return nil, g.handleGitHubError(err, resp, account.Login+"/"+name)
	}

	return &Repository{
		Name:     repo.GetName(),
		Owner:    repo.GetOwner().GetLogin(),
		CloneURL: repo.GetCloneURL(),
		HTMLURL:  repo.GetHTMLURL(),
		Private:  repo.GetPrivate(),
	}, nil
}

// DeleteRepository deletes a repository of the account.
func (g *GitHub) DeleteRepository(ctx context.Context, account *Account, name string) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.Repositories.Delete(ctx, account.Login, name)
	if err != nil {
		return g.handleGitHubError(err, resp, account.Login+"/"+name)
	}
	return nil
}

// RenameRepository changes the name of a repository of the account.
func (g *GitHub) RenameRepository(ctx context.Context, account *Account, name, newName string) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	_, resp, err := g.client.Repositories.Edit(ctx, account.Login, name, &github.Repository{
		Name: github.String(newName),
	})
	if err != nil {
		return g.handleGitHubError(err, resp, account.Login+"/"+name)
	}
	return nil
}

// handleGitHubError maps API failures to forge errors. A 403 is ErrForbidden unless rate limited.
func (g *GitHub) handleGitHubError(err error, resp *github.Response, subject string) error {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return fmt.Errorf("%w: GitHub API rate limit exceeded", ErrRateLimited)
	}

	if resp != nil {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", ErrRepositoryNotFound, subject)
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: check the access token", ErrUnauthorized)
		case http.StatusForbidden:
			if resp.Header.Get("X-RateLimit-Remaining") == "0" {
				return fmt.Errorf("%w: GitHub API rate limit exceeded", ErrRateLimited)
			}
			return fmt.Errorf("%w: %s", ErrForbidden, subject)
		}
	}
	return fmt.Errorf("GitHub request for %s failed: %w", subject, err)
}
