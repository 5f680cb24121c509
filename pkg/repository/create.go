package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lerenn/git-repo/pkg/git"
	"github.com/lerenn/git-repo/pkg/reponame"
	"github.com/lerenn/git-repo/pkg/repository/consts"
)

const (
	readmeFile    = "README.md"
	gitignoreFile = ".gitignore"
)

// CreateParams contains parameters for Create.
type CreateParams struct {
	// Ignore holds the .gitignore rules, one per line, in order.
	Ignore []string
	// Readme holds the README.md lines; defaults to "# <LocalName>".
	Readme []string
}

// Create initializes the local repository and, when authenticated, uploads it.
func (o *realOrchestrator) Create(ctx context.Context, h *Handle, params CreateParams) (*Report, error) {
	return o.executeWithHooks(consts.Create, map[string]interface{}{
		"path":       h.Path,
		"local_name": h.LocalName,
		"ignore":     params.Ignore,
	}, func() (*Report, error) {
		return o.create(ctx, h, params)
	})
}

func (o *realOrchestrator) create(ctx context.Context, h *Handle, params CreateParams) (*Report, error) {
	report := newReport(consts.Create)

	exists, err := o.deps.FS.Exists(h.Path)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrUnexpectedLocal, err)
		report.fail(StepCheckPath, err)
		return report, err
	}
	if exists {
		err := fmt.Errorf("%w: %s", ErrAlreadyExists, h.Path)
		o.logger().Errorf("Local repository with name %s already exists.", h.Path)
		report.fail(StepCheckPath, err)
		return report, err
	}

	if err := o.createLocal(h, params, report); err != nil {
		return report, err
	}

	token, ok := h.token()
	if !ok {
		o.logger().Infof("Repository %q has been created locally.", h.LocalName)
		return report, nil
	}

	if err := o.upload(ctx, h, token, report); err != nil {
		return report, err
	}

	o.logger().Infof("Repository \"%s/%s\" has been created.", h.LocalName, h.RemoteName)
	return report, nil
}

// createLocal lays out the working copy and makes the initial commit.
func (o *realOrchestrator) createLocal(h *Handle, params CreateParams, report *Report) error {
	settings := o.settings()

	if err := o.runLocalStep(report, StepInitLocal,
		"Initializing local repository...", "Local repository initialized.", func() error {
			if err := o.deps.FS.MkdirAll(h.Path, 0755); err != nil {
				return err
			}
			return o.deps.Git.Init(h.Path, settings.DefaultBranch)
		}); err != nil {
		return err
	}

	readme := params.Readme
	if readme == nil {
		readme = []string{"# " + h.LocalName}
	}
	if err := o.runLocalStep(report, StepReadme, "Creating README...", "README created.", func() error {
		return o.deps.FS.CreateFileWithContent(filepath.Join(h.Path, readmeFile), joinLines(readme), 0644)
	}); err != nil {
		return err
	}

	if err := o.runLocalStep(report, StepGitignore, "Creating .gitignore...", ".gitignore created.", func() error {
		return o.deps.FS.CreateFileWithContent(filepath.Join(h.Path, gitignoreFile), joinLines(params.Ignore), 0644)
	}); err != nil {
		return err
	}

	return o.runLocalStep(report, StepCommit, "Making initial commit...", "Initial commit done.", func() error {
		if err := o.deps.Git.Add(h.Path, "."); err != nil {
			return err
		}
		return o.deps.Git.Commit(h.Path, settings.CommitMessage)
	})
}

// upload creates the remote repository under a free name and pushes the initial commit.
func (o *realOrchestrator) upload(ctx context.Context, h *Handle, token string, report *Report) error {
	settings := o.settings()

	session, err := o.connectWithToken(ctx, token, report)
	if err != nil {
		return err
	}

	o.logger().Infof("Checking the name...")
	name, err := o.freeName(ctx, session, h.remoteIdentity(), report)
	if err != nil {
		return err
	}

	o.logger().Infof("Creating the new repository on remote...")
	remote, err := session.forge.CreateRepository(ctx, session.account, name, settings.Private)
	if err != nil {
		err = remoteError(err)
		o.logger().Errorf("Cannot create repository %s on remote: %v", name, err)
		report.fail(StepCreateRemote, err)
		return err
	}
	h.RemoteName = name
	report.info(StepCreateRemote, fmt.Sprintf("created %s", remote.HTMLURL))
	o.logger().Infof("Remote repository %s created.", name)

	if err := o.runLocalStep(report, StepAddRemote,
		"Pushing the repository to remote...", "Remote origin added.", func() error {
			return o.deps.Git.AddRemote(h.Path, git.DefaultRemote, remote.CloneURL)
		}); err != nil {
		return err
	}

	o.logger().Infof("Setting up upstream to remote %s...", settings.DefaultBranch)
	if err := o.deps.Git.Push(git.PushParams{
		RepoPath:    h.Path,
		RemoteName:  git.DefaultRemote,
		Branch:      settings.DefaultBranch,
		SetUpstream: true,
	}); err != nil {
		err = fmt.Errorf("%w: %s: %w", ErrUnexpectedRemote, StepPush, err)
		o.logger().Errorf("%v", err)
		report.fail(StepPush, err)
		return err
	}
	o.logger().Infof("Upstream set to %s/%s.", git.DefaultRemote, settings.DefaultBranch)
	report.info(StepPush, fmt.Sprintf("pushed %s", settings.DefaultBranch))
	return nil
}

// freeName asks the resolver for new names until one is not used by the account.
func (o *realOrchestrator) freeName(
	ctx context.Context, session *remoteSession, candidate string, report *Report,
) (string, error) {
	names, err := session.forge.ListRepositoryNames(ctx, session.account)
	if err != nil {
		err = remoteError(err)
		o.logger().Errorf("Cannot list remote repositories: %v", err)
		report.fail(StepCheckName, err)
		return "", err
	}

	taken := make(map[string]struct{}, len(names))
	for _, n := range names {
		taken[strings.ToLower(n)] = struct{}{}
	}

	for {
		if candidate, err = o.publishedName(candidate); err != nil {
			report.fail(StepCheckName, err)
			return "", err
		}
		if _, ok := taken[strings.ToLower(candidate)]; !ok {
			break
		}

		o.logger().Errorf("Repository name %s is not free.", candidate)
		report.fail(StepCheckName, fmt.Errorf("%w: %s", ErrNamingConflict, candidate))

		next, err := o.resolver.Resolve(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to choose a new repository name: %w", err)
		}
		next = strings.TrimSpace(next)
		if next == "" {
			return "", ErrEmptyName
		}
		candidate = next
	}

	report.info(StepCheckName, fmt.Sprintf("%s is free", candidate))
	return candidate, nil
}

// publishedName returns the name GitHub will store for candidate.
func (o *realOrchestrator) publishedName(candidate string) (string, error) {
	name, err := reponame.Sanitize(candidate)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrInvalidName, candidate, err)
	}
	if name != candidate {
		o.logger().Infof("Repository name %q will be published as %q.", candidate, name)
	}
	return name, nil
}

func joinLines(lines []string) []byte {
	if len(lines) == 0 {
		return []byte{}
	}
	return []byte(strings.Join(lines, "\n") + "\n")
}

