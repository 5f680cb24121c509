//go:build unit

package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/git-repo/pkg/forge"
	"github.com/lerenn/git-repo/pkg/git"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func expectLocalCreation(env *testEnv, path string) {
	gomock.InOrder(
		env.git.EXPECT().Init(path, "master").Return(nil),
		env.git.EXPECT().Add(path, ".").Return(nil),
		env.git.EXPECT().Commit(path, "Initial commit").Return(nil),
	)
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestCreate_LocalOnly(t *testing.T) {
	env := newTestEnv(t, nil)
	h := env.handle("demo", LocalOnly{})
	expectLocalCreation(env, h.Path)

	report, err := env.orchestrator.Create(t.Context(), h, CreateParams{})
	require.NoError(t, err)

	assert.Equal(t, "# demo\n", readFile(t, filepath.Join(h.Path, "README.md")))
	assert.Equal(t, "", readFile(t, filepath.Join(h.Path, ".gitignore")))
	assert.Empty(t, h.RemoteName)
	assert.Equal(t, 0, env.providerCalls)
	assert.Empty(t, report.Errors())
	assert.Equal(t, []string{StepInitLocal, StepReadme, StepGitignore, StepCommit}, report.StepNames())
	assert.True(t, env.log.contains("INFO", "Initializing local repository..."))
	assert.True(t, env.log.contains("INFO", "Making initial commit..."))
}

func TestCreate_AlreadyExists(t *testing.T) {
	env := newTestEnv(t, nil)
	h := env.handle("demo", Authenticated{Token: "token"})
	require.NoError(t, os.Mkdir(h.Path, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(h.Path, "keep.txt"), []byte("keep"), 0644))

	report, err := env.orchestrator.Create(t.Context(), h, CreateParams{Ignore: []string{"*.log"}})
	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.True(t, report.Has(ErrAlreadyExists))

	entries, err := os.ReadDir(h.Path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "keep.txt", entries[0].Name())
	assert.Equal(t, 0, env.providerCalls)
	assert.True(t, env.log.contains("ERROR", "already exists"))
}

func TestCreate_GitignoreFidelity(t *testing.T) {
	env := newTestEnv(t, nil)
	h := env.handle("demo", LocalOnly{})
	expectLocalCreation(env, h.Path)

	_, err := env.orchestrator.Create(t.Context(), h, CreateParams{
		Ignore: []string{"*.log", "build/"},
		Readme: []string{"# Demo", "", "A demo project."},
	})
	require.NoError(t, err)

	assert.Equal(t, "*.log\nbuild/\n", readFile(t, filepath.Join(h.Path, ".gitignore")))
	assert.Equal(t, "# Demo\n\nA demo project.\n", readFile(t, filepath.Join(h.Path, "README.md")))
}

func TestCreate_Authenticated_Ordering(t *testing.T) {
	env := newTestEnv(t, nil)
	h := env.handle("demo", Authenticated{Token: "secret"})

	gomock.InOrder(
		env.git.EXPECT().Init(h.Path, "master").Return(nil),
		env.git.EXPECT().Add(h.Path, ".").Return(nil),
		env.git.EXPECT().Commit(h.Path, "Initial commit").Return(nil),
		env.forge.EXPECT().AuthenticatedUser(gomock.Any()).Return(testAccount, nil),
		env.forge.EXPECT().ListRepositoryNames(gomock.Any(), testAccount).Return([]string{"other"}, nil),
		env.forge.EXPECT().CreateRepository(gomock.Any(), testAccount, "demo", true).Return(&forge.Repository{
			Name:     "demo",
			CloneURL: "https://github.com/octocat/demo.git",
			HTMLURL:  "https://github.com/octocat/demo",
			Private:  true,
		}, nil),
		env.git.EXPECT().AddRemote(h.Path, git.DefaultRemote, "https://github.com/octocat/demo.git").Return(nil),
		env.git.EXPECT().Push(git.PushParams{
			RepoPath:    h.Path,
			RemoteName:  git.DefaultRemote,
			Branch:      "master",
			SetUpstream: true,
		}).Return(nil),
	)

	report, err := env.orchestrator.Create(t.Context(), h, CreateParams{})
	require.NoError(t, err)

	assert.Equal(t, "demo", h.RemoteName)
	assert.Equal(t, []string{"secret"}, env.tokens)
	assert.Empty(t, report.Errors())
	assert.Equal(t, []string{
		StepInitLocal, StepReadme, StepGitignore, StepCommit,
		StepAuthenticate, StepCheckName, StepCreateRemote, StepAddRemote, StepPush,
	}, report.StepNames())
	assert.True(t, env.log.contains("INFO", `Repository "demo/demo" has been created.`))
}

func TestCreate_NamingConflict(t *testing.T) {
	var asked []string
	resolver := ResolverFunc(func(_ context.Context, taken string) (string, error) {
		asked = append(asked, taken)
		if taken == "a" {
			return "b", nil
		}
		return "c", nil
	})
	env := newTestEnv(t, resolver)
	h := env.handle("a", Authenticated{Token: "secret"})

	expectLocalCreation(env, h.Path)
	env.forge.EXPECT().AuthenticatedUser(gomock.Any()).Return(testAccount, nil)
	env.forge.EXPECT().ListRepositoryNames(gomock.Any(), testAccount).Return([]string{"a", "b"}, nil)
	env.forge.EXPECT().CreateRepository(gomock.Any(), testAccount, "c", true).
		Return(&forge.Repository{Name: "c", CloneURL: "https://github.com/octocat/c.git"}, nil)
	env.git.EXPECT().AddRemote(h.Path, git.DefaultRemote, "https://github.com/octocat/c.git").Return(nil)
	env.git.EXPECT().Push(gomock.Any()).Return(nil)

	report, err := env.orchestrator.Create(t.Context(), h, CreateParams{})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, asked)
	assert.Equal(t, "c", h.RemoteName)
	assert.Equal(t, "a", h.LocalName)

	conflicts := 0
	for _, s := range report.Steps {
		if errors.Is(s.Err, ErrNamingConflict) {
			conflicts++
		}
	}
	assert.Equal(t, 2, conflicts)
	assert.True(t, env.log.contains("ERROR", "Repository name a is not free."))
	assert.True(t, env.log.contains("ERROR", "Repository name b is not free."))
}

func TestCreate_NamingConflict_SuffixResolver(t *testing.T) {
	env := newTestEnv(t, nil)
	h := env.handle("a", Authenticated{Token: "secret"})

	expectLocalCreation(env, h.Path)
	env.forge.EXPECT().AuthenticatedUser(gomock.Any()).Return(testAccount, nil)
	env.forge.EXPECT().ListRepositoryNames(gomock.Any(), testAccount).Return([]string{"a", "b", "a-1"}, nil)
	env.forge.EXPECT().CreateRepository(gomock.Any(), testAccount, "a-2", true).
		Return(&forge.Repository{Name: "a-2", CloneURL: "git@github.com:octocat/a-2.git"}, nil)
	env.git.EXPECT().AddRemote(h.Path, git.DefaultRemote, "git@github.com:octocat/a-2.git").Return(nil)
	env.git.EXPECT().Push(gomock.Any()).Return(nil)

	_, err := env.orchestrator.Create(t.Context(), h, CreateParams{})
	require.NoError(t, err)
	assert.Equal(t, "a-2", h.RemoteName)
}

func TestCreate_NamingConflict_NormalizedAndCaseInsensitive(t *testing.T) {
	env := newTestEnv(t, nil)
	h := env.handle("My Repo", Authenticated{Token: "secret"})

	expectLocalCreation(env, h.Path)
	env.forge.EXPECT().AuthenticatedUser(gomock.Any()).Return(testAccount, nil)
	env.forge.EXPECT().ListRepositoryNames(gomock.Any(), testAccount).Return([]string{"my-repo"}, nil)
	env.forge.EXPECT().CreateRepository(gomock.Any(), testAccount, "My-Repo-1", true).
		Return(&forge.Repository{Name: "My-Repo-1", CloneURL: "git@github.com:octocat/My-Repo-1.git"}, nil)
	env.git.EXPECT().AddRemote(h.Path, git.DefaultRemote, "git@github.com:octocat/My-Repo-1.git").Return(nil)
	env.git.EXPECT().Push(gomock.Any()).Return(nil)

	report, err := env.orchestrator.Create(t.Context(), h, CreateParams{})
	require.NoError(t, err)
	assert.True(t, report.Has(ErrNamingConflict))
	assert.Equal(t, "My-Repo-1", h.RemoteName)
	assert.Equal(t, "My Repo", h.LocalName)
	assert.True(t, env.log.contains("INFO", `Repository name "My Repo" will be published as "My-Repo".`))
}

func TestCreate_ResolverFailure(t *testing.T) {
	resolverErr := errors.New("input closed")
	env := newTestEnv(t, ResolverFunc(func(context.Context, string) (string, error) {
		return "", resolverErr
	}))
	h := env.handle("a", Authenticated{Token: "secret"})

	expectLocalCreation(env, h.Path)
	env.forge.EXPECT().AuthenticatedUser(gomock.Any()).Return(testAccount, nil)
	env.forge.EXPECT().ListRepositoryNames(gomock.Any(), testAccount).Return([]string{"a"}, nil)

	report, err := env.orchestrator.Create(t.Context(), h, CreateParams{})
	assert.ErrorIs(t, err, resolverErr)
	assert.True(t, report.Has(ErrNamingConflict))
	assert.Empty(t, h.RemoteName)
}

func TestCreate_LocalFailureStopsBeforeRemote(t *testing.T) {
	env := newTestEnv(t, nil)
	h := env.handle("demo", Authenticated{Token: "secret"})
	gitErr := errors.New("git not installed")

	env.git.EXPECT().Init(h.Path, "master").Return(gitErr)

	report, err := env.orchestrator.Create(t.Context(), h, CreateParams{})
	assert.ErrorIs(t, err, ErrUnexpectedLocal)
	assert.ErrorIs(t, err, gitErr)
	assert.Equal(t, 0, env.providerCalls)
	assert.Equal(t, []string{StepInitLocal}, report.StepNames())
}

func TestCreate_CommitFailureStopsBeforeRemote(t *testing.T) {
	env := newTestEnv(t, nil)
	h := env.handle("demo", Authenticated{Token: "secret"})

	env.git.EXPECT().Init(h.Path, "master").Return(nil)
	env.git.EXPECT().Add(h.Path, ".").Return(nil)
	env.git.EXPECT().Commit(h.Path, "Initial commit").Return(git.ErrNothingToCommit)

	_, err := env.orchestrator.Create(t.Context(), h, CreateParams{})
	assert.ErrorIs(t, err, ErrUnexpectedLocal)
	assert.Equal(t, 0, env.providerCalls)

	// The local tree is not rolled back.
	assert.FileExists(t, filepath.Join(h.Path, "README.md"))
}

func TestCreate_InvalidCredential(t *testing.T) {
	env := newTestEnv(t, nil)
	h := env.handle("demo", Authenticated{Token: "bad"})

	expectLocalCreation(env, h.Path)
	env.forge.EXPECT().AuthenticatedUser(gomock.Any()).Return(nil, forge.ErrUnauthorized)

	report, err := env.orchestrator.Create(t.Context(), h, CreateParams{})
	assert.ErrorIs(t, err, ErrInvalidCredential)
	assert.True(t, report.Has(ErrInvalidCredential))
	assert.DirExists(t, h.Path)
	assert.Empty(t, h.RemoteName)
}

func TestCreate_RemoteCreationFailure(t *testing.T) {
	env := newTestEnv(t, nil)
	h := env.handle("demo", Authenticated{Token: "secret"})

	expectLocalCreation(env, h.Path)
	env.forge.EXPECT().AuthenticatedUser(gomock.Any()).Return(testAccount, nil)
	env.forge.EXPECT().ListRepositoryNames(gomock.Any(), testAccount).Return(nil, nil)
	env.forge.EXPECT().CreateRepository(gomock.Any(), testAccount, "demo", true).Return(nil, forge.ErrRateLimited)

	_, err := env.orchestrator.Create(t.Context(), h, CreateParams{})
	assert.ErrorIs(t, err, ErrUnexpectedRemote)
	assert.ErrorIs(t, err, forge.ErrRateLimited)
	assert.DirExists(t, h.Path)
	assert.Empty(t, h.RemoteName)
}

func TestCreate_PushFailure(t *testing.T) {
	env := newTestEnv(t, nil)
	h := env.handle("demo", Authenticated{Token: "secret"})

	expectLocalCreation(env, h.Path)
	env.forge.EXPECT().AuthenticatedUser(gomock.Any()).Return(testAccount, nil)
	env.forge.EXPECT().ListRepositoryNames(gomock.Any(), testAccount).Return(nil, nil)
	env.forge.EXPECT().CreateRepository(gomock.Any(), testAccount, "demo", true).
		Return(&forge.Repository{Name: "demo", CloneURL: "https://github.com/octocat/demo.git"}, nil)
	env.git.EXPECT().AddRemote(h.Path, git.DefaultRemote, gomock.Any()).Return(nil)
	env.git.EXPECT().Push(gomock.Any()).Return(errors.New("connection reset"))

	report, err := env.orchestrator.Create(t.Context(), h, CreateParams{})
	assert.ErrorIs(t, err, ErrUnexpectedRemote)
	assert.Equal(t, "demo", h.RemoteName)

	step, ok := report.Step(StepPush)
	require.True(t, ok)
	assert.Equal(t, LevelError, step.Level)
}

func TestCreate_PublicRepository(t *testing.T) {
	env := newTestEnv(t, nil)
	env.deps.Settings.Private = false
	h := env.handle("demo", Authenticated{Token: "secret"})

	expectLocalCreation(env, h.Path)
	env.forge.EXPECT().AuthenticatedUser(gomock.Any()).Return(testAccount, nil)
	env.forge.EXPECT().ListRepositoryNames(gomock.Any(), testAccount).Return(nil, nil)
	env.forge.EXPECT().CreateRepository(gomock.Any(), testAccount, "demo", false).
		Return(&forge.Repository{Name: "demo", CloneURL: "u"}, nil)
	env.git.EXPECT().AddRemote(h.Path, git.DefaultRemote, "u").Return(nil)
	env.git.EXPECT().Push(gomock.Any()).Return(nil)

	_, err := env.orchestrator.Create(t.Context(), h, CreateParams{})
	require.NoError(t, err)
}
