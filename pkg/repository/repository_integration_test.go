//go:build integration

package repository

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lerenn/git-repo/pkg/config"
	"github.com/lerenn/git-repo/pkg/dependencies"
	"github.com/lerenn/git-repo/pkg/forge"
	"github.com/lerenn/git-repo/pkg/git"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupIdentity(t *testing.T) {
	t.Helper()
	t.Setenv("GIT_AUTHOR_NAME", "Test User")
	t.Setenv("GIT_AUTHOR_EMAIL", "test@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "Test User")
	t.Setenv("GIT_COMMITTER_EMAIL", "test@example.com")
}

func gitOutput(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))
	return strings.TrimSpace(string(output))
}

func newIntegrationOrchestrator(t *testing.T, apiURL string) Orchestrator {
	t.Helper()
	deps := dependencies.New().
		WithSettings(config.Settings{
			DataDir:       t.TempDir(),
			DefaultBranch: "master",
			CommitMessage: "Initial commit",
			Private:       true,
		}).
		WithForgeProvider(forge.NewGitHubProvider(apiURL, 5*time.Second))

	orchestrator, err := NewOrchestrator(NewOrchestratorParams{Dependencies: deps})
	require.NoError(t, err)
	return orchestrator
}

func TestIntegration_CreateLocalOnly(t *testing.T) {
	setupIdentity(t)
	t.Chdir(t.TempDir())
	orchestrator := newIntegrationOrchestrator(t, "http://127.0.0.1:1")

	h, err := NewHandle(git.NewGit(), NewHandleParams{Name: "demo"})
	require.NoError(t, err)

	report, err := orchestrator.Create(t.Context(), h, CreateParams{})
	require.NoError(t, err)
	assert.Empty(t, report.Errors())

	readme, err := os.ReadFile(filepath.Join(h.Path, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "# demo\n", string(readme))

	gitignore, err := os.ReadFile(filepath.Join(h.Path, ".gitignore"))
	require.NoError(t, err)
	assert.Empty(t, gitignore)

	assert.Equal(t, "1", gitOutput(t, h.Path, "rev-list", "--count", "HEAD"))
	assert.Equal(t, "Initial commit", gitOutput(t, h.Path, "log", "-1", "--format=%s"))
	assert.Empty(t, gitOutput(t, h.Path, "remote"))
	assert.Empty(t, h.RemoteName)

	// A second handle on the same path must not clobber it.
	_, err = orchestrator.Create(t.Context(), h, CreateParams{})
	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.Equal(t, "1", gitOutput(t, h.Path, "rev-list", "--count", "HEAD"))

	_, err = orchestrator.DeleteLocal(t.Context(), h)
	require.NoError(t, err)
	assert.NoDirExists(t, h.Path)
}

// fakeGitHub serves the subset of the GitHub API used by the orchestrator.
// Created repositories are bare repositories on disk so that pushes succeed.
type fakeGitHub struct {
	t       *testing.T
	root    string
	repos   map[string]string
	deleted []string
}

func newFakeGitHub(t *testing.T, existing ...string) (*fakeGitHub, *httptest.Server) {
	f := &fakeGitHub{t: t, root: t.TempDir(), repos: map[string]string{}}
	for _, name := range existing {
		f.repos[name] = ""
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /user", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Bad credentials"}`))
			return
		}
		_, _ = w.Write([]byte(`{"login":"octocat","name":"The Octocat"}`))
	})
	mux.HandleFunc("GET /user/repos", func(w http.ResponseWriter, _ *http.Request) {
		var list []map[string]string
		for name := range f.repos {
			list = append(list, map[string]string{"name": name})
		}
		_ = json.NewEncoder(w).Encode(list)
	})
	mux.HandleFunc("POST /user/repos", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name string `json:"name"`
		}
		if !assert.NoError(f.t, json.NewDecoder(r.Body).Decode(&body)) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		bare := filepath.Join(f.root, body.Name+".git")
		if out, err := exec.Command("git", "init", "--bare", bare).CombinedOutput(); !assert.NoError(f.t, err, string(out)) {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		f.repos[body.Name] = bare
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"name":      body.Name,
			"clone_url": bare,
			"html_url":  "https://github.com/octocat/" + body.Name,
			"private":   true,
		})
	})
	mux.HandleFunc("DELETE /repos/octocat/{name}", func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		if _, ok := f.repos[name]; !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Not Found"}`))
			return
		}
		delete(f.repos, name)
		f.deleted = append(f.deleted, name)
		w.WriteHeader(http.StatusNoContent)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return f, server
}

func TestIntegration_CreateAndUpload(t *testing.T) {
	setupIdentity(t)
	t.Chdir(t.TempDir())
	fake, server := newFakeGitHub(t, "demo", "demo-1")
	orchestrator := newIntegrationOrchestrator(t, server.URL)

	h, err := NewHandle(git.NewGit(), NewHandleParams{
		Name:       "demo",
		Credential: Authenticated{Token: "good-token"},
	})
	require.NoError(t, err)

	report, err := orchestrator.Create(t.Context(), h, CreateParams{Ignore: []string{"*.log", "build/"}})
	require.NoError(t, err)
	assert.True(t, report.Has(ErrNamingConflict))
	assert.Equal(t, "demo-2", h.RemoteName)

	bare := fake.repos["demo-2"]
	require.NotEmpty(t, bare)
	assert.Equal(t, "Initial commit", gitOutput(t, bare, "log", "-1", "--format=%s", "master"))
	assert.Equal(t, "origin/master", gitOutput(t, h.Path, "rev-parse", "--abbrev-ref", "master@{upstream}"))

	// A fresh handle discovers the remote name from origin.
	reopened, err := NewHandle(git.NewGit(), NewHandleParams{
		Name:       h.Path,
		Credential: Authenticated{Token: "good-token"},
	})
	require.NoError(t, err)
	assert.Equal(t, "demo-2", reopened.RemoteName)

	report, err = orchestrator.Delete(t.Context(), reopened)
	require.NoError(t, err)
	assert.Empty(t, report.Errors())
	assert.Equal(t, []string{"demo-2"}, fake.deleted)
	assert.NoDirExists(t, h.Path)
}

func TestIntegration_CheckCredential(t *testing.T) {
	_, server := newFakeGitHub(t)
	orchestrator := newIntegrationOrchestrator(t, server.URL)

	valid, err := orchestrator.CheckCredential(t.Context(), "good-token")
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = orchestrator.CheckCredential(t.Context(), "bad-token")
	require.NoError(t, err)
	assert.False(t, valid)
}
