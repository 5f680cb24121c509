//go:build e2e

// Package test holds end-to-end tests running the whole repository lifecycle
// against real git and a fake GitHub API.
package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/lerenn/git-repo/configs"
	"github.com/lerenn/git-repo/pkg/config"
	"github.com/lerenn/git-repo/pkg/dependencies"
	"github.com/lerenn/git-repo/pkg/forge"
	"github.com/lerenn/git-repo/pkg/fs"
	"github.com/lerenn/git-repo/pkg/git"
	"github.com/lerenn/git-repo/pkg/logger"
	"github.com/lerenn/git-repo/pkg/repository"
	"github.com/lerenn/git-repo/pkg/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const (
	testToken = "e2e-token"
	testLogin = "octocat"
)

// TestSetup holds the test environment setup.
type TestSetup struct {
	TempDir      string
	WorkDir      string
	SettingsPath string
	Settings     config.Settings
	GitHub       *FakeGitHub
	Deps         *dependencies.Dependencies
}

// setupTestEnvironment writes a settings file, starts the fake API and wires
// the dependencies the way the CLI does.
func setupTestEnvironment(t *testing.T, existing ...string) *TestSetup {
	t.Helper()
	t.Setenv("GIT_AUTHOR_NAME", "Test User")
	t.Setenv("GIT_AUTHOR_EMAIL", "test@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "Test User")
	t.Setenv("GIT_COMMITTER_EMAIL", "test@example.com")

	tempDir := t.TempDir()
	workDir := filepath.Join(tempDir, "work")
	require.NoError(t, os.MkdirAll(workDir, 0755))
	t.Chdir(workDir)

	gh := newFakeGitHub(t, existing...)

	settingsPath := filepath.Join(tempDir, "settings.yaml")
	settingsData, err := yaml.Marshal(map[string]interface{}{
		"data_dir":    filepath.Join(tempDir, "data"),
		"api_url":     gh.URL,
		"api_timeout": "5s",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(settingsPath, settingsData, 0644))

	settings, err := config.NewManager(settingsPath).GetSettings()
	require.NoError(t, err)

	fsInstance := fs.NewFS()
	templates := template.NewStore(fsInstance, settings.TemplatesDir)
	require.NoError(t, templates.EnsureDefault(configs.DefaultGitignore))

	deps := dependencies.New().
		WithFS(fsInstance).
		WithLogger(logger.NewNoopLogger()).
		WithSettings(settings).
		WithConfigStore(config.NewStore(fsInstance, settings.ConfigFile)).
		WithTemplates(templates).
		WithForgeProvider(forge.NewGitHubProvider(settings.APIURL, settings.APITimeout))

	return &TestSetup{
		TempDir:      tempDir,
		WorkDir:      workDir,
		SettingsPath: settingsPath,
		Settings:     settings,
		GitHub:       gh,
		Deps:         deps,
	}
}

// newOrchestrator builds a non-interactive orchestrator.
func (s *TestSetup) newOrchestrator(t *testing.T) repository.Orchestrator {
	t.Helper()
	orchestrator, err := repository.NewOrchestrator(repository.NewOrchestratorParams{
		Dependencies: s.Deps,
		Resolver:     repository.SuffixResolver{},
	})
	require.NoError(t, err)
	return orchestrator
}

// openHandle builds a handle the way each CLI invocation does.
func (s *TestSetup) openHandle(t *testing.T, name string, credential repository.Credential) *repository.Handle {
	t.Helper()
	h, err := repository.NewHandle(git.NewGit(), repository.NewHandleParams{
		Name:       name,
		Credential: credential,
	})
	require.NoError(t, err)
	return h
}

// gitOutput runs git in dir and returns its trimmed output.
func gitOutput(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))
	return strings.TrimSpace(string(output))
}

// FakeGitHub serves the repository endpoints of the GitHub API.
// Repositories are bare repositories on disk so that pushes succeed.
type FakeGitHub struct {
	URL string

	t     *testing.T
	root  string
	mu    sync.Mutex
	repos map[string]string
}

func newFakeGitHub(t *testing.T, existing ...string) *FakeGitHub {
	t.Helper()
	f := &FakeGitHub{t: t, root: t.TempDir(), repos: map[string]string{}}
	for _, name := range existing {
		f.repos[name] = ""
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /user", f.handleUser)
	mux.HandleFunc("GET /user/repos", f.handleList)
	mux.HandleFunc("POST /user/repos", f.handleCreate)
	mux.HandleFunc("PATCH /repos/"+testLogin+"/{name}", f.handleRename)
	mux.HandleFunc("DELETE /repos/"+testLogin+"/{name}", f.handleDelete)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	f.URL = server.URL
	return f
}

// Names returns the repositories currently owned by the fake account.
func (f *FakeGitHub) Names() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	names := make([]string, 0, len(f.repos))
	for name := range f.repos {
		names = append(names, name)
	}
	return names
}

// BarePath returns the on-disk remote of a created repository.
func (f *FakeGitHub) BarePath(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.repos[name]
}

func (f *FakeGitHub) handleUser(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "Bearer "+testToken {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Bad credentials"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"login": testLogin})
}

func (f *FakeGitHub) handleList(w http.ResponseWriter, _ *http.Request) {
	list := []map[string]string{}
	for _, name := range f.Names() {
		list = append(list, map[string]string{"name": name})
	}
	writeJSON(w, http.StatusOK, list)
}

func (f *FakeGitHub) handleCreate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name    string `json:"name"`
		Private bool   `json:"private"`
	}
	if !assert.NoError(f.t, json.NewDecoder(r.Body).Decode(&body)) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	assert.True(f.t, body.Private, "repositories are created private")

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, taken := f.repos[body.Name]; taken {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"message": "name already exists on this account"})
		return
	}

	bare := filepath.Join(f.root, body.Name+".git")
	if out, err := exec.Command("git", "init", "--bare", bare).CombinedOutput(); !assert.NoError(f.t, err, string(out)) {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	f.repos[body.Name] = bare
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"name":      body.Name,
		"clone_url": bare,
		"private":   true,
	})
}

func (f *FakeGitHub) handleRename(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if !assert.NoError(f.t, json.NewDecoder(r.Body).Decode(&body)) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	name := r.PathValue("name")
	bare, ok := f.repos[name]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
		return
	}
	delete(f.repos, name)
	f.repos[body.Name] = bare
	writeJSON(w, http.StatusOK, map[string]interface{}{"name": body.Name, "clone_url": bare})
}

func (f *FakeGitHub) handleDelete(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := r.PathValue("name")
	if _, ok := f.repos[name]; !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
		return
	}
	delete(f.repos, name)
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
