//go:build unit

package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lerenn/git-repo/pkg/config"
	"github.com/lerenn/git-repo/pkg/prompt/mocks"
	"github.com/lerenn/git-repo/pkg/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const validToken = "good-token"

// newFakeGitHub answers /user, accepting only validToken.
func newFakeGitHub(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Header.Get("Authorization") != "Bearer "+validToken {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Bad credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"login": "octocat"})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

// setupSettings points the CLI at a throwaway data directory and API.
func setupSettings(t *testing.T, apiURL string) string {
	t.Helper()
	tmpDir := t.TempDir()
	dataDir := filepath.Join(tmpDir, "data")
	settingsPath := filepath.Join(tmpDir, "settings.yaml")
	content := "data_dir: " + dataDir + "\napi_url: " + apiURL + "\n"
	require.NoError(t, os.WriteFile(settingsPath, []byte(content), 0644))

	SettingsPath, Token, Verbose = settingsPath, "", false
	t.Cleanup(func() {
		SettingsPath, Token, Verbose = "", "", false
	})
	return dataDir
}

func newTestApp(t *testing.T, out *bytes.Buffer) *App {
	t.Helper()
	app, err := NewApp(NewAppParams{In: strings.NewReader(""), Out: out})
	require.NoError(t, err)
	return app
}

func TestNewApp_WiresSettingsAndDefaultTemplate(t *testing.T) {
	dataDir := setupSettings(t, "http://127.0.0.1:1")

	app := newTestApp(t, &bytes.Buffer{})

	assert.Equal(t, dataDir, app.Settings.DataDir)
	assert.Equal(t, filepath.Join(dataDir, "git-repo.config"), app.Deps.ConfigStore.Path())
	assert.NoError(t, app.Deps.Validate())

	names, err := app.Deps.Templates.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"default"}, names)
}

func TestNewApp_InvalidSettings(t *testing.T) {
	setupSettings(t, "")
	require.NoError(t, os.WriteFile(SettingsPath, []byte("data_dir: [unclosed"), 0644))

	_, err := NewApp(NewAppParams{In: strings.NewReader(""), Out: &bytes.Buffer{}})
	assert.ErrorIs(t, err, ErrLoadSettings)
}

func TestApp_ResolveToken(t *testing.T) {
	setupSettings(t, "http://127.0.0.1:1")
	app := newTestApp(t, &bytes.Buffer{})

	token, err := app.ResolveToken()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, app.Deps.ConfigStore.Set(config.TokenKey, "stored"))
	token, err = app.ResolveToken()
	require.NoError(t, err)
	assert.Equal(t, "stored", token)

	Token = "flag"
	token, err = app.ResolveToken()
	require.NoError(t, err)
	assert.Equal(t, "flag", token)
}

func TestApp_Credential_NoTokenIsLocalOnly(t *testing.T) {
	setupSettings(t, "http://127.0.0.1:1")
	app := newTestApp(t, &bytes.Buffer{})

	credential, err := app.Credential(t.Context())
	require.NoError(t, err)
	assert.Equal(t, repository.LocalOnly{}, credential)
}

func TestApp_Credential_ValidToken(t *testing.T) {
	server := newFakeGitHub(t)
	setupSettings(t, server.URL)
	Token = validToken
	app := newTestApp(t, &bytes.Buffer{})

	credential, err := app.Credential(t.Context())
	require.NoError(t, err)
	assert.Equal(t, repository.Authenticated{Token: validToken}, credential)
}

func TestApp_Credential_InvalidTokenStops(t *testing.T) {
	server := newFakeGitHub(t)
	setupSettings(t, server.URL)
	Token = "bad-token"
	var out bytes.Buffer
	app := newTestApp(t, &out)

	credential, err := app.Credential(t.Context())
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, credential)
	assert.Contains(t, out.String(), "Token is not valid.")
}

func TestNewPromptResolver(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mocks.NewMockPrompter(ctrl)
	p.EXPECT().PromptForRepositoryName("demo").Return("demo-2", nil)

	name, err := NewPromptResolver(p).Resolve(t.Context(), "demo")
	require.NoError(t, err)
	assert.Equal(t, "demo-2", name)
}
