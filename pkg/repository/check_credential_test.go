//go:build unit

package repository

import (
	"errors"
	"testing"

	"github.com/lerenn/git-repo/pkg/forge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCheckCredential(t *testing.T) {
	tests := []struct {
		name        string
		userErr     error
		expected    bool
		expectedErr error
	}{
		{name: "valid token", expected: true},
		{name: "rejected token", userErr: forge.ErrUnauthorized, expected: false},
		{name: "rate limited", userErr: forge.ErrRateLimited, expectedErr: ErrUnexpectedRemote},
		{name: "network failure", userErr: errors.New("dial tcp: timeout"), expectedErr: ErrUnexpectedRemote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, nil)
			if tt.userErr != nil {
				env.forge.EXPECT().AuthenticatedUser(gomock.Any()).Return(nil, tt.userErr)
			} else {
				env.forge.EXPECT().AuthenticatedUser(gomock.Any()).Return(testAccount, nil)
			}

			valid, err := env.orchestrator.CheckCredential(t.Context(), "token")
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.False(t, valid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, valid)
			assert.Equal(t, []string{"token"}, env.tokens)
		})
	}
}

func TestCheckCredential_EmptyToken(t *testing.T) {
	env := newTestEnv(t, nil)

	valid, err := env.orchestrator.CheckCredential(t.Context(), "")
	assert.ErrorIs(t, err, ErrNoCredential)
	assert.False(t, valid)
	assert.Equal(t, 0, env.providerCalls)
}

func TestCheckCredential_ProviderFailure(t *testing.T) {
	env := newTestEnv(t, nil)
	env.deps.ForgeProvider = func(string) (forge.Forge, error) {
		return nil, forge.ErrEmptyToken
	}

	_, err := env.orchestrator.CheckCredential(t.Context(), "token")
	assert.ErrorIs(t, err, ErrUnexpectedRemote)
	assert.ErrorIs(t, err, forge.ErrEmptyToken)
}
