package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turagency/backoffice/internal/models"
	"github.com/turagency/backoffice/internal/store"
)

func newAuthFixture(t *testing.T) (*AuthService, *store.Store) {
	storage, err := store.New(t.TempDir())
	require.NoError(t, err)
	return NewAuthService(storage), storage
}

func stringPtr(value string) *string {
	return &value
}

func TestEnsureAdminSeedsOwnerOnce(t *testing.T) {
	s, storage := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, s.EnsureAdmin(ctx, "admin", "secret"))

	users, err := storage.GetUsers()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, models.RoleOwner, users[0].Role)
	assert.NotEqual(t, "secret", users[0].Hash)

	// Second run is a no-op, existing accounts are never touched.
	require.NoError(t, s.EnsureAdmin(ctx, "another", "password"))
	users, err = storage.GetUsers()
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestLogin(t *testing.T) {
	s, _ := newAuthFixture(t)
	ctx := context.Background()
	require.NoError(t, s.EnsureAdmin(ctx, "admin", "secret"))

	testCases := []struct {
		testName      string
		creds         models.Credentials
		expectedError error
	}{
		{
			testName: "valid credentials",
			creds:    models.Credentials{Username: stringPtr("admin"), Password: stringPtr("secret")},
		},
		{
			testName:      "wrong password",
			creds:         models.Credentials{Username: stringPtr("admin"), Password: stringPtr("wrong")},
			expectedError: ErrPasswordIsIncorrect,
		},
		{
			testName:      "unknown user",
			creds:         models.Credentials{Username: stringPtr("ghost"), Password: stringPtr("secret")},
			expectedError: ErrUserIsNotExist,
		},
		{
			testName:      "missing username",
			creds:         models.Credentials{Password: stringPtr("secret")},
			expectedError: ErrValidation,
		},
		{
			testName:      "missing password",
			creds:         models.Credentials{Username: stringPtr("admin")},
			expectedError: ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			user, err := s.Login(ctx, tc.creds)
			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "admin", user.Username)
		})
	}
}

func TestGetUser(t *testing.T) {
	s, _ := newAuthFixture(t)
	ctx := context.Background()
	require.NoError(t, s.EnsureAdmin(ctx, "admin", "secret"))

	user, err := s.GetUser(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)

	_, err = s.GetUser(ctx, "ghost")
	assert.ErrorIs(t, err, ErrUserIsNotExist)
}
