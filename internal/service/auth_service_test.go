package service_test

import (
	"context"
	"testing"

	"github.com/mkamath/wanderstay/internal/domain"
	"github.com/mkamath/wanderstay/internal/repository/postgres"
	"github.com/mkamath/wanderstay/internal/service"
	"github.com/mkamath/wanderstay/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	authService := service.NewAuthService(repos.User)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   service.RegisterInput
		setup   func()
		wantErr error
	}{
		{
			name: "successful registration",
			input: service.RegisterInput{
				Username: "newuser",
				Email:    "newuser@example.com",
				Password: "password123",
			},
		},
		{
			name: "duplicate username",
			input: service.RegisterInput{
				Username: "existinguser",
				Email:    "other@example.com",
				Password: "password123",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithUsername("existinguser").
					Build(t, testDB.DB)
			},
			wantErr: domain.ErrUsernameExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			user, err := authService.Register(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.input.Username, user.Username)
			assert.NotEqual(t, tt.input.Password, user.PasswordHash)
			assert.NotEmpty(t, user.PasswordHash)
		})
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	authService := service.NewAuthService(repos.User)
	ctx := context.Background()

	user, password := testutil.NewUserBuilder().
		WithUsername("authuser").
		Build(t, testDB.DB)

	t.Run("correct credentials", func(t *testing.T) {
		got, err := authService.Authenticate(ctx, "authuser", password)
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := authService.Authenticate(ctx, "authuser", "wrongpassword")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := authService.Authenticate(ctx, "nobody", password)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("wrong password and unknown username are indistinguishable", func(t *testing.T) {
		_, errWrongPassword := authService.Authenticate(ctx, "authuser", "wrongpassword")
		_, errUnknownUser := authService.Authenticate(ctx, "nobody", "wrongpassword")
		assert.Equal(t, errWrongPassword, errUnknownUser)
	})
}

func TestAuthService_SerializeDeserialize(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	authService := service.NewAuthService(repos.User)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	id := authService.Serialize(user)
	assert.Equal(t, user.ID, id)

	t.Run("round trip", func(t *testing.T) {
		got, err := authService.Deserialize(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, user.Username, got.Username)
	})

	t.Run("deleted user resolves to anonymous", func(t *testing.T) {
		require.NoError(t, repos.User.Delete(ctx, user.ID))

		got, err := authService.Deserialize(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
