package service_test

import (
	"context"
	"testing"

	"github.com/lumatalk/lumatalk-backend/internal/repository/postgres"
	"github.com/lumatalk/lumatalk-backend/internal/service"
	"github.com/lumatalk/lumatalk-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, cfg)
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
				Email:    "new@example.com",
				Password: "password123",
				FullName: "New User",
			},
		},
		{
			name: "duplicate email",
			input: service.RegisterInput{
				Email:    "taken@example.com",
				Password: "password123",
				FullName: "Second User",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithEmail("taken@example.com").
					Build(t, testDB.DB)
			},
			wantErr: service.ErrEmailExists,
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
			assert.Equal(t, tt.input.Email, user.Email)
			assert.Equal(t, "free", user.SubscriptionTier)
			assert.True(t, user.Active)
			assert.Equal(t, 1000, user.TranslationQuota)
			assert.Equal(t, 0, user.TranslationsUsed)
			assert.NotEqual(t, tt.input.Password, user.PasswordHash)
			assert.NotEmpty(t, user.PasswordHash)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, cfg)
	ctx := context.Background()

	tests := []struct {
		name    string
		setup   func() (email, password string)
		wantErr error
	}{
		{
			name: "successful login",
			setup: func() (string, string) {
				user, password := testutil.NewUserBuilder().Build(t, testDB.DB)
				return user.Email, password
			},
		},
		{
			name: "unknown email",
			setup: func() (string, string) {
				return "nobody@example.com", "password123"
			},
			wantErr: service.ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			setup: func() (string, string) {
				user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
				return user.Email, "wrongpassword"
			},
			wantErr: service.ErrInvalidCredentials,
		},
		{
			name: "inactive account",
			setup: func() (string, string) {
				user, password := testutil.NewUserBuilder().Inactive().Build(t, testDB.DB)
				return user.Email, password
			},
			wantErr: service.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB.Truncate(t)

			email, password := tt.setup()

			token, err := authService.Login(ctx, service.LoginInput{
				Email:    email,
				Password: password,
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, token)

			// Login stamps the last-login timestamp
			user, err := repos.User.GetByEmail(ctx, email)
			require.NoError(t, err)
			assert.NotNil(t, user.LastLoginAt)
		})
	}
}

func TestAuthService_ValidateToken(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, cfg)
	ctx := context.Background()

	user, password := testutil.NewUserBuilder().Build(t, testDB.DB)
	token, err := authService.Login(ctx, service.LoginInput{
		Email:    user.Email,
		Password: password,
	})
	require.NoError(t, err)

	t.Run("valid token resolves user", func(t *testing.T) {
		got := authService.ValidateToken(ctx, token)
		require.NotNil(t, got)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, user.Email, got.Email)
	})

	t.Run("garbage token yields nil", func(t *testing.T) {
		assert.Nil(t, authService.ValidateToken(ctx, "not-a-token"))
	})

	t.Run("token for deleted user yields nil", func(t *testing.T) {
		testDB.Truncate(t)
		assert.Nil(t, authService.ValidateToken(ctx, token))
	})
}
