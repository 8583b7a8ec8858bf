package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"skillswap_backend/internal/auth"
	"skillswap_backend/internal/config"
	"skillswap_backend/internal/models"
	"skillswap_backend/internal/services/dto"
	"skillswap_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testConfigOnce sync.Once

func setTestConfig() {
	testConfigOnce.Do(func() {
		cfg := &config.Config{}
		cfg.JWT.Secret = "test-secret"
		cfg.JWT.TTL = 60
		config.AppConfig = cfg
	})
}

func newAuthFixture() (*fakeUserRepo, *fakeTokenRepo, AuthService) {
	setTestConfig()
	users := newFakeUserRepo()
	tokens := newFakeTokenRepo()
	return users, tokens, NewAuthService(users, tokens)
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	users, _, svc := newAuthFixture()
	ctx := context.Background()

	resp, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "correct horse",
		Name:     "Alice",
		Location: "Barcelona",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Alice", resp.User.Name)
	assert.Equal(t, string(models.UserRoleUser), resp.User.Role)

	claims, err := auth.ParseToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)

	// The password never leaves the service in a recoverable form.
	stored, err := users.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", stored.PasswordHash)

	_, err = svc.Register(ctx, &dto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "another pass",
		Name:     "Impostor",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	_, err = svc.Register(ctx, &dto.RegisterRequest{
		Email:    "short@example.com",
		Password: "short",
		Name:     "Shorty",
	})
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)

	login, err := svc.Login(ctx, &dto.LoginRequest{Email: "alice@example.com", Password: "correct horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.AccessToken)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	// An unknown email reads the same as a wrong password.
	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_BannedUserCannotLogin(t *testing.T) {
	users, _, svc := newAuthFixture()
	ctx := context.Background()

	resp, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "banned@example.com",
		Password: "long enough",
		Name:     "Banned",
	})
	require.NoError(t, err)

	_, err = users.SetBanned(ctx, resp.User.ID, true)
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "banned@example.com", Password: "long enough"})
	assert.ErrorIs(t, err, apperrors.ErrUserBanned)
}

func TestAuthService_RefreshRotatesToken(t *testing.T) {
	_, tokens, svc := newAuthFixture()
	ctx := context.Background()

	resp, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "correct horse",
		Name:     "Alice",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, &dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, resp.RefreshToken, refreshed.RefreshToken)

	// The old token was consumed.
	_, err = svc.Refresh(ctx, &dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeUnauthorized, appErr.Code)

	assert.Equal(t, 1, tokens.countForUser(resp.User.ID))
}

func TestAuthService_RefreshExpiredToken(t *testing.T) {
	users, tokens, svc := newAuthFixture()
	ctx := context.Background()

	user := &models.User{Email: "alice@example.com", Name: "Alice", Role: models.UserRoleUser}
	require.NoError(t, users.Create(ctx, user))
	require.NoError(t, tokens.Create(ctx, &models.RefreshToken{
		UserID:    user.ID,
		Token:     "stale-token",
		ExpiresAt: time.Now().Add(-time.Hour),
	}))

	_, err := svc.Refresh(ctx, &dto.RefreshRequest{RefreshToken: "stale-token"})
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeTokenExpired, appErr.Code)

	// The stale token is gone; a retry cannot tell it ever existed.
	assert.Equal(t, 0, tokens.countForUser(user.ID))
}

func TestAuthService_Logout(t *testing.T) {
	_, tokens, svc := newAuthFixture()
	ctx := context.Background()

	resp, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "correct horse",
		Name:     "Alice",
	})
	require.NoError(t, err)
	require.Equal(t, 1, tokens.countForUser(resp.User.ID))

	require.NoError(t, svc.Logout(ctx, resp.User.ID))
	assert.Equal(t, 0, tokens.countForUser(resp.User.ID))
}
