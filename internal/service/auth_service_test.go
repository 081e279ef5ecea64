package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/post-service/internal/config"
	"github.com/spec-kit/post-service/internal/domain"
	"github.com/spec-kit/post-service/internal/repository"
	apperrors "github.com/spec-kit/post-service/pkg/util"
)

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:         "auth-service-test-secret",
			TokenTTLHours:     1,
			BcryptCost:        bcrypt.MinCost,
			TempPasswordBytes: 4,
		},
	}
}

func newTestAuthService() (*AuthService, repository.UserRepository) {
	users := repository.NewUserRepository()
	return NewAuthService(testConfig(), users, nil), users
}

func TestRegister(t *testing.T) {
	svc, users := newTestAuthService()
	ctx := context.Background()

	user, token, _, err := svc.Register(ctx, "a@x.com", "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEmpty(t, token)

	// The stored hash is never the plaintext.
	stored, err := users.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", stored.PasswordHash)

	// The issued token verifies to the registered username.
	principal, err := svc.TokenManager().Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", principal.Username)
}

func TestRegister_DuplicateIdentifier(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, _, _, err := svc.Register(ctx, "a@x.com", "alice", "pw1")
	require.NoError(t, err)

	_, _, _, err = svc.Register(ctx, "a@x.com", "other", "pw2")
	require.Error(t, err)
	assert.Equal(t, "DUPLICATE_IDENTIFIER", apperrors.ToDomainError(err).Code)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, _, _, err := svc.Register(ctx, "a@x.com", "alice", "pw1")
	require.NoError(t, err)

	token, _, err := svc.Login(ctx, "alice", "pw1")
	require.NoError(t, err)

	principal, err := svc.TokenManager().Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", principal.Username)
}

func TestLogin_UniformFailure(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, _, _, err := svc.Register(ctx, "a@x.com", "alice", "pw1")
	require.NoError(t, err)

	// Unknown username and wrong password are indistinguishable.
	_, _, unknownErr := svc.Login(ctx, "nobody", "pw1")
	_, _, wrongErr := svc.Login(ctx, "alice", "wrong")

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.Equal(t, apperrors.ToDomainError(unknownErr).Code, apperrors.ToDomainError(wrongErr).Code)
	assert.Equal(t, apperrors.ToDomainError(unknownErr).Message, apperrors.ToDomainError(wrongErr).Message)
	assert.Equal(t, "INVALID_CREDENTIALS", apperrors.ToDomainError(wrongErr).Code)
}

func TestLogin_DuplicateUsernameFirstMatch(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, _, _, err := svc.Register(ctx, "a@x.com", "dup", "firstpw")
	require.NoError(t, err)
	_, _, _, err = svc.Register(ctx, "b@x.com", "dup", "secondpw")
	require.NoError(t, err)

	// Login resolves duplicate usernames to the earliest registration.
	_, _, err = svc.Login(ctx, "dup", "firstpw")
	assert.NoError(t, err)

	_, _, err = svc.Login(ctx, "dup", "secondpw")
	assert.Error(t, err)
}

func TestResetPassword(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, _, _, err := svc.Register(ctx, "a@x.com", "alice", "pw1")
	require.NoError(t, err)

	temp, err := svc.ResetPassword(ctx, &domain.Principal{Username: "alice"}, "a@x.com")
	require.NoError(t, err)
	assert.Len(t, temp, 8) // 4 random bytes, hex-encoded

	// Old password no longer works; the temporary one does.
	_, _, err = svc.Login(ctx, "alice", "pw1")
	assert.Error(t, err)
	_, _, err = svc.Login(ctx, "alice", temp)
	assert.NoError(t, err)
}

func TestResetPassword_Forbidden(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, _, _, err := svc.Register(ctx, "a@x.com", "alice", "pw1")
	require.NoError(t, err)
	_, _, _, err = svc.Register(ctx, "b@x.com", "bob", "pw2")
	require.NoError(t, err)

	// The email exists, but the principal does not own it.
	_, err = svc.ResetPassword(ctx, &domain.Principal{Username: "bob"}, "a@x.com")
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)
}

func TestResetPassword_NotFound(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.ResetPassword(ctx, &domain.Principal{Username: "alice"}, "missing@x.com")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}
