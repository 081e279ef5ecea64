package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/post-service/internal/auth"
	"github.com/spec-kit/post-service/internal/config"
	"github.com/spec-kit/post-service/internal/domain"
	"github.com/spec-kit/post-service/internal/events"
	"github.com/spec-kit/post-service/internal/repository"
	apperrors "github.com/spec-kit/post-service/pkg/util"
)

// AuthService coordinates registration, login and password recovery.
type AuthService struct {
	users             repository.UserRepository
	tokenMgr          *auth.TokenManager
	dispatcher        events.Dispatcher
	bcryptCost        int
	tempPasswordBytes int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository, dispatcher events.Dispatcher) *AuthService {
	tempBytes := cfg.Auth.TempPasswordBytes
	if tempBytes <= 0 {
		tempBytes = 4
	}
	return &AuthService{
		users:             users,
		tokenMgr:          auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLHours),
		dispatcher:        dispatcher,
		bcryptCost:        cfg.Auth.BcryptCost,
		tempPasswordBytes: tempBytes,
	}
}

// Register creates a new account keyed by email and issues a session token.
// Email matching is case-sensitive exact match. Username uniqueness is not
// enforced; login resolves duplicates by registration order.
func (s *AuthService) Register(ctx context.Context, email, username, password string) (*domain.UserRecord, string, time.Time, error) {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user := &domain.UserRecord{
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", time.Time{}, apperrors.NewDuplicateIdentifier()
		}
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.Generate(username)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.publish(ctx, events.EventUserRegistered, username, events.UserRegisteredPayload{Email: email, Username: username})
	return user, token, exp, nil
}

// Login authenticates by username and issues a session token. Unknown
// username and wrong password fail identically.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", time.Time{}, apperrors.NewInvalidCredentials()
		}
		return "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return "", time.Time{}, apperrors.NewInvalidCredentials()
	}

	token, exp, err := s.tokenMgr.Generate(username)
	if err != nil {
		return "", time.Time{}, err
	}

	s.publish(ctx, events.EventUserLoggedIn, username, nil)
	return token, exp, nil
}

// ResetPassword replaces the account's password with a fresh temporary one
// and returns the plaintext exactly once. Only the account owner, matched by
// the authenticated principal rather than anything supplied in the request,
// may reset it.
func (s *AuthService) ResetPassword(ctx context.Context, principal *domain.Principal, email string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", apperrors.NewNotFound("email")
		}
		return "", err
	}
	if user.Username != principal.Username {
		return "", apperrors.NewForbidden("you are not authorized to reset the password of this account")
	}

	tempPassword, err := s.generateTempPassword()
	if err != nil {
		return "", err
	}
	hash, err := auth.HashPassword(tempPassword, s.bcryptCost)
	if err != nil {
		return "", err
	}
	if err := s.users.UpdatePasswordHash(ctx, email, hash); err != nil {
		return "", err
	}

	s.publish(ctx, events.EventPasswordReset, principal.Username, events.PasswordResetPayload{Email: email})
	return tempPassword, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) generateTempPassword() (string, error) {
	buf := make([]byte, s.tempPasswordBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, actor string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Actor:     actor,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
