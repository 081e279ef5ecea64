package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/spec-kit/post-service/internal/domain"
)

// Store errors returned in place of driver-level sentinels.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// UserRepository defines access to registered accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.UserRecord) error
	GetByEmail(ctx context.Context, email string) (*domain.UserRecord, error)
	GetByUsername(ctx context.Context, username string) (*domain.UserRecord, error)
	UpdatePasswordHash(ctx context.Context, email, passwordHash string) error
}

// userRepository keeps records in process memory for the process lifetime.
// order preserves registration order so username lookups are
// first-match-deterministic even when usernames collide.
type userRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.UserRecord
	order []string
}

// NewUserRepository returns an in-memory implementation, initialized empty.
func NewUserRepository() UserRepository {
	return &userRepository{users: make(map[string]*domain.UserRecord)}
}

func (r *userRepository) Create(_ context.Context, user *domain.UserRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Email]; exists {
		return ErrDuplicate
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	stored := *user
	r.users[user.Email] = &stored
	r.order = append(r.order, user.Email)
	return nil
}

func (r *userRepository) GetByEmail(_ context.Context, email string) (*domain.UserRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[email]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *user
	return &cp, nil
}

func (r *userRepository) GetByUsername(_ context.Context, username string) (*domain.UserRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, email := range r.order {
		if user := r.users[email]; user.Username == username {
			cp := *user
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *userRepository) UpdatePasswordHash(_ context.Context, email, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[email]
	if !ok {
		return ErrNotFound
	}
	user.PasswordHash = passwordHash
	return nil
}
