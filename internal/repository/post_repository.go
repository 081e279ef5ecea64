package repository

import (
	"context"
	"sync"
	"time"

	"github.com/spec-kit/post-service/internal/domain"
)

// PostRepository defines access to the post collection.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	List(ctx context.Context) ([]domain.Post, error)
	GetByID(ctx context.Context, id string) (*domain.Post, error)
	UpdateContent(ctx context.Context, id, content string) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
	AddLike(ctx context.Context, id, username string) error
	AddComment(ctx context.Context, id string, comment domain.Comment) error
}

// postEntry pairs a post with its own mutex so concurrent like/comment/update
// operations on one post serialize without blocking the rest of the
// collection.
type postEntry struct {
	mu   sync.Mutex
	post *domain.Post
}

type postRepository struct {
	mu    sync.RWMutex
	posts map[string]*postEntry
	order []string
}

// NewPostRepository returns an in-memory implementation, initialized empty.
func NewPostRepository() PostRepository {
	return &postRepository{posts: make(map[string]*postEntry)}
}

func (r *postRepository) Create(_ context.Context, post *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.posts[post.ID]; exists {
		return ErrDuplicate
	}
	r.posts[post.ID] = &postEntry{post: post.Clone()}
	r.order = append(r.order, post.ID)
	return nil
}

// List returns posts in creation order as deep copies.
func (r *postRepository) List(_ context.Context) ([]domain.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Post, 0, len(r.order))
	for _, id := range r.order {
		entry := r.posts[id]
		entry.mu.Lock()
		result = append(result, *entry.post.Clone())
		entry.mu.Unlock()
	}
	return result, nil
}

func (r *postRepository) GetByID(_ context.Context, id string) (*domain.Post, error) {
	entry, err := r.entry(id)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.post.Clone(), nil
}

func (r *postRepository) UpdateContent(_ context.Context, id, content string) (*domain.Post, error) {
	entry, err := r.entry(id)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.post.Content = content
	entry.post.UpdatedAt = time.Now()
	return entry.post.Clone(), nil
}

// Delete is a terminal removal; there is no tombstone state.
func (r *postRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.posts[id]; !exists {
		return ErrNotFound
	}
	delete(r.posts, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// AddLike records the username at most once; repeat likes are a no-op.
func (r *postRepository) AddLike(_ context.Context, id, username string) error {
	entry, err := r.entry(id)
	if err != nil {
		return err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.post.LikedBy(username) {
		return nil
	}
	entry.post.Likes = append(entry.post.Likes, username)
	return nil
}

func (r *postRepository) AddComment(_ context.Context, id string, comment domain.Comment) error {
	entry, err := r.entry(id)
	if err != nil {
		return err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	entry.post.Comments = append(entry.post.Comments, comment)
	return nil
}

func (r *postRepository) entry(id string) (*postEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return entry, nil
}
