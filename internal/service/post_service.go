package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/post-service/internal/auth"
	"github.com/spec-kit/post-service/internal/domain"
	"github.com/spec-kit/post-service/internal/events"
	"github.com/spec-kit/post-service/internal/repository"
	apperrors "github.com/spec-kit/post-service/pkg/util"
)

const contentPreviewLen = 80

// PostService owns post lifecycle and enforces the ownership policy on
// update and delete. Like and comment skip the policy: any authenticated
// principal may add them.
type PostService struct {
	posts      repository.PostRepository
	policy     auth.OwnershipPolicy
	dispatcher events.Dispatcher
}

// NewPostService builds the service.
func NewPostService(posts repository.PostRepository, policy auth.OwnershipPolicy, dispatcher events.Dispatcher) *PostService {
	return &PostService{posts: posts, policy: policy, dispatcher: dispatcher}
}

// CreatePost stores a new post authored by the principal.
func (s *PostService) CreatePost(ctx context.Context, principal *domain.Principal, content string) (*domain.Post, error) {
	var post *domain.Post
	for attempt := 0; ; attempt++ {
		id, err := newPostID()
		if err != nil {
			return nil, err
		}
		now := time.Now()
		post = &domain.Post{
			ID:        id,
			Author:    principal.Username,
			Content:   content,
			Likes:     []string{},
			Comments:  []domain.Comment{},
			CreatedAt: now,
			UpdatedAt: now,
		}
		err = s.posts.Create(ctx, post)
		if err == nil {
			break
		}
		// Short ids can collide; retry with a fresh one.
		if !errors.Is(err, repository.ErrDuplicate) || attempt >= 4 {
			return nil, err
		}
	}

	s.publish(ctx, events.EventPostCreated, principal.Username, events.PostCreatedPayload{
		PostID:         post.ID,
		ContentPreview: preview(content),
	})
	return post, nil
}

// ListPosts returns all posts in creation order.
func (s *PostService) ListPosts(ctx context.Context) ([]domain.Post, error) {
	return s.posts.List(ctx)
}

// UpdatePost replaces the content of a post owned by the principal.
func (s *PostService) UpdatePost(ctx context.Context, principal *domain.Principal, id, content string) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, mapPostErr(err)
	}
	if !s.policy.CanMutate(principal, post) {
		return nil, apperrors.NewForbidden("you are not authorized to update this post")
	}

	updated, err := s.posts.UpdateContent(ctx, id, content)
	if err != nil {
		return nil, mapPostErr(err)
	}

	s.publish(ctx, events.EventPostUpdated, principal.Username, events.PostChangedPayload{PostID: id, Author: post.Author})
	return updated, nil
}

// DeletePost removes a post owned by the principal. Removal is terminal.
func (s *PostService) DeletePost(ctx context.Context, principal *domain.Principal, id string) error {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return mapPostErr(err)
	}
	if !s.policy.CanMutate(principal, post) {
		return apperrors.NewForbidden("you are not authorized to delete this post")
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		return mapPostErr(err)
	}

	s.publish(ctx, events.EventPostDeleted, principal.Username, events.PostChangedPayload{PostID: id, Author: post.Author})
	return nil
}

// LikePost records the principal's like; repeat likes are no-ops.
func (s *PostService) LikePost(ctx context.Context, principal *domain.Principal, id string) error {
	if err := s.posts.AddLike(ctx, id, principal.Username); err != nil {
		return mapPostErr(err)
	}
	s.publish(ctx, events.EventPostLiked, principal.Username, events.PostChangedPayload{PostID: id})
	return nil
}

// CommentPost appends a comment by the principal.
func (s *PostService) CommentPost(ctx context.Context, principal *domain.Principal, id, text string) error {
	comment := domain.Comment{
		Username:  principal.Username,
		Text:      text,
		CreatedAt: time.Now(),
	}
	if err := s.posts.AddComment(ctx, id, comment); err != nil {
		return mapPostErr(err)
	}
	s.publish(ctx, events.EventPostCommented, principal.Username, events.PostChangedPayload{PostID: id})
	return nil
}

// newPostID mirrors the wire format of post identifiers: three random bytes
// hex-encoded.
func newPostID() (string, error) {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func preview(content string) string {
	if len(content) > contentPreviewLen {
		return content[:contentPreviewLen]
	}
	return content
}

func mapPostErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NewNotFound("post")
	}
	return err
}

func (s *PostService) publish(ctx context.Context, eventType events.EventType, actor string, payload interface{}) {
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
