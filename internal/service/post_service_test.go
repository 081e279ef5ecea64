package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/post-service/internal/auth"
	"github.com/spec-kit/post-service/internal/domain"
	"github.com/spec-kit/post-service/internal/repository"
	apperrors "github.com/spec-kit/post-service/pkg/util"
)

func newTestPostService() *PostService {
	return NewPostService(repository.NewPostRepository(), auth.NewOwnershipPolicy(), nil)
}

var (
	alice = &domain.Principal{Username: "alice"}
	bob   = &domain.Principal{Username: "bob"}
)

func TestCreatePost(t *testing.T) {
	svc := newTestPostService()
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, alice, "hello")
	require.NoError(t, err)
	assert.Equal(t, "alice", post.Author)
	assert.Equal(t, "hello", post.Content)
	assert.Len(t, post.ID, 6) // 3 random bytes, hex-encoded
	assert.Empty(t, post.Likes)
	assert.Empty(t, post.Comments)
}

func TestUpdatePost_OwnerOnly(t *testing.T) {
	svc := newTestPostService()
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, alice, "hello")
	require.NoError(t, err)

	updated, err := svc.UpdatePost(ctx, alice, post.ID, "bye")
	require.NoError(t, err)
	assert.Equal(t, "bye", updated.Content)
	assert.Equal(t, "alice", updated.Author)

	_, err = svc.UpdatePost(ctx, bob, post.ID, "hijack")
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)

	_, err = svc.UpdatePost(ctx, alice, "missing", "x")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestDeletePost_OwnerOnly(t *testing.T) {
	svc := newTestPostService()
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, alice, "hello")
	require.NoError(t, err)

	err = svc.DeletePost(ctx, bob, post.ID)
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)

	require.NoError(t, svc.DeletePost(ctx, alice, post.ID))

	posts, err := svc.ListPosts(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)

	err = svc.DeletePost(ctx, alice, post.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestLikePost_AnyPrincipal(t *testing.T) {
	svc := newTestPostService()
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, alice, "hello")
	require.NoError(t, err)

	// Likes bypass the ownership policy and are idempotent.
	require.NoError(t, svc.LikePost(ctx, bob, post.ID))
	require.NoError(t, svc.LikePost(ctx, bob, post.ID))
	require.NoError(t, svc.LikePost(ctx, alice, post.ID))

	posts, err := svc.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.ElementsMatch(t, []string{"alice", "bob"}, posts[0].Likes)

	err = svc.LikePost(ctx, bob, "missing")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestCommentPost_AnyPrincipal(t *testing.T) {
	svc := newTestPostService()
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, alice, "hello")
	require.NoError(t, err)

	require.NoError(t, svc.CommentPost(ctx, bob, post.ID, "nice"))
	require.NoError(t, svc.CommentPost(ctx, bob, post.ID, "again"))

	posts, err := svc.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.Len(t, posts[0].Comments, 2)
	assert.Equal(t, "bob", posts[0].Comments[0].Username)
	assert.Equal(t, "nice", posts[0].Comments[0].Text)

	err = svc.CommentPost(ctx, bob, "missing", "x")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}
