package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/post-service/internal/api/dto"
	"github.com/spec-kit/post-service/internal/auth"
	"github.com/spec-kit/post-service/internal/domain"
	"github.com/spec-kit/post-service/internal/service"
	apperrors "github.com/spec-kit/post-service/pkg/util"
)

// PostsHandler manages post endpoints.
type PostsHandler struct {
	service *service.PostService
}

// NewPostsHandler constructs handler.
func NewPostsHandler(postService *service.PostService) *PostsHandler {
	return &PostsHandler{service: postService}
}

// CreatePost POST /api/post.
func (h *PostsHandler) CreatePost(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized()
	}
	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Content) == "" {
		return apperrors.NewValidationError("content required", nil)
	}

	post, err := h.service.CreatePost(c.Context(), principal, req.Content)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": postResponse(post)})
}

// ListPosts GET /api/posts.
func (h *PostsHandler) ListPosts(c *fiber.Ctx) error {
	posts, err := h.service.ListPosts(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.PostResponse, 0, len(posts))
	for i := range posts {
		items = append(items, postResponse(&posts[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// UpdatePost PUT /api/post/:postId.
func (h *PostsHandler) UpdatePost(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized()
	}
	var req dto.UpdatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Content) == "" {
		return apperrors.NewValidationError("content required", nil)
	}

	post, err := h.service.UpdatePost(c.Context(), principal, c.Params("postId"), req.Content)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": postResponse(post)})
}

// DeletePost DELETE /api/post/:postId.
func (h *PostsHandler) DeletePost(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized()
	}
	if err := h.service.DeletePost(c.Context(), principal, c.Params("postId")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": true}})
}

// LikePost POST /api/post/:postId/like.
func (h *PostsHandler) LikePost(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized()
	}
	if err := h.service.LikePost(c.Context(), principal, c.Params("postId")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"liked": true}})
}

// CommentPost POST /api/post/:postId/comment.
func (h *PostsHandler) CommentPost(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized()
	}
	var req dto.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Comment) == "" {
		return apperrors.NewValidationError("comment required", nil)
	}

	if err := h.service.CommentPost(c.Context(), principal, c.Params("postId"), req.Comment); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"commented": true}})
}

func postResponse(post *domain.Post) dto.PostResponse {
	comments := make([]dto.CommentResponse, 0, len(post.Comments))
	for _, comment := range post.Comments {
		comments = append(comments, dto.CommentResponse{
			Username:  comment.Username,
			Comment:   comment.Text,
			CreatedAt: comment.CreatedAt,
		})
	}
	likes := post.Likes
	if likes == nil {
		likes = []string{}
	}
	return dto.PostResponse{
		ID:        post.ID,
		Author:    post.Author,
		Content:   post.Content,
		Likes:     likes,
		Comments:  comments,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}
