package dto

import "time"

// CreatePostRequest payload.
type CreatePostRequest struct {
	Content string `json:"content"`
}

// UpdatePostRequest payload.
type UpdatePostRequest struct {
	Content string `json:"content"`
}

// CommentRequest payload.
type CommentRequest struct {
	Comment string `json:"comment"`
}

// CommentResponse represents a comment in a thread.
type CommentResponse struct {
	Username  string    `json:"username"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// PostResponse represents a post.
type PostResponse struct {
	ID        string            `json:"id"`
	Author    string            `json:"author"`
	Content   string            `json:"content"`
	Likes     []string          `json:"likes"`
	Comments  []CommentResponse `json:"comments"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
