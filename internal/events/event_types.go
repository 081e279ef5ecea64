package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventUserLoggedIn   EventType = "user_logged_in"
	EventPasswordReset  EventType = "password_reset"
	EventPostCreated    EventType = "post_created"
	EventPostUpdated    EventType = "post_updated"
	EventPostDeleted    EventType = "post_deleted"
	EventPostLiked      EventType = "post_liked"
	EventPostCommented  EventType = "post_commented"
)

// Event represents a domain event emitted by services. Actor is the
// username that triggered the event.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     string      `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// PasswordResetPayload payload. The temporary password itself never enters
// the event stream.
type PasswordResetPayload struct {
	Email string `json:"email"`
}

// PostCreatedPayload payload.
type PostCreatedPayload struct {
	PostID         string `json:"post_id"`
	ContentPreview string `json:"content_preview"`
}

// PostChangedPayload payload for update/delete/like/comment events.
type PostChangedPayload struct {
	PostID string `json:"post_id"`
	Author string `json:"author"`
}
