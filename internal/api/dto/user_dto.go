package dto

import "time"

// UserRegisterRequest payload for new accounts.
type UserRegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserLoginRequest payload for login.
type UserLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ForgetPasswordRequest payload for password recovery.
type ForgetPasswordRequest struct {
	Email string `json:"email"`
}

// UserResponse is the externally visible account record. The password hash
// is deliberately absent.
type UserResponse struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
