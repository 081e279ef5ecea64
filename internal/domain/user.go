package domain

import "time"

// UserRecord is the domain model for registered accounts. Email is the
// unique immutable key; PasswordHash is the only field that changes after
// registration (password reset).
type UserRecord struct {
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
