package domain

import "time"

// Principal is the authenticated identity derived from a verified session
// token. It lives for the duration of a single request.
type Principal struct {
	Username string
}

// Token represents issued session token metadata.
type Token struct {
	Username  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
