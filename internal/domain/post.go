package domain

import "time"

// Comment is a single entry in a post's comment thread.
type Comment struct {
	Username  string
	Text      string
	CreatedAt time.Time
}

// Post is the aggregate for short text posts. Author never changes after
// creation; Content is mutable by the author only. Likes is an append-only
// set of usernames, Comments an append-only ordered sequence.
type Post struct {
	ID        string
	Author    string
	Content   string
	Likes     []string
	Comments  []Comment
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LikedBy reports whether the given username already appears in Likes.
func (p *Post) LikedBy(username string) bool {
	for _, u := range p.Likes {
		if u == username {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so read paths never alias store-owned slices.
func (p *Post) Clone() *Post {
	cp := *p
	cp.Likes = append([]string(nil), p.Likes...)
	cp.Comments = append([]Comment(nil), p.Comments...)
	return &cp
}
