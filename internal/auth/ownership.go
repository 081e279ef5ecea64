package auth

import "github.com/spec-kit/post-service/internal/domain"

// OwnershipPolicy restricts post mutation to the original author. Likes and
// comments are exempt: any authenticated principal may add them.
type OwnershipPolicy struct{}

// NewOwnershipPolicy returns the policy.
func NewOwnershipPolicy() OwnershipPolicy {
	return OwnershipPolicy{}
}

// CanMutate reports whether the principal may update or delete the post.
func (OwnershipPolicy) CanMutate(principal *domain.Principal, post *domain.Post) bool {
	if principal == nil || post == nil {
		return false
	}
	return post.Author == principal.Username
}
