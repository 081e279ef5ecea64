package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/post-service/internal/domain"
	apperrors "github.com/spec-kit/post-service/pkg/util"
)

const principalKey = "auth_principal"

// AuthMiddleware validates bearer tokens and attaches the principal to the
// request. Every failure mode (missing, malformed, bad signature, expired)
// maps to the same 401 so callers cannot probe token state.
type AuthMiddleware struct {
	tokens *TokenManager
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	principal, err := m.tokens.Parse(tokenFromHeader(c.Get("Authorization")))
	if err != nil {
		return apperrors.NewUnauthorized()
	}

	c.Locals(principalKey, principal)
	return c.Next()
}

// tokenFromHeader accepts both "Bearer <token>" and a bare token value.
func tokenFromHeader(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return header
}

// PrincipalFromContext retrieves the authenticated identity.
func PrincipalFromContext(c *fiber.Ctx) (*domain.Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*domain.Principal)
	return principal, ok
}
