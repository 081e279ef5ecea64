package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/post-service/internal/api/dto"
	"github.com/spec-kit/post-service/internal/auth"
	"github.com/spec-kit/post-service/internal/service"
	apperrors "github.com/spec-kit/post-service/pkg/util"
)

// UsersHandler exposes registration, login and password recovery.
type UsersHandler struct {
	auth *service.AuthService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService) *UsersHandler {
	return &UsersHandler{auth: authService}
}

// Register handles POST /api/user/register.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.UserRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("email, username, password required", nil)
	}

	user, token, exp, err := h.auth.Register(c.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user": dto.UserResponse{Email: user.Email, Username: user.Username},
			"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Login handles POST /api/user/login.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.UserLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("username and password required", nil)
	}

	token, exp, err := h.auth.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// ForgetPassword handles POST /api/user/forget-password. The temporary
// password is returned in-band; there is no out-of-band delivery channel.
func (h *UsersHandler) ForgetPassword(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized()
	}
	var req dto.ForgetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" {
		return apperrors.NewValidationError("email required", nil)
	}

	tempPassword, err := h.auth.ResetPassword(c.Context(), principal, req.Email)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"temp_password": tempPassword,
		},
	})
}
