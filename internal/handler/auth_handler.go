package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"lumiere-photography/internal/domain"
	"lumiere-photography/internal/middleware"
	"lumiere-photography/internal/service/auth"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input domain.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if input.Email == "" || input.Password == "" {
		return middleware.BadRequest("Email and password are required")
	}

	token, user, err := h.authService.Login(c.Context(), input)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return middleware.Unauthorized("Invalid credentials")
		}
		if errors.Is(err, auth.ErrNotConfigured) {
			return middleware.Internal("Server configuration error")
		}
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user":    user,
		"message": "Login successful",
	})
}

// Logout is advisory: tokens are stateless, so invalidation is the client
// discarding its copy. This endpoint is not a security boundary.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.JSON(domain.Response{
		Success: true,
		Message: "Logged out successfully",
	})
}

func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	admin := middleware.GetCurrentAdmin(c)
	if admin == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Token is valid",
		"user":    admin,
	})
}
