package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"lumiere-photography/internal/domain"
	"lumiere-photography/internal/service/auth"
)

const AdminContextKey = "admin"

func AuthRequired(authService auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(domain.Response{
				Success: false,
				Message: "Missing authorization header",
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(domain.Response{
				Success: false,
				Message: "Invalid authorization header format",
			})
		}

		claims, err := authService.ValidateAccessToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(domain.Response{
				Success: false,
				Message: "Invalid or expired token",
			})
		}

		c.Locals(AdminContextKey, &domain.AdminUser{
			ID:    claims.Subject,
			Email: claims.Email,
		})

		return c.Next()
	}
}

func GetCurrentAdmin(c *fiber.Ctx) *domain.AdminUser {
	admin, ok := c.Locals(AdminContextKey).(*domain.AdminUser)
	if !ok {
		return nil
	}
	return admin
}
