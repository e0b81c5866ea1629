package middleware

import (
	"github.com/gofiber/fiber/v2"

	"lumiere-photography/internal/domain"
)

// ErrorHandler renders every unhandled error as the uniform response
// envelope. Internal errors are genericized so nothing leaks to clients.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(domain.Response{
		Success: false,
		Message: message,
	})
}

func BadRequest(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusBadRequest, message)
}

func Unauthorized(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusUnauthorized, message)
}

func NotFound(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusNotFound, message)
}

func Internal(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusInternalServerError, message)
}
