package utils

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse sends an error JSON response with a failure flag and the API error.
// The status is taken from apiErr unless an explicit HTTP status code is provided.
// apiErr itself is never modified, so shared error values stay intact.
func ErrorResponse(c *fiber.Ctx, apiErr *APIError, code ...int) error {
	if apiErr == nil {
		apiErr = ErrInternalServer
	}

	statusCode := apiErr.Status
	if len(code) > 0 {
		statusCode = code[0]
	}
	if statusCode == 0 {
		statusCode = fiber.StatusInternalServerError
	}

	return c.Status(statusCode).JSON(fiber.Map{
		"success": false,
		"error":   apiErr,
	})
}
