package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/localnerve/realtydash/internal/validation"
)

// Response helpers matching the nodejs service's wire format. The browser
// client only ever reads "message" and, on validation failures, "errors".

// ErrorResponse sends a standard error response matching the Node.js format
func ErrorResponse(c *fiber.Ctx, message string, status int) error {
	return c.Status(status).JSON(fiber.Map{
		"message": message,
	})
}

// ValidationErrorResponse sends a 400 with the itemized field errors
func ValidationErrorResponse(c *fiber.Ctx, message string, errs validation.Violations) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": message,
		"errors":  errs,
	})
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Message string                  `json:"message"`
	Errors  []validation.FieldError `json:"errors,omitempty"`
}
