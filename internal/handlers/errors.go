package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/localnerve/realtydash/internal/types"
)

// ErrorHandler is the global Fiber error handler. Handlers surface failures
// as *types.CustomError; anything else falls through as a generic 500. Every
// failure keeps the {message} body shape the browser client expects.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	// Check if it's a Fiber error
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	// Check for typed handler errors
	var customErr *types.CustomError
	if errors.As(err, &customErr) {
		code = customErr.Code
		message = customErr.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"message": message,
	})
}

// notFound builds the typed 404 for a missing entity
func notFound(message, errorType string) *types.CustomError {
	return &types.CustomError{
		Code:    fiber.StatusNotFound,
		Message: message,
		Type:    errorType,
	}
}

// internalError builds the typed 500 for an unexpected handler failure
func internalError(message, errorType string) *types.CustomError {
	return &types.CustomError{
		Code:    fiber.StatusInternalServerError,
		Message: message,
		Type:    errorType,
	}
}
