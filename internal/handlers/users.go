package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/localnerve/realtydash/internal/store"
)

// UserHandler handles user routes
type UserHandler struct {
	Store *store.Store
}

// GetUsers handles GET /api/users
// @Summary List users
// @Description Get all team member accounts
// @Tags Users
// @Produce json
// @Success 200 {array} models.User
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /users [get]
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	users := h.Store.AllUsers()

	if err := c.Status(fiber.StatusOK).JSON(users); err != nil {
		return internalError("Failed to fetch users", "getUsers")
	}
	return nil
}
