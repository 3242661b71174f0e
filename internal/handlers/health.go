package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/localnerve/realtydash/internal/services"
	"github.com/localnerve/realtydash/internal/store"
)

// HealthHandler handles the liveness route used by the healthcheck binary
type HealthHandler struct {
	Store      *store.Store
	InstanceID string
	StartedAt  time.Time
}

// GetHealth handles GET /api/health
// @Summary Health check
// @Description Report service liveness and per-collection record counts
// @Tags Health
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	result := services.HealthCheck(h.Store, h.InstanceID, h.StartedAt)

	status := fiber.StatusOK
	if result.Status != "healthy" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(result)
}
