package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/localnerve/realtydash/internal/services"
	"github.com/localnerve/realtydash/internal/store"
)

// MarketHandler handles market data and dashboard aggregate routes
type MarketHandler struct {
	Store *store.Store
}

// GetMarketData handles GET /api/market-data
// @Summary List market data
// @Description Get the monthly market history rows
// @Tags Market
// @Produce json
// @Success 200 {array} models.MarketData
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /market-data [get]
func (h *MarketHandler) GetMarketData(c *fiber.Ctx) error {
	rows := h.Store.AllMarketData()

	if err := c.Status(fiber.StatusOK).JSON(rows); err != nil {
		return internalError("Failed to fetch market data", "getMarketData")
	}
	return nil
}

// GetDashboardStats handles GET /api/dashboard-stats
// @Summary Dashboard stats
// @Description Get the aggregate stat cards for the dashboard landing page
// @Tags Market
// @Produce json
// @Success 200 {object} services.DashboardStats
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /dashboard-stats [get]
func (h *MarketHandler) GetDashboardStats(c *fiber.Ctx) error {
	stats := services.ComputeDashboardStats(h.Store)

	if err := c.Status(fiber.StatusOK).JSON(stats); err != nil {
		return internalError("Failed to fetch dashboard stats", "getDashboardStats")
	}
	return nil
}
