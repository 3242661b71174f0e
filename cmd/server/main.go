package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/localnerve/realtydash/internal/config"
	"github.com/localnerve/realtydash/internal/handlers"
	"github.com/localnerve/realtydash/internal/middleware"
	"github.com/localnerve/realtydash/internal/store"

	_ "github.com/localnerve/realtydash/docs/api" // Swagger docs
)

// @title RealtyDash API
// @version 1.0.0
// @description Go Fiber data service for the realty market-intelligence dashboard
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/localnerve/realtydash
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Configure logging
	zerolog.SetGlobalLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	instanceID := uuid.New().String()
	startedAt := time.Now().UTC()

	// Build the in-memory store; seed data is loaded here
	st := store.New()
	if cfg.MetricsEnabled {
		st.RegisterMetrics(prometheus.DefaultRegisterer)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	if cfg.MetricsEnabled {
		prom := fiberprometheus.New("realtydash")
		prom.RegisterAt(app, "/metrics")
		app.Use(prom.Middleware)
	}

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	api := app.Group("/api")

	// Version middleware
	api.Use(middleware.VersionMiddleware())

	// Create handlers
	propertyHandler := &handlers.PropertyHandler{Store: st}
	marketHandler := &handlers.MarketHandler{Store: st}
	collabHandler := &handlers.CollabHandler{Store: st}
	userHandler := &handlers.UserHandler{Store: st}
	healthHandler := &handlers.HealthHandler{Store: st, InstanceID: instanceID, StartedAt: startedAt}

	// Property routes
	api.Get("/properties", propertyHandler.GetProperties)
	api.Post("/properties", propertyHandler.CreateProperty)
	api.Put("/properties/:id", propertyHandler.UpdateProperty)
	api.Delete("/properties/:id", propertyHandler.DeleteProperty)

	// Market routes
	api.Get("/market-data", marketHandler.GetMarketData)
	api.Get("/dashboard-stats", marketHandler.GetDashboardStats)

	// Collaboration routes
	api.Get("/team-activity", collabHandler.GetTeamActivity)
	api.Post("/team-activity", collabHandler.CreateTeamActivity)
	api.Get("/documents", collabHandler.GetDocuments)
	api.Post("/documents", collabHandler.CreateDocument)
	api.Get("/comments", collabHandler.GetComments)
	api.Post("/comments", collabHandler.CreateComment)

	// User routes
	api.Get("/users", userHandler.GetUsers)

	// Health route
	api.Get("/health", healthHandler.GetHealth)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Resource not found",
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info().Msg("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	log.Info().
		Str("port", cfg.Port).
		Str("instanceId", instanceID).
		Msg("Starting server")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}

	log.Info().Msg("Server stopped")
}
