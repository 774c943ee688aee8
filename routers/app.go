package routers

import (
	adminRoutes "lumina/routers/adminRoutes"
	assistantRoutes "lumina/routers/assistantRoutes"
	authRoutes "lumina/routers/authRoutes"
	courseRoutes "lumina/routers/courseRoutes"
	dashboardRoutes "lumina/routers/dashboardRoutes"
	portalRoutes "lumina/routers/portalRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// SetupApp builds the HTTP application with all route groups mounted.
func SetupApp() *fiber.App {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",  // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	portalRoutes.SetupPortalRoutes(app)
	dashboardRoutes.SetupDashboardRoutes(app)
	adminRoutes.SetupAdminRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	assistantRoutes.SetupAssistantRoutes(app)

	return app
}
