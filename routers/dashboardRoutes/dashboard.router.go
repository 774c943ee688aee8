package dashboardRoutes

import (
	dashboardController "lumina/controllers/dashboard"
	"lumina/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	dashboardGroup := app.Group("/dashboard", middleware.JWTMiddleware, middleware.LoadSessionUser)

	dashboardGroup.Get("/", dashboardController.View)
	dashboardGroup.Post("/checkout/:courseId", dashboardController.OpenCheckout)
	dashboardGroup.Post("/purchase/:courseId", dashboardController.ConfirmPurchase)

	app.Get("/teacher/dashboard", middleware.JWTMiddleware, middleware.LoadSessionUser, dashboardController.TeacherView)
	app.Get("/timetable", middleware.JWTMiddleware, middleware.LoadSessionUser, dashboardController.Timetable)
	app.Get("/evaluation", middleware.JWTMiddleware, middleware.LoadSessionUser, dashboardController.Evaluation)
}
