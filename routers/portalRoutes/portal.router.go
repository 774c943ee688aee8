package portalRoutes

import (
	portalController "lumina/controllers/portal"
	"lumina/middleware"
	portalValidator "lumina/validators/portal"

	"github.com/gofiber/fiber/v2"
)

func SetupPortalRoutes(app *fiber.App) {
	portalGroup := app.Group("/portal", middleware.JWTMiddleware, middleware.LoadSessionUser)

	portalGroup.Get("/screen", portalController.Screen)
	portalGroup.Post("/navigate", portalValidator.Navigate(), portalController.Navigate)
	portalGroup.Post("/back", portalController.Back)
	portalGroup.Post("/open/content", portalValidator.OpenCourse(), portalController.OpenContentManager)
	portalGroup.Post("/open/live", portalValidator.OpenCourse(), portalController.OpenLiveScheduler)
}
