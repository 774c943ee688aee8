package courseRoutes

import (
	courseController "lumina/controllers/course"
	"lumina/middleware"
	courseValidator "lumina/validators/course"
	liveValidator "lumina/validators/live"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App) {
	contentGroup := app.Group("/content", middleware.JWTMiddleware, middleware.LoadSessionUser)

	contentGroup.Get("/", courseController.ContentView)
	contentGroup.Post("/modules", courseController.AddModule)
	contentGroup.Post("/modules/:moduleId/lessons", courseController.AddLesson)
	contentGroup.Patch("/modules/:moduleId", courseValidator.Rename(), courseController.RenameModule)
	contentGroup.Patch("/lessons/:lessonId", courseValidator.Rename(), courseController.RenameLesson)

	liveGroup := app.Group("/live", middleware.JWTMiddleware, middleware.LoadSessionUser)

	liveGroup.Get("/", courseController.LiveView)
	liveGroup.Post("/sessions", liveValidator.CreateSession(), courseController.CreateSession)
	liveGroup.Post("/credentials", courseController.GenerateCredentials)
}
