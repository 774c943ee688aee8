package adminRoutes

import (
	adminController "lumina/controllers/admin"
	"lumina/middleware"
	courseValidator "lumina/validators/course"
	userValidator "lumina/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.LoadSessionUser)

	adminGroup.Get("/courses", adminController.ListCourses)
	adminGroup.Post("/courses", courseValidator.CreateCourse(), adminController.CreateCourse)
	adminGroup.Patch("/courses/:courseId", courseValidator.UpdateCourse(), adminController.UpdateCourse)

	adminGroup.Get("/users", adminController.ListUsers)
	adminGroup.Post("/users/:userId/status/toggle", adminController.ToggleUserStatus)
	adminGroup.Post("/users/:userId/role", userValidator.ChangeRole(), adminController.ChangeUserRole)
}
