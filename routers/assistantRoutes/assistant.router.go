package assistantRoutes

import (
	assistantController "lumina/controllers/assistant"
	"lumina/middleware"
	chatValidator "lumina/validators/chat"

	"github.com/gofiber/fiber/v2"
)

func SetupAssistantRoutes(app *fiber.App) {
	assistantGroup := app.Group("/assistant", middleware.JWTMiddleware, middleware.LoadSessionUser)

	assistantGroup.Get("/", assistantController.Transcript)
	assistantGroup.Post("/ask", chatValidator.Ask(), assistantController.Ask)
}
