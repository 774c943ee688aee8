package authRoutes

import (
	authController "lumina/controllers/auth"
	"lumina/middleware"
	authValidator "lumina/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidator.Signup(), authController.Signup)
	authGroup.Post("/login", authValidator.Login(), authController.Login)
	authGroup.Post("/logout", middleware.JWTMiddleware, authController.Logout)
	authGroup.Get("/session", middleware.JWTMiddleware, middleware.LoadSessionUser, authController.Session)
	authGroup.Get("/login/history", middleware.JWTMiddleware, authController.LoginHistory)
}
