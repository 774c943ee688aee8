package middleware

import (
	"lumina/auth"
	"lumina/models"

	"github.com/gofiber/fiber/v2"
)

// LoadSessionUser resolves the token's user id against the auth collaborator
// and stores the normalized user record for the handlers. Runs after
// JWTMiddleware.
func LoadSessionUser(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Unauthorized: User ID not found",
			"data":    nil,
		})
	}

	user, err := auth.Default.CurrentSession(userID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Session is no longer valid!",
			"data":    nil,
		})
	}

	c.Locals("sessionUser", user)
	return c.Next()
}

// SessionUser returns the user stored by LoadSessionUser, or nil.
func SessionUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("sessionUser").(*models.User)
	return user
}
