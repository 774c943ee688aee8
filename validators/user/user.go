package userValidator

import (
	"lumina/middleware"
	"lumina/models"

	"github.com/gofiber/fiber/v2"
)

// ChangeRole validator middleware
func ChangeRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Role string `json:"role"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if !models.ValidRole(reqData.Role) {
			return middleware.ValidationErrorResponse(c, map[string]string{"role": "Invalid role!"})
		}

		c.Locals("validatedRole", reqData.Role)
		return c.Next()
	}
}
