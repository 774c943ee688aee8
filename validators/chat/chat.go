package chatValidator

import (
	"strings"

	"lumina/middleware"

	"github.com/gofiber/fiber/v2"
)

// Ask validator middleware
func Ask() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Question string `json:"question"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		question := strings.TrimSpace(reqData.Question)
		if question == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"question": "Question is required!"})
		}

		c.Locals("validatedQuestion", question)
		return c.Next()
	}
}
