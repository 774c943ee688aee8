package portalValidator

import (
	"lumina/middleware"
	"lumina/portal"

	"github.com/gofiber/fiber/v2"
)

// Navigate validator middleware
func Navigate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Route string `json:"route"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		route := portal.Route(reqData.Route)
		if !route.Valid() {
			return middleware.ValidationErrorResponse(c, map[string]string{"route": "Unknown route!"})
		}

		c.Locals("validatedRoute", route)
		return c.Next()
	}
}

// OpenCourse validator middleware for the course-scoped screens
func OpenCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID string `json:"courseId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.CourseID == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"courseId": "Course id is required!"})
		}

		c.Locals("validatedCourseId", reqData.CourseID)
		return c.Next()
	}
}
