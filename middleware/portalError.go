package middleware

import (
	"errors"

	"lumina/portal"

	"github.com/gofiber/fiber/v2"
)

// PortalErrorResponse maps screen-state errors onto the response envelope.
// Operations against a screen that is not the active route answer with a
// conflict, unknown entities answer not found.
func PortalErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, portal.ErrScreenNotActive):
		return JsonResponse(c, fiber.StatusConflict, false, "That screen is not open!", nil)
	case errors.Is(err, portal.ErrNoCourseSelected):
		return JsonResponse(c, fiber.StatusConflict, false, "No course is selected!", nil)
	case errors.Is(err, portal.ErrCourseNotFound):
		return JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	case errors.Is(err, portal.ErrUserNotFound):
		return JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	case errors.Is(err, portal.ErrModuleNotFound):
		return JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	case errors.Is(err, portal.ErrLessonNotFound):
		return JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	default:
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}
}
