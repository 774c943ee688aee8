package courseController

import (
	"lumina/middleware"
	"lumina/portal"

	"github.com/gofiber/fiber/v2"
)

// LiveView returns the scheduler for the selected course.
func LiveView(c *fiber.Ctx) error {
	live, err := sessionState(c).LiveView()
	if err != nil {
		return middleware.PortalErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sessions fetched successfully.", live)
}

// CreateSession books a live session for the selected course.
func CreateSession(c *fiber.Ctx) error {
	form, ok := c.Locals("validatedSession").(portal.LiveSessionForm)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	session, err := sessionState(c).CreateLiveSession(form)
	if err != nil {
		return middleware.PortalErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Session scheduled successfully.", session)
}

// GenerateCredentials pre-fills the booking form with a meeting id, passcode
// and join link.
func GenerateCredentials(c *fiber.Ctx) error {
	creds, err := sessionState(c).MeetingCredentials()
	if err != nil {
		return middleware.PortalErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Credentials generated.", creds)
}
