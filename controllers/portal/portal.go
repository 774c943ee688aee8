package portalController

import (
	"lumina/middleware"
	"lumina/portal"

	"github.com/gofiber/fiber/v2"
)

// sessionState returns the caller's portal state, recreating it when it was
// swept while the token stayed valid.
func sessionState(c *fiber.Ctx) *portal.State {
	return portal.Sessions.Attach(middleware.SessionUser(c))
}

func Navigate(c *fiber.Ctx) error {
	route, ok := c.Locals("validatedRoute").(portal.Route)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	screen := sessionState(c).Navigate(route)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Screen changed.", screen)
}

func Screen(c *fiber.Ctx) error {
	screen := sessionState(c).Render()
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Screen fetched successfully.", screen)
}

func Back(c *fiber.Ctx) error {
	screen := sessionState(c).Back()
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Screen changed.", screen)
}

func OpenContentManager(c *fiber.Ctx) error {
	courseID, _ := c.Locals("validatedCourseId").(string)

	screen, err := sessionState(c).OpenContentManager(courseID)
	if err != nil {
		return middleware.PortalErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content manager opened.", screen)
}

func OpenLiveScheduler(c *fiber.Ctx) error {
	courseID, _ := c.Locals("validatedCourseId").(string)

	screen, err := sessionState(c).OpenLiveScheduler(courseID)
	if err != nil {
		return middleware.PortalErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Live scheduler opened.", screen)
}
