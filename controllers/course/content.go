package courseController

import (
	"lumina/middleware"
	"lumina/portal"

	"github.com/gofiber/fiber/v2"
)

func sessionState(c *fiber.Ctx) *portal.State {
	return portal.Sessions.Attach(middleware.SessionUser(c))
}

// ContentView returns the curriculum builder for the selected course.
func ContentView(c *fiber.Ctx) error {
	content, err := sessionState(c).ContentView()
	if err != nil {
		return middleware.PortalErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Curriculum fetched successfully.", content)
}

// AddModule appends an empty module to the curriculum.
func AddModule(c *fiber.Ctx) error {
	module, err := sessionState(c).AddModule()
	if err != nil {
		return middleware.PortalErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module added successfully.", module)
}

// AddLesson appends a blank video lesson to the named module.
func AddLesson(c *fiber.Ctx) error {
	lesson, err := sessionState(c).AddLesson(c.Params("moduleId"))
	if err != nil {
		return middleware.PortalErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson added successfully.", lesson)
}

// RenameModule replaces a module title.
func RenameModule(c *fiber.Ctx) error {
	title, _ := c.Locals("validatedTitle").(string)

	module, err := sessionState(c).RenameModule(c.Params("moduleId"), title)
	if err != nil {
		return middleware.PortalErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module renamed successfully.", module)
}

// RenameLesson replaces a lesson title.
func RenameLesson(c *fiber.Ctx) error {
	title, _ := c.Locals("validatedTitle").(string)

	lesson, err := sessionState(c).RenameLesson(c.Params("lessonId"), title)
	if err != nil {
		return middleware.PortalErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson renamed successfully.", lesson)
}
