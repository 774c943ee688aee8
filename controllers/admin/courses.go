package adminController

import (
	"lumina/middleware"
	"lumina/portal"

	"github.com/gofiber/fiber/v2"
)

func sessionState(c *fiber.Ctx) *portal.State {
	return portal.Sessions.Attach(middleware.SessionUser(c))
}

// ListCourses searches the course registry by name or instructor.
func ListCourses(c *fiber.Ctx) error {
	courses, err := sessionState(c).AdminCourses(c.Query("query"))
	if err != nil {
		return middleware.PortalErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", courses)
}

// CreateCourse appends a new course to the registry.
func CreateCourse(c *fiber.Ctx) error {
	input, ok := c.Locals("validatedCourse").(portal.CourseInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	course, err := sessionState(c).CreateCourse(input)
	if err != nil {
		return middleware.PortalErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully.", course)
}

// UpdateCourse merges the patch into the matching course.
func UpdateCourse(c *fiber.Ctx) error {
	patch, ok := c.Locals("validatedCoursePatch").(portal.CoursePatch)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	course, err := sessionState(c).UpdateCourse(c.Params("courseId"), patch)
	if err != nil {
		return middleware.PortalErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully.", course)
}
