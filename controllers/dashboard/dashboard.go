package dashboardController

import (
	"lumina/middleware"
	"lumina/portal"

	"github.com/gofiber/fiber/v2"
)

func sessionState(c *fiber.Ctx) *portal.State {
	return portal.Sessions.Attach(middleware.SessionUser(c))
}

// View returns the student home screen: enrolled courses and notices.
func View(c *fiber.Ctx) error {
	dashboard, err := sessionState(c).DashboardView()
	if err != nil {
		return middleware.PortalErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully.", dashboard)
}

// OpenCheckout selects a course for the enrollment dialog.
func OpenCheckout(c *fiber.Ctx) error {
	course, err := sessionState(c).OpenCheckout(c.Params("courseId"))
	if err != nil {
		return middleware.PortalErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Checkout opened.", course)
}

// ConfirmPurchase completes the enrollment. Repeating the call for an
// already purchased course is a no-op success.
func ConfirmPurchase(c *fiber.Ctx) error {
	course, err := sessionState(c).ConfirmPurchase(c.Params("courseId"))
	if err != nil {
		return middleware.PortalErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment successful.", course)
}

// TeacherView returns the teacher home screen.
func TeacherView(c *fiber.Ctx) error {
	board, err := sessionState(c).TeacherView()
	if err != nil {
		return middleware.PortalErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully.", board)
}

// Timetable returns the weekly schedule screen.
func Timetable(c *fiber.Ctx) error {
	days, err := sessionState(c).TimetableView()
	if err != nil {
		return middleware.PortalErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Timetable fetched successfully.", days)
}

// Evaluation returns the upcoming exams screen.
func Evaluation(c *fiber.Ctx) error {
	exams, err := sessionState(c).EvaluationView()
	if err != nil {
		return middleware.PortalErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exams fetched successfully.", exams)
}
