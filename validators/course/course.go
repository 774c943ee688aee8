package courseValidator

import (
	"strings"

	"lumina/middleware"
	"lumina/models"
	"lumina/portal"

	"github.com/gofiber/fiber/v2"
)

// CreateCourse validator middleware
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string  `json:"name"`
			Instructor  string  `json:"instructor"`
			Image       string  `json:"image"`
			Category    string  `json:"category"`
			NextSession string  `json:"nextSession"`
			Status      string  `json:"status"`
			Price       float64 `json:"price"`
			Description string  `json:"description"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Course name is required!"
		}
		if strings.TrimSpace(reqData.Instructor) == "" {
			errors["instructor"] = "Instructor is required!"
		}
		if reqData.Status != "" && !models.ValidCourseStatus(reqData.Status) {
			errors["status"] = "Invalid status!"
		}
		if reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", portal.CourseInput{
			Name:        reqData.Name,
			Instructor:  reqData.Instructor,
			Image:       reqData.Image,
			Category:    reqData.Category,
			NextSession: reqData.NextSession,
			Status:      reqData.Status,
			Price:       reqData.Price,
			Description: reqData.Description,
		})
		return c.Next()
	}
}

// UpdateCourse validator middleware. Absent fields stay untouched on the
// stored course.
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        *string  `json:"name"`
			Instructor  *string  `json:"instructor"`
			Image       *string  `json:"image"`
			Category    *string  `json:"category"`
			NextSession *string  `json:"nextSession"`
			Status      *string  `json:"status"`
			Price       *float64 `json:"price"`
			Description *string  `json:"description"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Status != nil && !models.ValidCourseStatus(*reqData.Status) {
			errors["status"] = "Invalid status!"
		}
		if reqData.Price != nil && *reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCoursePatch", portal.CoursePatch{
			Name:        reqData.Name,
			Instructor:  reqData.Instructor,
			Image:       reqData.Image,
			Category:    reqData.Category,
			NextSession: reqData.NextSession,
			Status:      reqData.Status,
			Price:       reqData.Price,
			Description: reqData.Description,
		})
		return c.Next()
	}
}

// Rename validator middleware shared by module and lesson renames
func Rename() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title string `json:"title"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Title) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"title": "Title is required!"})
		}

		c.Locals("validatedTitle", reqData.Title)
		return c.Next()
	}
}
