package liveValidator

import (
	"strings"

	"lumina/middleware"
	"lumina/portal"

	"github.com/gofiber/fiber/v2"
)

// CreateSession validator middleware
func CreateSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			StartTime   string `json:"startTime"`
			EndTime     string `json:"endTime"`
			MeetingLink string `json:"meetingLink"`
			MeetingID   string `json:"meetingId"`
			Passcode    string `json:"passcode"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Title) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"title": "Session title is required!"})
		}

		c.Locals("validatedSession", portal.LiveSessionForm{
			Title:       reqData.Title,
			StartTime:   reqData.StartTime,
			EndTime:     reqData.EndTime,
			MeetingLink: reqData.MeetingLink,
			MeetingID:   reqData.MeetingID,
			Passcode:    reqData.Passcode,
		})
		return c.Next()
	}
}
