package assistantController

import (
	"log"

	"lumina/assistant"
	"lumina/middleware"
	"lumina/portal"

	"github.com/gofiber/fiber/v2"
)

func sessionState(c *fiber.Ctx) *portal.State {
	return portal.Sessions.Attach(middleware.SessionUser(c))
}

// Transcript returns the Q&A board's local message history.
func Transcript(c *fiber.Ctx) error {
	chat, err := sessionState(c).ChatTranscript()
	if err != nil {
		return middleware.PortalErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transcript fetched successfully.", chat)
}

// Ask forwards one question to the study assistant. The bridge error never
// reaches the caller as a failure, the transcript records the fallback
// message instead.
func Ask(c *fiber.Ctx) error {
	question, _ := c.Locals("validatedQuestion").(string)

	state := sessionState(c)
	if err := state.AppendChat(portal.ChatRoleUser, question); err != nil {
		return middleware.PortalErrorResponse(c, err)
	}

	reply, err := assistant.Default.Ask(c.Context(), question)
	if err != nil {
		log.Printf("Error calling study assistant: %v", err)
		reply = assistant.Fallback
	}

	if err := state.AppendChat(portal.ChatRoleAssistant, reply); err != nil {
		return middleware.PortalErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reply generated.", fiber.Map{
		"reply": reply,
	})
}
