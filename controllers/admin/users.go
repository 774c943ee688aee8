package adminController

import (
	"lumina/middleware"

	"github.com/gofiber/fiber/v2"
)

// ListUsers filters the registry by a name or id substring and an exact role.
func ListUsers(c *fiber.Ctx) error {
	users, err := sessionState(c).AdminUsers(c.Query("search"), c.Query("role"))
	if err != nil {
		return middleware.PortalErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully.", users)
}

// ToggleUserStatus flips a registry user between active and suspended.
func ToggleUserStatus(c *fiber.Ctx) error {
	user, err := sessionState(c).ToggleUserStatus(c.Params("userId"))
	if err != nil {
		return middleware.PortalErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User status updated.", user)
}

// ChangeUserRole overwrites a registry user's role. The institutional id is
// left as issued.
func ChangeUserRole(c *fiber.Ctx) error {
	role, _ := c.Locals("validatedRole").(string)

	user, err := sessionState(c).ChangeUserRole(c.Params("userId"), role)
	if err != nil {
		return middleware.PortalErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User role updated.", user)
}
