package authController

import (
	"errors"
	"log"
	"strconv"

	"lumina/auth"
	"lumina/middleware"
	"lumina/utils"
	authValidator "lumina/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*authValidator.SignupRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	user, err := auth.Default.SignUp(auth.SignUpInput{
		Name:           reqData.Name,
		Email:          reqData.Email,
		Phone:          reqData.Phone,
		Password:       reqData.Password,
		Role:           reqData.Role,
		Grade:          reqData.Grade,
		Department:     reqData.Department,
		ManagementArea: reqData.ManagementArea,
	})
	if err != nil {
		if errors.Is(err, auth.ErrDuplicateEmail) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
		}
		log.Printf("Error registering user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to Signup user!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	auth.Default.TrackLogin(user.ID, c.IP(), c.Get("User-Agent"))

	go func(name, email, studentID string) {
		if err := utils.SendWelcomeEmail(name, email, studentID); err != nil {
			log.Printf("Error sending welcome email: %v", err)
		}
	}(user.Name, user.Email, user.StudentID)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", fiber.Map{
		"token": token,
		"user":  user,
	})
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	user, err := auth.Default.SignInWithPassword(reqData.Identifier, reqData.Password)
	if err != nil {
		if errors.Is(err, auth.ErrUnknownStudentID) {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid student ID!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	auth.Default.TrackLogin(user.ID, c.IP(), c.Get("User-Agent"))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Logout always succeeds from the caller's point of view. The session-ended
// event fires inside SignOut even when the account lookup fails, so portal
// state is cleared either way.
func Logout(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	if err := auth.Default.SignOut(userID); err != nil {
		log.Printf("Error resolving account on logout: %v", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out successfully.", nil)
}

func Session(c *fiber.Ctx) error {
	user := middleware.SessionUser(c)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session is active.", user)
}

func LoginHistory(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}

	logins, err := auth.Default.LoginHistory(userID, limit)
	if err != nil {
		log.Printf("Error fetching login history: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch login history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login history fetched successfully.", logins)
}
