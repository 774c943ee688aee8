package authValidator

import (
	"strings"

	"lumina/middleware"
	"lumina/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// SignupRequest is the registration form. Role-specific fields are optional
// and stored as profile metadata only.
type SignupRequest struct {
	Name            string `json:"name" validate:"required,min=2"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,min=7"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role"`
	Grade           string `json:"grade"`
	Department      string `json:"department"`
	ManagementArea  string `json:"managementArea"`
}

// LoginRequest authenticates by email or by institutional student id.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

func fieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	if verr, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verr {
			field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
			switch fe.Tag() {
			case "required":
				errors[field] = "This field is required!"
			case "email":
				errors[field] = "Invalid email!"
			case "min":
				errors[field] = "Value is too short!"
			default:
				errors[field] = "Invalid value!"
			}
		}
	}
	return errors
}

// Signup validator middleware
func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SignupRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if err := validate.Struct(reqData); err != nil {
			errors = fieldErrors(err)
		}

		if reqData.ConfirmPassword != "" && reqData.ConfirmPassword != reqData.Password {
			errors["confirmPassword"] = "Passwords do not match."
		}

		if reqData.Role != "" && !models.ValidRole(reqData.Role) {
			errors["role"] = "Invalid role!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSignup", reqData)
		return c.Next()
	}
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		reqData.Identifier = strings.TrimSpace(reqData.Identifier)
		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
