package notificationValidator

import (
	"admission/config"
	"admission/middleware"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Subscribe validates a deadline reminder subscription request
func Subscribe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email      string `json:"email"`
			ProgramID  uint   `json:"program_id"`
			DaysBefore int    `json:"days_before"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Email = strings.TrimSpace(strings.ToLower(reqData.Email))
		if err := validate.Var(reqData.Email, "required,email"); err != nil {
			errors["email"] = "A valid email address is required!"
		}

		if reqData.ProgramID == 0 {
			errors["program_id"] = "Program ID is required!"
		}

		if reqData.DaysBefore < 0 || reqData.DaysBefore > 90 {
			errors["days_before"] = "Days before must be between 0 and 90!"
		}
		if reqData.DaysBefore == 0 {
			reqData.DaysBefore = config.AppConfig.ReminderDaysDefault
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubscription", reqData)
		return c.Next()
	}
}

// Unsubscribe validates an unsubscribe request
func Unsubscribe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email     string `json:"email"`
			ProgramID uint   `json:"program_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Email = strings.TrimSpace(strings.ToLower(reqData.Email))
		if err := validate.Var(reqData.Email, "required,email"); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "A valid email address is required!", nil)
		}

		c.Locals("validatedUnsubscribe", reqData)
		return c.Next()
	}
}
