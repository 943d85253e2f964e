package admissionValidator

import (
	"admission/eligibility"
	"admission/middleware"

	"github.com/gofiber/fiber/v2"
)

// CheckEligibility validates the eligibility check request body
func CheckEligibility() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ProgramID      uint                   `json:"program_id"`
			Qualification  string                 `json:"qualification"`
			Grades         eligibility.Grades     `json:"grades"`
			AdditionalInfo map[string]interface{} `json:"additional_info"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ProgramID == 0 {
			errors["program_id"] = "Program ID is required!"
		}
		if reqData.Qualification == "" {
			errors["qualification"] = "Qualification is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEligibility", reqData)
		return c.Next()
	}
}
