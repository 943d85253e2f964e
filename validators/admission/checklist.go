package admissionValidator

import (
	"admission/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// DocumentChecklist validates checklist generation input. Both GET (query
// params) and POST (JSON body) are accepted.
func DocumentChecklist() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ProgramID         uint   `json:"program_id"`
			Country           string `json:"country"`
			EligibilityStatus string `json:"eligibility_status"`
		})

		if c.Method() == fiber.MethodGet {
			// Negative IDs must not wrap around into a valid uint
			if id := c.QueryInt("program_id"); id > 0 {
				reqData.ProgramID = uint(id)
			}
			reqData.Country = c.Query("country")
			reqData.EligibilityStatus = c.Query("eligibility_status")
		} else {
			if err := c.BodyParser(reqData); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
		}

		if reqData.ProgramID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Program ID is required!", nil)
		}

		reqData.Country = strings.TrimSpace(reqData.Country)
		if reqData.Country == "" {
			reqData.Country = "Malaysia"
		}
		if reqData.EligibilityStatus == "" {
			reqData.EligibilityStatus = "eligible"
		}

		c.Locals("validatedChecklist", reqData)
		return c.Next()
	}
}
