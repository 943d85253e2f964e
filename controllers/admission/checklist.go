package controllers

import (
	"admission/checklist"
	"admission/database"
	"admission/middleware"

	"github.com/gofiber/fiber/v2"
)

// GenerateChecklist builds the customized document checklist for a program,
// country and eligibility status
func GenerateChecklist(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedChecklist").(*struct {
		ProgramID         uint   `json:"program_id"`
		Country           string `json:"country"`
		EligibilityStatus string `json:"eligibility_status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	generator := checklist.NewGenerator(database.Database.Db)
	result := generator.GenerateChecklist(reqData.ProgramID, reqData.Country, reqData.EligibilityStatus)
	program := generator.ProgramInfo(reqData.ProgramID)

	// The checklist carries its own error field; the caller checks that
	// instead of the HTTP status
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Checklist generated successfully!", fiber.Map{
		"program":   program,
		"checklist": result,
		"country":   reqData.Country,
	})
}
