package controllers

import (
	"admission/database"
	"admission/eligibility"
	"admission/middleware"

	"github.com/gofiber/fiber/v2"
)

// CheckEligibility scores the applicant's qualification and grades against
// the program's admission requirement rows
func CheckEligibility(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedEligibility").(*struct {
		ProgramID      uint                   `json:"program_id"`
		Qualification  string                 `json:"qualification"`
		Grades         eligibility.Grades     `json:"grades"`
		AdditionalInfo map[string]interface{} `json:"additional_info"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	checker := eligibility.NewChecker(database.Database.Db)
	result := checker.CheckEligibility(reqData.ProgramID, reqData.Qualification, reqData.Grades, reqData.AdditionalInfo)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Eligibility checked successfully!", result)
}
