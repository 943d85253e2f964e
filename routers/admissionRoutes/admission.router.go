package admissionRoutes

import (
	controllers "admission/controllers/admission"
	validators "admission/validators/admission"

	"github.com/gofiber/fiber/v2"
)

// SetupAdmissionRoutes sets up the public admission API routes
func SetupAdmissionRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Program catalogue
	api.Get("/programs", controllers.GetPrograms)
	api.Get("/programs/:id", controllers.GetProgramDetails)
	api.Get("/qualifications", controllers.GetQualifications)

	// Eligibility and document checklist
	api.Post("/check-eligibility", validators.CheckEligibility(), controllers.CheckEligibility)
	api.Get("/document-checklist", validators.DocumentChecklist(), controllers.GenerateChecklist)
	api.Post("/document-checklist", validators.DocumentChecklist(), controllers.GenerateChecklist)

	// Deadlines
	api.Get("/deadlines", controllers.GetDeadlines)
	api.Get("/calendar", controllers.GetCalendar)
}
