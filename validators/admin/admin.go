package adminValidator

import (
	"admission/middleware"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CreateProgramRequest is the admin program creation payload, carried through
// c.Locals between the validator and the controller.
type CreateProgramRequest struct {
	ProgramName     string  `json:"program_name"`
	Level           string  `json:"level"`
	FacultyName     string  `json:"faculty_name"`
	DurationYears   float64 `json:"duration_years"`
	Description     string  `json:"description"`
	CareerProspects string  `json:"career_prospects"`

	Requirements []struct {
		QualificationType      string `json:"qualification_type"`
		MinimumGrade           string `json:"minimum_grade"`
		AdditionalRequirements string `json:"additional_requirements"`
		EntranceExamInfo       string `json:"entrance_exam_info"`
	} `json:"requirements"`

	Documents []struct {
		DocumentName string `json:"document_name"`
		IsMandatory  bool   `json:"is_mandatory"`
		Description  string `json:"description"`
	} `json:"documents"`
}

var validLevels = map[string]bool{
	"Foundation": true, "Diploma": true, "Bachelor": true, "Master": true, "PhD": true,
}

// Login validates admin login credentials format
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Email = strings.TrimSpace(strings.ToLower(reqData.Email))
		if reqData.Email == "" || reqData.Password == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email and password are required!", nil)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

// CreateProgram validates the admin program creation request
func CreateProgram() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateProgramRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.ProgramName = strings.TrimSpace(reqData.ProgramName)
		reqData.FacultyName = strings.TrimSpace(reqData.FacultyName)

		if reqData.ProgramName == "" {
			errors["program_name"] = "Program name is required!"
		} else if len(reqData.ProgramName) < 3 {
			errors["program_name"] = "Program name must be at least 3 characters long!"
		}

		if reqData.FacultyName == "" {
			errors["faculty_name"] = "Faculty name is required!"
		}

		if !validLevels[reqData.Level] {
			errors["level"] = "Level must be one of Foundation, Diploma, Bachelor, Master, PhD!"
		}

		if reqData.DurationYears <= 0 {
			errors["duration_years"] = "Duration must be a positive number!"
		}

		for _, req := range reqData.Requirements {
			if strings.TrimSpace(req.QualificationType) == "" {
				errors["requirements"] = "Qualification type is required for every requirement row!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgram", reqData)
		return c.Next()
	}
}

// SeedDates validates the important-dates seeding request
func SeedDates() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Year int `json:"year"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Year == 0 {
			reqData.Year = time.Now().Year()
		}
		if reqData.Year < 2000 || reqData.Year > 2100 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid year!", nil)
		}

		c.Locals("validatedSeedYear", reqData.Year)
		return c.Next()
	}
}
