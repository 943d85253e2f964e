package controllers

import (
	"admission/chatbot"
	"admission/config"
	"admission/database"
	"admission/middleware"
	"admission/models"
	"admission/utils"
	adminValidator "admission/validators/admin"
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Login authenticates the admission office admin and issues a JWT
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if config.AppConfig.AdminPassword == "" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Admin login is disabled!", nil)
	}

	emailOK := subtle.ConstantTimeCompare([]byte(reqData.Email), []byte(config.AppConfig.AdminEmail)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(reqData.Password), []byte(config.AppConfig.AdminPassword)) == 1
	if !emailOK || !passwordOK {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	token, err := middleware.GenerateJWT(reqData.Email, "ADMIN")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token": token,
	})
}

// CreateProgram loads one program with its requirement rows and base
// checklist documents, creating the faculty when it does not exist yet
func CreateProgram(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedProgram").(*adminValidator.CreateProgramRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var program models.Program
	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		var faculty models.Faculty
		err := tx.Where("faculty_name = ?", reqData.FacultyName).First(&faculty).Error
		if err == gorm.ErrRecordNotFound {
			faculty = models.Faculty{FacultyName: reqData.FacultyName}
			if err := tx.Create(&faculty).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		program = models.Program{
			ProgramName:     reqData.ProgramName,
			Level:           reqData.Level,
			FacultyID:       faculty.ID,
			DurationYears:   reqData.DurationYears,
			Description:     reqData.Description,
			CareerProspects: reqData.CareerProspects,
		}
		if err := tx.Create(&program).Error; err != nil {
			return err
		}

		for _, req := range reqData.Requirements {
			row := models.AdmissionRequirement{
				ProgramID:              program.ID,
				QualificationType:      req.QualificationType,
				MinimumGrade:           req.MinimumGrade,
				AdditionalRequirements: req.AdditionalRequirements,
				EntranceExamInfo:       req.EntranceExamInfo,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		for _, doc := range reqData.Documents {
			row := models.DocumentChecklistEntry{
				ProgramID:    program.ID,
				DocumentName: doc.DocumentName,
				IsMandatory:  doc.IsMandatory,
				Description:  doc.Description,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create program!", nil)
	}

	// New program, new deep links
	chatbot.ResetProgramLinks()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Program created successfully!", program)
}

// SeedDates regenerates the important-date rows for every program for a year
func SeedDates(c *fiber.Ctx) error {
	year, ok := c.Locals("validatedSeedYear").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	seeded, err := utils.SeedImportantDates(year)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to seed important dates!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Important dates seeded successfully!", fiber.Map{
		"year":   year,
		"seeded": seeded,
	})
}
