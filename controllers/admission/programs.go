package controllers

import (
	"admission/database"
	"admission/middleware"
	"admission/models"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// GetPrograms returns all programs, optionally filtered by faculty and level
func GetPrograms(c *fiber.Ctx) error {
	facultyID := c.QueryInt("faculty_id")
	level := c.Query("level")

	db := database.Database.Db.Model(&models.Program{}).Preload("Faculty")

	if facultyID > 0 {
		db = db.Where("faculty_id = ?", facultyID)
	}
	if level != "" {
		db = db.Where("level = ?", level)
	}

	var programs []models.Program
	if err := db.Order("program_name").Find(&programs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch programs!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Programs fetched successfully!", fiber.Map{
		"programs": programs,
		"count":    len(programs),
	})
}

// GetProgramDetails returns one program with its requirements and base checklist
func GetProgramDetails(c *fiber.Ctx) error {
	programID, err := strconv.Atoi(c.Params("id"))
	if err != nil || programID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Program ID!", nil)
	}

	var program models.Program
	if err := database.Database.Db.Preload("Faculty").Where("id = ?", programID).First(&program).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Program not found!", nil)
	}

	var requirements []models.AdmissionRequirement
	database.Database.Db.Where("program_id = ?", programID).Find(&requirements)

	var documents []models.DocumentChecklistEntry
	database.Database.Db.Where("program_id = ?", programID).
		Order("is_mandatory DESC, document_name").
		Find(&documents)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Program fetched successfully!", fiber.Map{
		"program":      program,
		"requirements": requirements,
		"documents":    documents,
	})
}

// GetQualifications returns the distinct qualification types across all requirements
func GetQualifications(c *fiber.Ctx) error {
	var qualifications []string
	err := database.Database.Db.Model(&models.AdmissionRequirement{}).
		Distinct("qualification_type").
		Order("qualification_type").
		Pluck("qualification_type", &qualifications).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch qualifications!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Qualifications fetched successfully!", fiber.Map{
		"qualifications": qualifications,
	})
}
