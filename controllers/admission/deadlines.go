package controllers

import (
	"admission/database"
	"admission/dates"
	"admission/middleware"
	"admission/models"
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetDeadlines returns upcoming important dates, optionally scoped to one
// program and a days-ahead window
func GetDeadlines(c *fiber.Ctx) error {
	programID := c.QueryInt("program_id")
	daysAhead := c.QueryInt("days", 90)

	now := time.Now()
	db := database.Database.Db.Preload("Program").
		Where("end_date >= ? AND end_date <= ?", now, now.AddDate(0, 0, daysAhead))

	if programID > 0 {
		db = db.Where("program_id = ?", programID)
	}

	var deadlines []models.ImportantDate
	if err := db.Order("start_date ASC").Find(&deadlines).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch deadlines!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Deadlines fetched successfully!", fiber.Map{
		"deadlines": deadlines,
		"count":     len(deadlines),
	})
}

// GetCalendar returns the derived semester calendar for a year: registration
// windows and application deadlines for local and international applicants
func GetCalendar(c *fiber.Ctx) error {
	year := c.QueryInt("year", time.Now().Year())
	if year < 2000 || year > 2100 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid year!", nil)
	}

	calendar := dates.AllImportantDates(year)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Calendar generated successfully!", fiber.Map{
		"year":  year,
		"dates": calendar,
		"count": len(calendar),
	})
}
