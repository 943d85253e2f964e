package utils

import (
	"admission/database"
	"admission/dates"
	"admission/models"
	"log"
)

// SeedImportantDates regenerates the derived important-date rows for every
// program for the given year. The calculator is deterministic, so rows are
// replaced by (program, event type, semester) and re-running for the same
// year leaves the table unchanged. Returns the number of rows written.
func SeedImportantDates(year int) (int, error) {
	db := database.Database.Db

	var programs []models.Program
	if err := db.Find(&programs).Error; err != nil {
		return 0, err
	}

	calculated := dates.AllImportantDates(year)

	seeded := 0
	for _, program := range programs {
		for _, d := range calculated {
			// Drop the previous row for this event before inserting
			err := db.Unscoped().
				Where("program_id = ? AND event_type = ? AND semester = ?", program.ID, d.EventType, d.Semester).
				Delete(&models.ImportantDate{}).Error
			if err != nil {
				return seeded, err
			}

			row := models.ImportantDate{
				ProgramID:       program.ID,
				EventType:       d.EventType,
				StartDate:       d.StartDate,
				EndDate:         d.EndDate,
				Description:     d.Description,
				IsInternational: d.IsInternational,
				Semester:        d.Semester,
			}
			if err := db.Create(&row).Error; err != nil {
				return seeded, err
			}
			seeded++
		}
	}

	log.Printf("[SEED-DATES] Seeded %d important date rows for %d (%d programs)", seeded, year, len(programs))
	return seeded, nil
}
