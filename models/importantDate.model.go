package models

import (
	"time"

	"gorm.io/gorm"
)

// ImportantDate is a bounded time window for an admissions event
// (registration period, application deadline).
type ImportantDate struct {
	gorm.Model
	ProgramID       uint      `json:"program_id" gorm:"index;not null"`
	Program         Program   `json:"program" gorm:"foreignKey:ProgramID"`
	EventType       string    `json:"event_type" gorm:"not null"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Description     string    `json:"description"`
	IsInternational bool      `json:"is_international" gorm:"default:false"`
	Semester        int       `json:"semester"`
}
