package models

import "gorm.io/gorm"

// Program levels: Foundation, Diploma, Bachelor, Master, PhD
type Program struct {
	gorm.Model
	ProgramName     string  `json:"program_name" gorm:"not null"`
	Level           string  `json:"level" gorm:"not null"`
	FacultyID       uint    `json:"faculty_id"`
	Faculty         Faculty `json:"faculty" gorm:"foreignKey:FacultyID"`
	DurationYears   float64 `json:"duration_years"`
	Description     string  `json:"description" gorm:"type:text"`
	CareerProspects string  `json:"career_prospects" gorm:"type:text"`
}
