package models

import "gorm.io/gorm"

type Faculty struct {
	gorm.Model
	FacultyName string `json:"faculty_name" gorm:"unique;not null"`
	Description string `json:"description"`
}
