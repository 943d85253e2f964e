package models

import "gorm.io/gorm"

type TuitionFee struct {
	gorm.Model
	ProgramID    uint    `json:"program_id" gorm:"index;not null"`
	Program      Program `json:"program" gorm:"foreignKey:ProgramID"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency" gorm:"default:'RM'"`
	Semester     int     `json:"semester"`
	AcademicYear string  `json:"academic_year"`
}
