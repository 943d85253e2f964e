package models

import "gorm.io/gorm"

// AdmissionRequirement is one alternative admission pathway for a program.
// A program's rows are alternatives: satisfying any one row is sufficient.
type AdmissionRequirement struct {
	gorm.Model
	ProgramID              uint   `json:"program_id" gorm:"index;not null"`
	QualificationType      string `json:"qualification_type" gorm:"not null"`
	MinimumGrade           string `json:"minimum_grade"`
	AdditionalRequirements string `json:"additional_requirements" gorm:"type:text"`
	EntranceExamInfo       string `json:"entrance_exam_info"`
}
