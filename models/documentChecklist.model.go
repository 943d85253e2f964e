package models

import "gorm.io/gorm"

// DocumentChecklistEntry is a static, program-scoped base checklist row.
type DocumentChecklistEntry struct {
	gorm.Model
	ProgramID    uint   `json:"program_id" gorm:"index;not null"`
	DocumentName string `json:"document_name" gorm:"not null"`
	IsMandatory  bool   `json:"is_mandatory" gorm:"default:false"`
	Description  string `json:"description"`
}
