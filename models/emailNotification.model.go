package models

import (
	"time"

	"gorm.io/gorm"
)

// EmailNotification is a deadline-reminder subscription. One row per
// (email, program, type); LastSent de-duplicates same-day reminders.
type EmailNotification struct {
	gorm.Model
	Email            string     `json:"email" gorm:"index;not null;uniqueIndex:unique_subscription,priority:1"`
	ProgramID        uint       `json:"program_id" gorm:"index;not null;uniqueIndex:unique_subscription,priority:2"`
	NotificationType string     `json:"notification_type" gorm:"default:'Deadline Reminder';uniqueIndex:unique_subscription,priority:3"`
	DaysBefore       int        `json:"days_before" gorm:"default:14"`
	IsActive         bool       `json:"is_active" gorm:"default:true"`
	LastSent         *time.Time `json:"last_sent"`
}
