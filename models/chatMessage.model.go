package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ChatMessage stores one chatbot exchange line. Suggestions shown with the
// bot reply are kept as a JSON array alongside the message.
type ChatMessage struct {
	gorm.Model
	SessionID       string         `json:"session_id" gorm:"index;not null"`
	SenderType      string         `json:"sender_type" gorm:"not null"` // User or Bot
	MessageText     string         `json:"message_text" gorm:"type:text"`
	IntentDetected  string         `json:"intent_detected"`
	ConfidenceScore float64        `json:"confidence_score"`
	Suggestions     datatypes.JSON `json:"suggestions"`
}
