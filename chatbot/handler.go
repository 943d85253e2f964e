package chatbot

import (
	"admission/models"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Response is one bot reply with optional suggestion chips.
type Response struct {
	Message     string   `json:"message"`
	Intent      string   `json:"intent"`
	Suggestions []string `json:"suggestions"`
}

// Handler processes admission-related chatbot messages.
type Handler struct {
	db *gorm.DB
}

// NewHandler returns a Handler reading from the given database handle.
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// ProcessMessage detects the intent of a message, generates a reply and logs
// both sides of the exchange.
func (h *Handler) ProcessMessage(message, sessionID string) Response {
	intent := DetectIntent(message)

	h.saveMessage(sessionID, "User", message, intent, nil)

	response := h.generateResponse(message, intent)

	h.saveMessage(sessionID, "Bot", response.Message, intent, response.Suggestions)

	return response
}

func (h *Handler) generateResponse(message, intent string) Response {
	switch intent {
	case "admission_requirements":
		return h.handleRequirementsQuery(message)
	case "application_procedure":
		return h.handleProcedureQuery()
	case "deadlines":
		return h.handleDeadlineQuery()
	case "documents":
		return h.handleDocumentQuery()
	case "fees":
		return h.handleFeeQuery()
	case "program_info":
		return h.handleProgramQuery()
	default:
		return h.handleGeneralQuery()
	}
}

var programKeywordPattern = regexp.MustCompile(`(computer|engineering|business|accounting|science|psychology)`)

func (h *Handler) handleRequirementsQuery(message string) Response {
	fallback := Response{
		Message:     "I can help you with admission requirements! Please specify which program you're interested in, or visit our Admission Requirements page for detailed information.",
		Intent:      "admission_requirements",
		Suggestions: []string{"Computer Science", "Engineering", "Business", "View all programs"},
	}

	keyword := programKeywordPattern.FindString(strings.ToLower(message))
	if keyword == "" {
		return fallback
	}

	var programs []models.Program
	err := h.db.Where("program_name LIKE ?", "%"+keyword+"%").Limit(5).Find(&programs).Error
	if err != nil || len(programs) == 0 {
		return fallback
	}

	program := programs[0]

	var requirements []models.AdmissionRequirement
	h.db.Where("program_id = ?", program.ID).Find(&requirements)

	response := fmt.Sprintf("For %s, the admission requirements include:\n", program.ProgramName)
	if len(requirements) > 0 {
		minGrade := requirements[0].MinimumGrade
		if minGrade == "" {
			minGrade = "equivalent qualification"
		}
		response += fmt.Sprintf("• %s: %s\n", requirements[0].QualificationType, minGrade)
		if requirements[0].AdditionalRequirements != "" {
			response += fmt.Sprintf("• Additional: %s\n", requirements[0].AdditionalRequirements)
		}
	} else {
		response += "Please visit our admission requirements page for detailed information."
	}

	return Response{
		Message:     response,
		Intent:      "admission_requirements",
		Suggestions: []string{"Check my eligibility", "View all requirements", "Application procedure"},
	}
}

func (h *Handler) handleProcedureQuery() Response {
	response := `Here's a step-by-step guide to apply:

1. **Check Eligibility**: Use our eligibility checker to see if you meet the requirements
2. **Prepare Documents**: Get your document checklist based on your program and country
3. **Submit Application**: Apply online through our portal or submit offline
4. **Pay Application Fee**: RM 50 application fee
5. **Track Status**: Monitor your application status online

Would you like detailed steps for online or offline application?`

	return Response{
		Message:     response,
		Intent:      "application_procedure",
		Suggestions: []string{"Online application steps", "Offline application steps", "Document checklist"},
	}
}

func (h *Handler) handleDeadlineQuery() Response {
	var upcoming []models.ImportantDate
	err := h.db.Preload("Program").
		Where("end_date >= ?", time.Now()).
		Order("end_date ASC").
		Limit(5).
		Find(&upcoming).Error
	if err != nil {
		return Response{
			Message: "Please visit our Important Dates page for deadline information, or contact our admission office.",
			Intent:  "deadlines",
		}
	}

	var response string
	if len(upcoming) > 0 {
		response = "Here are upcoming important dates:\n\n"
		for _, date := range upcoming {
			daysLeft := int(time.Until(date.EndDate).Hours() / 24)
			response += fmt.Sprintf("• %s for %s: Until %s", date.EventType, date.Program.ProgramName, date.EndDate.Format("02 January 2006"))
			if daysLeft > 0 {
				response += fmt.Sprintf(" (%d days remaining)", daysLeft)
			}
			response += "\n"
		}
	} else {
		response = "Please check our Important Dates page for the latest deadline information."
	}

	return Response{
		Message:     response,
		Intent:      "deadlines",
		Suggestions: []string{"View all deadlines", "Set reminder", "Application periods"},
	}
}

func (h *Handler) handleDocumentQuery() Response {
	response := `I can help you with document requirements!

The documents you need depend on:
• Your chosen program
• Your country of origin (Malaysia or International)
• Your qualification type

Would you like me to generate a personalized document checklist? Please specify:
1. Which program you're applying for
2. Your country (Malaysia or International)`

	return Response{
		Message:     response,
		Intent:      "documents",
		Suggestions: []string{"Generate my checklist", "View sample documents", "EMGS requirements"},
	}
}

func (h *Handler) handleFeeQuery() Response {
	var fees []models.TuitionFee
	err := h.db.Preload("Program").
		Where("academic_year = ?", fmt.Sprintf("%d", time.Now().Year())).
		Limit(3).
		Find(&fees).Error
	if err != nil {
		return Response{
			Message: "For detailed fee information, please visit our website or contact the finance office. We offer various payment plans and scholarships!",
			Intent:  "fees",
		}
	}

	var response string
	if len(fees) > 0 {
		response = "Tuition fees vary by program. Here are some examples:\n\n"
		for _, fee := range fees {
			response += fmt.Sprintf("• %s: RM %.2f per trimester\n", fee.Program.ProgramName, fee.Amount)
		}
		response += "\nVisit our Fees page for complete information, or check scholarship opportunities!"
	} else {
		response = "Tuition fees vary by program. Please visit our website or contact us for detailed fee information. We also offer various scholarships and financial aid options!"
	}

	return Response{
		Message:     response,
		Intent:      "fees",
		Suggestions: []string{"View all fees", "Scholarships", "Financial aid"},
	}
}

func (h *Handler) handleProgramQuery() Response {
	return Response{
		Message:     "SKL University offers programs across multiple faculties including Computer Science, Engineering, Business, Science, Arts, and more. Would you like information about a specific program?",
		Intent:      "program_info",
		Suggestions: []string{"Computer Science", "Engineering", "Business", "View all programs"},
	}
}

var generalResponses = []string{
	"I'm here to help with admission-related questions! You can ask me about requirements, application procedures, deadlines, documents, fees, or programs.",
	"How can I assist you with your admission inquiry? I can help with requirements, procedures, deadlines, and more!",
	"I can help you with admission requirements, application steps, important dates, document checklists, and program information. What would you like to know?",
}

func (h *Handler) handleGeneralQuery() Response {
	return Response{
		Message:     generalResponses[rand.Intn(len(generalResponses))],
		Intent:      "general",
		Suggestions: []string{"Admission requirements", "How to apply", "Important dates", "Document checklist"},
	}
}

// saveMessage persists an exchange line. Save failures are logged and
// swallowed: losing the transcript must never fail the request.
func (h *Handler) saveMessage(sessionID, senderType, messageText, intent string, suggestions []string) {
	msg := models.ChatMessage{
		SessionID:       sessionID,
		SenderType:      senderType,
		MessageText:     messageText,
		IntentDetected:  intent,
		ConfidenceScore: 0.80,
	}

	if len(suggestions) > 0 {
		if raw, err := json.Marshal(suggestions); err == nil {
			msg.Suggestions = raw
		}
	}

	if err := h.db.Create(&msg).Error; err != nil {
		log.Printf("[CHATBOT] Error saving message: %v", err)
	}
}
