package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectIntent(t *testing.T) {
	tests := []struct {
		message string
		intent  string
	}{
		{"What are the entry requirements for computer science?", "admission_requirements"},
		{"Am I eligible with my qualification?", "admission_requirements"},
		{"How do I apply?", "application_procedure"},
		{"Explain the application process please", "application_procedure"},
		{"When is the deadline for the next intake?", "deadlines"},
		{"closing date for september intake", "deadlines"},
		{"What documents do I need to submit?", "documents"},
		{"Is there a checklist of paperwork?", "documents"},
		{"How much is the tuition fee?", "fees"},
		{"Are there any scholarship options?", "fees"},
		{"Tell me about the psychology course", "program_info"},
		{"hello there", "general"},
		{"", "general"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.intent, DetectIntent(tc.message), "message: %q", tc.message)
	}
}

func TestDetectIntentCaseInsensitive(t *testing.T) {
	assert.Equal(t, DetectIntent("what are the requirements"), DetectIntent("WHAT ARE THE REQUIREMENTS"))
}

func TestDetectIntentTieKeepsEarlierEntry(t *testing.T) {
	// One pattern hit each for admission_requirements ("eligibility") and
	// application_procedure ("apply"); the earlier table entry wins
	assert.Equal(t, "admission_requirements", DetectIntent("eligibility to apply"))
}
