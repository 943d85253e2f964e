package controllers

import (
	"admission/chatbot"
	"admission/config"
	"admission/database"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type dialogflowRequest struct {
	QueryResult struct {
		QueryText  string                 `json:"queryText"`
		Parameters map[string]interface{} `json:"parameters"`
	} `json:"queryResult"`
}

// paramString extracts a Dialogflow parameter that may arrive as a string or
// a list, under any of the given keys.
func paramString(params map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		switch v := params[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case []interface{}:
			if len(v) > 0 {
				if s, ok := v[0].(string); ok && s != "" {
					return s
				}
			}
		}
	}
	return ""
}

func fulfillment(c *fiber.Ctx, text string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"fulfillmentText": text})
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// DialogflowWebhook resolves a program name from the Dialogflow request and
// replies with the matching deep link. Errors always come back as a polite
// fulfillment message, never as a 5xx: Dialogflow renders whatever we send.
func DialogflowWebhook(c *fiber.Ctx) error {
	var body dialogflowRequest
	if err := c.BodyParser(&body); err != nil {
		log.Printf("[DIALOGFLOW] Failed to parse webhook body: %v", err)
		return fulfillment(c, "I'm sorry, I encountered an error processing your request. Please try again or contact the admission office for assistance.")
	}

	queryText := body.QueryResult.QueryText
	queryLower := strings.ToLower(queryText)
	params := body.QueryResult.Parameters

	programName := paramString(params, "program_name", "ProgramName", "program")

	// Dialogflow sometimes sends entity placeholders literally
	if strings.HasPrefix(programName, "{") || strings.HasPrefix(programName, "@") {
		log.Printf("[DIALOGFLOW] Received entity placeholder %q, extracting from query text", programName)
		programName = ""
	}

	// Shortcut the common foundation queries, typos included
	if programName == "" && queryText != "" {
		switch {
		case containsAny(queryLower, "foundation in scien", "foundation in science"):
			programName = "Foundation in Science"
		case containsAny(queryLower, "foundation in art"):
			programName = "Foundation in Arts"
		case strings.Contains(queryLower, "foundation") && strings.Contains(queryLower, "science"):
			programName = "Foundation in Science"
		case strings.Contains(queryLower, "foundation") && containsAny(queryLower, "art", "arts"):
			programName = "Foundation in Arts"
		case strings.Contains(queryLower, "foundation"):
			programName = "Foundation in Science"
		}
	}

	links := chatbot.BuildProgramLinks(database.Database.Db, config.AppConfig.BaseURL)

	// Last attempt: fuzzy-match the whole query text against program names
	if programName == "" && queryText != "" {
		if match, ok := chatbot.FindProgramMatch(queryText, links); ok {
			programName = match.ProgramName
		}
	}

	baseURL := strings.TrimRight(config.AppConfig.BaseURL, "/")

	// No program identified: answer with the general page for whatever the
	// user seems to be asking about
	if programName == "" {
		switch {
		case containsAny(queryLower, "requirement", "eligibility", "qualification", "need to apply", "admission criteria"):
			return fulfillment(c, fmt.Sprintf("I can help you with admission requirements! Please visit our Admission Requirements page to see requirements for all programs: %s/admission/requirements\n\nOr tell me which specific program you're interested in and I'll show you the exact requirements.", baseURL))
		case containsAny(queryLower, "document", "checklist", "need to submit", "required document", "paperwork"):
			return fulfillment(c, fmt.Sprintf("I can help you with document requirements! Please visit our Document Checklist page: %s/admission/document-checklist\n\nOr tell me which specific program you're applying for and I'll generate a personalized checklist for you.", baseURL))
		case containsAny(queryLower, "deadline", "when is", "closing date", "application period", "intake"):
			return fulfillment(c, fmt.Sprintf("I can help you with important dates and deadlines! Please visit our Important Dates page: %s/admission/deadlines\n\nOr tell me which specific program you're interested in and I'll show you the exact deadlines.", baseURL))
		case containsAny(queryLower, "apply", "application"):
			return fulfillment(c, fmt.Sprintf("I can help you with the application process! Please visit our Application Procedure page: %s/admission/application-procedure\n\nOr tell me which specific program you want to apply for and I'll guide you through the steps.", baseURL))
		default:
			return fulfillment(c, "I'd be happy to help! I can assist you with:\n• Admission requirements\n• Document checklists\n• Important dates and deadlines\n• Application procedures\n\nPlease tell me which program you're interested in, or ask me a specific question like 'What are the requirements?' or 'What documents do I need?'")
		}
	}

	match, ok := chatbot.FindProgramMatch(programName, links)
	if !ok {
		// Suggest a few known programs instead, in a stable order
		var available []string
		for _, link := range links {
			available = append(available, link.ProgramName)
		}
		sort.Strings(available)
		if len(available) > 5 {
			available = available[:5]
		}
		return fulfillment(c, fmt.Sprintf("I couldn't find '%s' in our system. Here are some available programs: %s. Please try asking about one of these programs.", programName, strings.Join(available, ", ")))
	}

	infoType := paramString(params, "info_type", "InfoType")
	if infoType == "" || infoType == "requirements" {
		switch {
		case containsAny(queryLower, "document", "checklist", "paperwork", "certificate"):
			infoType = "documents"
		case containsAny(queryLower, "deadline", "date", "when", "intake", "closing"):
			infoType = "deadlines"
		case containsAny(queryLower, "apply", "application form", "submit application"):
			infoType = "apply"
		default:
			infoType = "requirements"
		}
	}

	url := match.LinkForInfoType(infoType)

	var reply string
	switch infoType {
	case "deadlines":
		reply = fmt.Sprintf("Here are the important dates and deadlines for %s: %s", match.ProgramName, url)
	case "apply":
		reply = fmt.Sprintf("Here's the application form for %s: %s", match.ProgramName, url)
	case "documents":
		reply = fmt.Sprintf("Here's the document checklist for %s: %s", match.ProgramName, url)
	default:
		reply = fmt.Sprintf("Here are the admission requirements for %s: %s", match.ProgramName, url)
	}

	return fulfillment(c, reply)
}
