package chatbot

import (
	"regexp"
	"strings"
)

// intentPatterns is an ordered rule table. The intent with the most matching
// patterns wins; on a tie the earlier entry is kept, so detection stays
// deterministic for the same input.
var intentPatterns = []struct {
	Intent   string
	Patterns []*regexp.Regexp
}{
	{"admission_requirements", compileAll(
		`requirement`, `eligibility`, `qualification`, `need to apply`,
		`what do i need`, `admission criteria`, `entry requirement`,
	)},
	{"application_procedure", compileAll(
		`how to apply`, `application process`, `apply`, `application procedure`,
		`steps to apply`, `application guide`, `how do i apply`,
	)},
	{"deadlines", compileAll(
		`deadline`, `when is`, `closing date`, `application period`,
		`intake`, `when can i`, `important date`, `due date`,
	)},
	{"documents", compileAll(
		`document`, `what document`, `checklist`, `need to submit`,
		`required document`, `paperwork`, `certificate`,
	)},
	{"fees", compileAll(
		`fee`, `tuition`, `cost`, `price`, `how much`, `payment`,
		`scholarship`, `financial aid`,
	)},
	{"program_info", compileAll(
		`program`, `course`, `what is`, `tell me about`, `information about`,
	)},
}

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(p))
	}
	return compiled
}

// DetectIntent classifies a user message into one of the known intents,
// falling back to "general" when no pattern matches.
func DetectIntent(message string) string {
	messageLower := strings.ToLower(message)

	bestIntent := "general"
	bestScore := 0

	for _, entry := range intentPatterns {
		score := 0
		for _, pattern := range entry.Patterns {
			if pattern.MatchString(messageLower) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			bestIntent = entry.Intent
		}
	}

	return bestIntent
}
