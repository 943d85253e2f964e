package chatbot

import (
	"admission/models"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"gorm.io/gorm"
)

// ProgramLinks holds the deep links for one program's admission pages.
type ProgramLinks struct {
	ProgramID    uint   `json:"program_id"`
	ProgramName  string `json:"program_name"`
	Requirements string `json:"requirements"`
	Deadlines    string `json:"deadlines"`
	Apply        string `json:"apply"`
	Documents    string `json:"documents"`
}

// LinkForInfoType returns the deep link for the requested info type,
// defaulting to the requirements page.
func (p ProgramLinks) LinkForInfoType(infoType string) string {
	switch infoType {
	case "deadlines":
		return p.Deadlines
	case "apply":
		return p.Apply
	case "documents":
		return p.Documents
	default:
		return p.Requirements
	}
}

var (
	linksMu    sync.Mutex
	linksCache map[string]ProgramLinks
)

var whitespacePattern = regexp.MustCompile(`\s+`)

// NormalizeProgramName lower-cases a program name and collapses whitespace
// for case-insensitive matching.
func NormalizeProgramName(name string) string {
	return whitespacePattern.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), " ")
}

// BuildProgramLinks returns a normalized-name -> deep-links map for every
// program. The map is cached in memory to avoid repeated lookups; call
// ResetProgramLinks after program data changes.
func BuildProgramLinks(db *gorm.DB, baseURL string) map[string]ProgramLinks {
	linksMu.Lock()
	defer linksMu.Unlock()

	if linksCache != nil {
		return linksCache
	}

	var programs []models.Program
	if err := db.Order("program_name").Find(&programs).Error; err != nil {
		return map[string]ProgramLinks{}
	}

	base := strings.TrimRight(baseURL, "/")
	links := make(map[string]ProgramLinks, len(programs))
	for _, program := range programs {
		links[NormalizeProgramName(program.ProgramName)] = ProgramLinks{
			ProgramID:    program.ID,
			ProgramName:  program.ProgramName,
			Requirements: fmt.Sprintf("%s/admission/requirements?program_id=%d", base, program.ID),
			Deadlines:    fmt.Sprintf("%s/admission/deadlines?program_id=%d", base, program.ID),
			Apply:        fmt.Sprintf("%s/admission/application-form?program_id=%d", base, program.ID),
			Documents:    fmt.Sprintf("%s/admission/document-checklist?program_id=%d", base, program.ID),
		}
	}

	linksCache = links
	return links
}

// ResetProgramLinks drops the cached link map.
func ResetProgramLinks() {
	linksMu.Lock()
	defer linksMu.Unlock()
	linksCache = nil
}

var commonWords = map[string]bool{
	"in": true, "of": true, "the": true, "and": true,
	"for": true, "to": true, "a": true, "an": true,
}

func significantWords(normalized string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range strings.Fields(normalized) {
		if !commonWords[w] {
			words[w] = true
		}
	}
	return words
}

// sortedKeys returns the link map keys in sorted order. Containment and
// word-overlap scans can hit more than one program, so candidates must be
// visited in a fixed order for ambiguous queries to resolve the same way on
// every call.
func sortedKeys(links map[string]ProgramLinks) []string {
	keys := make([]string, 0, len(links))
	for key := range links {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// FindProgramMatch locates the best matching program for a free-text query:
// exact normalized match first, then substring containment either way, then
// the entry sharing the most significant words. Candidates are scanned in
// sorted name order and the first winner is kept.
func FindProgramMatch(query string, links map[string]ProgramLinks) (ProgramLinks, bool) {
	if query == "" {
		return ProgramLinks{}, false
	}

	normalized := NormalizeProgramName(query)

	if match, ok := links[normalized]; ok {
		return match, true
	}

	keys := sortedKeys(links)

	for _, key := range keys {
		if strings.Contains(key, normalized) || strings.Contains(normalized, key) {
			return links[key], true
		}
	}

	queryWords := significantWords(normalized)

	var best ProgramLinks
	bestScore := 0
	for _, key := range keys {
		matches := 0
		for w := range significantWords(key) {
			if queryWords[w] {
				matches++
			}
		}
		if matches > bestScore {
			bestScore = matches
			best = links[key]
		}
	}

	if bestScore > 0 {
		return best, true
	}
	return ProgramLinks{}, false
}
