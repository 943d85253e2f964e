package eligibility

import (
	"admission/models"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// matchThreshold is the minimum row score for a requirement to count as matched.
const matchThreshold = 10

// academicKeywords is the subject vocabulary checked between a requirement's
// additional-requirements text and the applicant's supplied info.
var academicKeywords = []string{
	"mathematics", "math", "english", "physics", "chemistry",
	"biology", "additional mathematics", "add math", "science",
}

// Grades carries the applicant's grade input. CGPA is preferred over Grade
// when both are given.
type Grades struct {
	CGPA  string `json:"cgpa"`
	Grade string `json:"grade"`
}

// RequirementMatch is one scored requirement row.
type RequirementMatch struct {
	Requirement models.AdmissionRequirement `json:"requirement"`
	Score       int                         `json:"score"`
	Matched     bool                        `json:"matched"`
}

// Result is the outcome of an eligibility check. A program's requirement rows
// are alternative pathways: matching any one row makes the applicant eligible.
type Result struct {
	Eligible            bool                         `json:"eligible"`
	Message             string                       `json:"message"`
	ProgramName         string                       `json:"program_name,omitempty"`
	MatchedRequirements []RequirementMatch           `json:"matched_requirements"`
	MissingRequirements []RequirementMatch           `json:"missing_requirements"`
	BestMatch           *models.AdmissionRequirement `json:"best_match,omitempty"`
	ConfidenceScore     float64                      `json:"confidence_score"`
}

// ExtractKeywords returns the academic keywords present in the text.
func ExtractKeywords(text string) []string {
	if text == "" {
		return nil
	}

	textLower := strings.ToLower(text)
	var found []string
	for _, kw := range academicKeywords {
		if strings.Contains(textLower, kw) {
			found = append(found, kw)
		}
	}
	return found
}

// scoreRequirement computes the match score of one requirement row against
// the applicant's input.
func scoreRequirement(req models.AdmissionRequirement, normalizedQual string, grades Grades, applicantInfo string) int {
	score := 0

	// Qualification match: exact canonical key, or partial substring credit
	reqQual := NormalizeQualification(req.QualificationType)
	if reqQual == normalizedQual {
		score += 10
	} else if strings.Contains(normalizedQual, reqQual) || strings.Contains(reqQual, normalizedQual) {
		score += 5
	}

	// Grade check: skipped entirely when either side cannot be parsed
	if req.MinimumGrade != "" {
		gradeInput := grades.CGPA
		if gradeInput == "" {
			gradeInput = grades.Grade
		}

		requiredGrade, reqOK := ParseGrade(req.MinimumGrade)
		applicantGrade, appOK := ParseGrade(gradeInput)

		if reqOK && appOK {
			if applicantGrade >= requiredGrade {
				score += 10
			} else {
				score -= 5
			}
		}
	}

	// Subject keywords named by the requirement and present in the applicant info
	if req.AdditionalRequirements != "" {
		for _, keyword := range ExtractKeywords(req.AdditionalRequirements) {
			if strings.Contains(applicantInfo, keyword) {
				score += 2
			}
		}
	}

	return score
}

// Evaluate scores the applicant against a program's requirement rows. It is
// the pure core of CheckEligibility: no database access, deterministic output.
func Evaluate(programName, qualification string, grades Grades, additionalInfo map[string]interface{}, requirements []models.AdmissionRequirement) Result {
	if len(requirements) == 0 {
		return Result{
			Eligible:            false,
			Message:             "No admission requirements found for this program.",
			ProgramName:         programName,
			MatchedRequirements: []RequirementMatch{},
			MissingRequirements: []RequirementMatch{},
		}
	}

	normalizedQual := NormalizeQualification(qualification)
	applicantInfo := strings.ToLower(fmt.Sprintf("%v", additionalInfo))

	matched := []RequirementMatch{}
	missing := []RequirementMatch{}
	var bestMatch *models.AdmissionRequirement
	bestScore := 0

	for i := range requirements {
		req := requirements[i]
		score := scoreRequirement(req, normalizedQual, grades, applicantInfo)

		if score > bestScore {
			bestScore = score
			bestMatch = &requirements[i]
		}

		entry := RequirementMatch{Requirement: req, Score: score, Matched: score >= matchThreshold}
		if entry.Matched {
			matched = append(matched, entry)
		} else {
			missing = append(missing, entry)
		}
	}

	eligible := len(matched) > 0

	var message string
	if eligible && bestMatch != nil {
		message = fmt.Sprintf("Based on your %s qualification, you appear to meet the requirements for %s.", qualification, programName)
		if bestMatch.MinimumGrade != "" {
			message += fmt.Sprintf(" The minimum requirement is %s.", bestMatch.MinimumGrade)
		}
		if bestMatch.AdditionalRequirements != "" {
			message += fmt.Sprintf(" Additional requirements: %s.", bestMatch.AdditionalRequirements)
		}
	} else {
		message = fmt.Sprintf("Based on your %s qualification, you may not meet the minimum requirements for %s.", qualification, programName)
		if bestMatch != nil {
			minGrade := bestMatch.MinimumGrade
			if minGrade == "" {
				minGrade = "specified grade"
			}
			message += fmt.Sprintf(" Required: %s with %s.", bestMatch.QualificationType, minGrade)
			if bestMatch.AdditionalRequirements != "" {
				message += fmt.Sprintf(" Additional: %s.", bestMatch.AdditionalRequirements)
			}
		} else {
			message += " Please check the specific requirements for this program."
		}
	}

	confidence := 0.0
	if bestScore > 0 {
		confidence = float64(bestScore) / 20.0
		if confidence > 1.0 {
			confidence = 1.0
		}
	}

	return Result{
		Eligible:            eligible,
		Message:             message,
		ProgramName:         programName,
		MatchedRequirements: matched,
		MissingRequirements: missing,
		BestMatch:           bestMatch,
		ConfidenceScore:     confidence,
	}
}

// Checker checks applicant eligibility against stored program requirements.
type Checker struct {
	db *gorm.DB
}

// NewChecker returns a Checker reading from the given database handle.
func NewChecker(db *gorm.DB) *Checker {
	return &Checker{db: db}
}

// errorResult shapes a data-access failure as a renderable result. An unknown
// program has no requirement rows, so it gets the same message as a program
// with an empty requirements table.
func errorResult(err error) Result {
	message := fmt.Sprintf("Error checking eligibility: %v", err)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		message = "No admission requirements found for this program."
	}
	return Result{
		Eligible:            false,
		Message:             message,
		MatchedRequirements: []RequirementMatch{},
		MissingRequirements: []RequirementMatch{},
	}
}

// CheckEligibility loads the program's requirement rows and evaluates the
// applicant against them. Data-access failures come back as a result-shaped
// message, never as an error: the caller always gets something it can render.
func (ch *Checker) CheckEligibility(programID uint, qualification string, grades Grades, additionalInfo map[string]interface{}) Result {
	var program models.Program
	if err := ch.db.Where("id = ?", programID).First(&program).Error; err != nil {
		return errorResult(err)
	}

	var requirements []models.AdmissionRequirement
	if err := ch.db.Where("program_id = ?", programID).Find(&requirements).Error; err != nil {
		return errorResult(err)
	}

	return Evaluate(program.ProgramName, qualification, grades, additionalInfo, requirements)
}
