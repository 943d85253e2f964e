package eligibility

import (
	"admission/models"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func requirement(qualType, minGrade, additional string) models.AdmissionRequirement {
	return models.AdmissionRequirement{
		QualificationType:      qualType,
		MinimumGrade:           minGrade,
		AdditionalRequirements: additional,
	}
}

func TestEvaluate_OneOfTwoPathwaysMatches(t *testing.T) {
	requirements := []models.AdmissionRequirement{
		requirement("STPM", "2.50", ""),
		requirement("UEC", "B+", ""),
	}

	result := Evaluate("Bachelor of Computer Science", "STPM", Grades{CGPA: "3.2"}, nil, requirements)

	assert.True(t, result.Eligible)
	require.NotNil(t, result.BestMatch)
	assert.Equal(t, "STPM", result.BestMatch.QualificationType)
	assert.Len(t, result.MatchedRequirements, 1)
	assert.Len(t, result.MissingRequirements, 1)

	// Exact qualification (+10) and satisfied grade (+10)
	assert.Equal(t, 20, result.MatchedRequirements[0].Score)
	assert.InDelta(t, 1.0, result.ConfidenceScore, 0.001)
	assert.Contains(t, result.Message, "appear to meet the requirements")
	assert.Contains(t, result.Message, "Bachelor of Computer Science")
}

func TestEvaluate_NoRequirementRows(t *testing.T) {
	result := Evaluate("Bachelor of Psychology", "STPM", Grades{CGPA: "3.9"}, nil, nil)

	assert.False(t, result.Eligible)
	assert.Equal(t, "No admission requirements found for this program.", result.Message)
	assert.Empty(t, result.MatchedRequirements)
	assert.Empty(t, result.MissingRequirements)
	assert.Nil(t, result.BestMatch)
	assert.Zero(t, result.ConfidenceScore)
}

func TestEvaluate_KeywordScoring(t *testing.T) {
	requirements := []models.AdmissionRequirement{
		requirement("SPM", "", "Credit in Mathematics and English"),
	}

	additionalInfo := map[string]interface{}{
		"subjects": "mathematics english",
	}

	result := Evaluate("Foundation in Science", "SPM", Grades{}, additionalInfo, requirements)

	assert.True(t, result.Eligible)
	require.Len(t, result.MatchedRequirements, 1)
	// +10 qualification, +2 each for mathematics, math and english
	assert.Equal(t, 16, result.MatchedRequirements[0].Score)
}

func TestEvaluate_GradeCheckSkippedWhenUnparseable(t *testing.T) {
	requirements := []models.AdmissionRequirement{
		requirement("STPM", "Pass with credit", ""),
	}

	result := Evaluate("Diploma in Accounting", "STPM", Grades{Grade: "unknown"}, nil, requirements)

	// Qualification match alone clears the threshold; the grade comparison is
	// skipped, not penalized
	assert.True(t, result.Eligible)
	require.Len(t, result.MatchedRequirements, 1)
	assert.Equal(t, 10, result.MatchedRequirements[0].Score)
}

func TestEvaluate_PartialQualificationCredit(t *testing.T) {
	requirements := []models.AdmissionRequirement{
		requirement("Diploma", "", ""),
	}

	// "diplom" is not a known variant; partial substring credit only
	result := Evaluate("Bachelor of IT", "diplom", Grades{}, nil, requirements)

	assert.False(t, result.Eligible)
	require.Len(t, result.MissingRequirements, 1)
	assert.Equal(t, 5, result.MissingRequirements[0].Score)
	assert.InDelta(t, 0.25, result.ConfidenceScore, 0.001)
}

func TestEvaluate_FailedGradeLowersScore(t *testing.T) {
	requirements := []models.AdmissionRequirement{
		requirement("STPM", "3.50", ""),
	}

	result := Evaluate("Bachelor of Engineering", "STPM", Grades{CGPA: "2.0"}, nil, requirements)

	assert.False(t, result.Eligible)
	require.Len(t, result.MissingRequirements, 1)
	// +10 qualification, -5 failed grade
	assert.Equal(t, 5, result.MissingRequirements[0].Score)
	assert.Contains(t, result.Message, "may not meet the minimum requirements")
}

func TestEvaluate_NegativeScoreNeverBecomesBestMatch(t *testing.T) {
	requirements := []models.AdmissionRequirement{
		requirement("UEC", "A", ""),
	}

	result := Evaluate("Bachelor of Science", "something else entirely", Grades{CGPA: "1.0"}, nil, requirements)

	assert.False(t, result.Eligible)
	assert.Nil(t, result.BestMatch)
	assert.Zero(t, result.ConfidenceScore)
	assert.Contains(t, result.Message, "Please check the specific requirements")
}

func TestEvaluate_CGPAPreferredOverLetterGrade(t *testing.T) {
	requirements := []models.AdmissionRequirement{
		requirement("STPM", "3.00", ""),
	}

	// CGPA 3.5 passes even though the letter grade D would fail
	result := Evaluate("Bachelor of Business", "STPM", Grades{CGPA: "3.5", Grade: "D"}, nil, requirements)

	assert.True(t, result.Eligible)
	require.Len(t, result.MatchedRequirements, 1)
	assert.Equal(t, 20, result.MatchedRequirements[0].Score)
}

func TestErrorResult(t *testing.T) {
	// An unknown program reads like a program without requirement rows
	result := errorResult(gorm.ErrRecordNotFound)
	assert.False(t, result.Eligible)
	assert.Equal(t, "No admission requirements found for this program.", result.Message)
	assert.Empty(t, result.MatchedRequirements)
	assert.Empty(t, result.MissingRequirements)

	result = errorResult(errors.New("connection refused"))
	assert.False(t, result.Eligible)
	assert.Equal(t, "Error checking eligibility: connection refused", result.Message)
}

func TestExtractKeywords(t *testing.T) {
	keywords := ExtractKeywords("Credit in Additional Mathematics and Physics required")

	// "additional mathematics" also contains "mathematics" and "math"
	assert.Contains(t, keywords, "additional mathematics")
	assert.Contains(t, keywords, "mathematics")
	assert.Contains(t, keywords, "math")
	assert.Contains(t, keywords, "physics")
	assert.NotContains(t, keywords, "biology")

	assert.Empty(t, ExtractKeywords(""))
}
