package eligibility

import (
	"regexp"
	"strconv"
	"strings"
)

// gradeEquivalents maps letter grades to the 0.0-4.0 CGPA scale.
var gradeEquivalents = map[string]float64{
	"A+": 4.0, "A": 4.0, "A-": 3.67,
	"B+": 3.33, "B": 3.0, "B-": 2.67,
	"C+": 2.33, "C": 2.0, "C-": 1.67,
	"D+": 1.33, "D": 1.0, "D-": 0.67,
	"E": 0.5, "F": 0.0,
}

var (
	cgpaPattern   = regexp.MustCompile(`(\d+\.?\d*)`)
	letterPattern = regexp.MustCompile(`([A-F][+-]?)`)
)

// ParseGrade converts free-text grade input (numeric CGPA or letter grade)
// into the 0.0-4.0 scale. The numeric form is tried first, then an exact
// letter-grade lookup, then an embedded letter-grade token. Returns ok=false
// when nothing matches; callers must treat that as "cannot compare", never as
// a grade of zero. Numeric values outside [0.0, 4.0] are a parse failure, not
// a valid grade.
func ParseGrade(gradeInput string) (float64, bool) {
	gradeStr := strings.ToUpper(strings.TrimSpace(gradeInput))
	if gradeStr == "" {
		return 0, false
	}

	// Try to extract CGPA (decimal number)
	if m := cgpaPattern.FindString(gradeStr); m != "" {
		if value, err := strconv.ParseFloat(m, 64); err == nil && value >= 0.0 && value <= 4.0 {
			return value, true
		}
	}

	// Try letter grade
	if value, ok := gradeEquivalents[gradeStr]; ok {
		return value, true
	}

	// Try to match an embedded letter grade token
	if m := letterPattern.FindString(gradeStr); m != "" {
		if value, ok := gradeEquivalents[m]; ok {
			return value, true
		}
	}

	return 0, false
}
