// Package dates derives recurring registration and application deadline dates
// from the fixed semester calendar. The same year always yields the same
// records, so a date table can be re-seeded idempotently.
package dates

import (
	"fmt"
	"time"
)

// Semester structure: two 14-week long semesters and one 7-week short semester.
const (
	semester1StartMonth = time.January
	semester1Weeks      = 14

	semester2StartMonth = time.May
	semester2Weeks      = 14

	semester3StartMonth = time.September
	semester3Weeks      = 7

	// Application deadline falls this many weeks before registration opens.
	applicationDeadlineWeeksBeforeRegistration = 4

	// International deadlines are shifted this many weeks earlier than local
	// ones, to leave time for visa processing.
	internationalWeeksEarlier = 2
)

// Registration opens N months before semester start. A month is approximated
// as exactly 30 days; downstream consumers depend on the exact offsets this
// produces, so it is not calendar-accurate on purpose.
var registrationOpenMonthsBefore = map[int]int{1: 3, 2: 3, 3: 2}

// Registration closes W weeks before semester start.
var registrationCloseWeeksBefore = map[int]int{1: 2, 2: 2, 3: 1}

// CalculatedDate is one derived admissions event. Single-day events carry the
// same start and end date.
type CalculatedDate struct {
	EventType       string    `json:"event_type"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Description     string    `json:"description"`
	IsInternational bool      `json:"is_international"`
	Semester        int       `json:"semester"`
}

// SemesterStart returns the first day of the given semester.
func SemesterStart(year, semester int) (time.Time, error) {
	var month time.Month
	switch semester {
	case 1:
		month = semester1StartMonth
	case 2:
		month = semester2StartMonth
	case 3:
		month = semester3StartMonth
	default:
		return time.Time{}, fmt.Errorf("invalid semester: %d", semester)
	}
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), nil
}

// SemesterEnd returns the semester start plus the semester's week count.
func SemesterEnd(year, semester int) (time.Time, error) {
	start, err := SemesterStart(year, semester)
	if err != nil {
		return time.Time{}, err
	}

	var weeks int
	switch semester {
	case 1:
		weeks = semester1Weeks
	case 2:
		weeks = semester2Weeks
	case 3:
		weeks = semester3Weeks
	}

	return start.AddDate(0, 0, weeks*7), nil
}

// RegistrationPeriod returns the open and close dates of the registration
// window for a semester. International windows sit two weeks earlier.
func RegistrationPeriod(year, semester int, isInternational bool) (time.Time, time.Time, error) {
	semesterStart, err := SemesterStart(year, semester)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	open := semesterStart.AddDate(0, 0, -registrationOpenMonthsBefore[semester]*30)
	close := semesterStart.AddDate(0, 0, -registrationCloseWeeksBefore[semester]*7)

	if isInternational {
		open = open.AddDate(0, 0, -internationalWeeksEarlier*7)
		close = close.AddDate(0, 0, -internationalWeeksEarlier*7)
	}

	return open, close, nil
}

// ApplicationDeadline returns the application deadline for a semester: four
// weeks before registration opens, computed after any international shift.
func ApplicationDeadline(year, semester int, isInternational bool) (time.Time, error) {
	open, _, err := RegistrationPeriod(year, semester, isInternational)
	if err != nil {
		return time.Time{}, err
	}
	return open.AddDate(0, 0, -applicationDeadlineWeeksBeforeRegistration*7), nil
}

// AllImportantDates enumerates every derived admissions event for a year:
// for each of the three semesters, a local and an international registration
// window plus a local and an international application deadline. Always 12
// records, in a fixed order.
func AllImportantDates(year int) []CalculatedDate {
	var dates []CalculatedDate

	for semester := 1; semester <= 3; semester++ {
		for _, international := range []bool{false, true} {
			audience := "Local Students"
			suffix := "Local Malaysian students"
			if international {
				audience = "International Students"
				suffix = "International students (earlier deadline for visa processing)"
			}

			regOpen, regClose, _ := RegistrationPeriod(year, semester, international)
			appDeadline, _ := ApplicationDeadline(year, semester, international)

			dates = append(dates, CalculatedDate{
				EventType:       fmt.Sprintf("Semester %d Registration (%s)", semester, audience),
				StartDate:       regOpen,
				EndDate:         regClose,
				Description:     fmt.Sprintf("Registration period for Semester %d - %s", semester, suffix),
				IsInternational: international,
				Semester:        semester,
			})

			dates = append(dates, CalculatedDate{
				EventType:       fmt.Sprintf("Semester %d Application Deadline (%s)", semester, audience),
				StartDate:       appDeadline,
				EndDate:         appDeadline,
				Description:     fmt.Sprintf("Application deadline for Semester %d - %s", semester, suffix),
				IsInternational: international,
				Semester:        semester,
			})
		}
	}

	return dates
}
