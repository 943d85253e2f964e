package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDay(t *testing.T) {
	ts := time.Date(2026, time.August, 29, 18, 45, 12, 0, time.Local)
	day := startOfDay(ts)

	assert.Equal(t, 0, day.Hour())
	assert.Equal(t, 0, day.Minute())
	assert.Equal(t, ts.Year(), day.Year())
	assert.Equal(t, ts.Month(), day.Month())
	assert.Equal(t, ts.Day(), day.Day())
	assert.Equal(t, ts.Location(), day.Location())
}

func TestCalendarDaysUntil(t *testing.T) {
	// Late-evening run must still count 14 days to a midnight deadline
	now := time.Date(2026, time.March, 10, 23, 30, 0, 0, time.Local)
	deadline := time.Date(2026, time.March, 24, 0, 0, 0, 0, time.Local)

	assert.Equal(t, 14, calendarDaysUntil(now, deadline))

	// Time of day on either side does not shift the count
	assert.Equal(t, 14, calendarDaysUntil(now, deadline.Add(23*time.Hour)))
	assert.Equal(t, 14, calendarDaysUntil(now.Add(-23*time.Hour), deadline))

	assert.Equal(t, 0, calendarDaysUntil(now, now.Add(10*time.Minute)))
	assert.Equal(t, 1, calendarDaysUntil(now, deadline.AddDate(0, 0, -13)))
}
