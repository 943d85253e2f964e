package utils

import (
	"admission/database"
	"admission/models"
	"log"
	"math"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializeReminderScheduler sets up the daily deadline reminder job
func InitializeReminderScheduler() {
	log.Println("[REMINDER-SCHEDULER] Initializing reminder scheduler...")

	c := cron.New()

	// Run daily at 8 AM to check upcoming deadlines
	c.AddFunc("0 8 * * *", func() {
		log.Println("[REMINDER-SCHEDULER] Running daily deadline reminder check...")
		CheckAndSendReminders()
	})

	c.Start()
	log.Println("[REMINDER-SCHEDULER] Reminder scheduler started - runs daily at 8 AM")
}

// startOfDay returns midnight of t's calendar day in t's location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// calendarDaysUntil counts calendar days between two moments, ignoring the
// time of day on either side.
func calendarDaysUntil(from, to time.Time) int {
	return int(math.Round(startOfDay(to).Sub(startOfDay(from)).Hours() / 24))
}

// CheckAndSendReminders sends a reminder email to every active subscription
// whose program deadline is exactly days_before days away. Returns the number
// of reminders sent. A reminder already sent today is not sent again.
func CheckAndSendReminders() int {
	db := database.Database.Db
	today := startOfDay(time.Now())

	var subscriptions []models.EmailNotification
	err := db.Where("is_active = ? AND notification_type = ?", true, "Deadline Reminder").
		Find(&subscriptions).Error
	if err != nil {
		log.Printf("[REMINDER-SCHEDULER] Error fetching subscriptions: %v", err)
		return 0
	}

	log.Printf("[REMINDER-SCHEDULER] Checking %d active subscriptions", len(subscriptions))

	sent := 0
	for _, sub := range subscriptions {
		// Already reminded today
		if sub.LastSent != nil && startOfDay(*sub.LastSent).Equal(today) {
			continue
		}

		var program models.Program
		if err := db.Where("id = ?", sub.ProgramID).First(&program).Error; err != nil {
			log.Printf("[REMINDER-SCHEDULER] Error fetching program %d: %v", sub.ProgramID, err)
			continue
		}

		var deadlines []models.ImportantDate
		if err := db.Where("program_id = ? AND end_date >= ?", sub.ProgramID, today).
			Order("end_date ASC").
			Find(&deadlines).Error; err != nil {
			log.Printf("[REMINDER-SCHEDULER] Error fetching deadlines for program %d: %v", sub.ProgramID, err)
			continue
		}

		for _, deadline := range deadlines {
			daysUntil := calendarDaysUntil(today, deadline.EndDate)
			if daysUntil != sub.DaysBefore {
				continue
			}

			if err := SendDeadlineReminder(sub.Email, program.ProgramName, deadline.EndDate, sub.DaysBefore); err != nil {
				continue
			}

			now := time.Now()
			if err := db.Model(&models.EmailNotification{}).
				Where("id = ?", sub.ID).
				Update("last_sent", &now).Error; err != nil {
				log.Printf("[REMINDER-SCHEDULER] Error updating last_sent for subscription %d: %v", sub.ID, err)
			}
			sent++
			break
		}
	}

	log.Printf("[REMINDER-SCHEDULER] Email reminder check completed. Sent %d reminder(s).", sent)
	return sent
}
