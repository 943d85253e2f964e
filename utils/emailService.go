package utils

import (
	"admission/config"
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"time"
)

// ErrEmailNotConfigured is returned when SMTP credentials are missing; the
// email is logged instead of sent.
var ErrEmailNotConfigured = fmt.Errorf("email not configured")

// SendEmail sends an HTML email over SMTP
func SendEmail(to []string, subject string, htmlBody string) error {
	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	if password == "" {
		log.Printf("Warning: Email not configured. Would send to %v: %s", to, subject)
		return ErrEmailNotConfigured
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: %s <%s>\r\n", config.AppConfig.FromName, from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, config.AppConfig.SMTPHost)

	addr := config.AppConfig.SMTPHost + ":" + config.AppConfig.SMTPPort
	if err := smtp.SendMail(addr, auth, from, to, []byte(msg)); err != nil {
		log.Printf("Error sending email to %v: %v", to, err)
		return err
	}

	log.Printf("Email sent successfully to %v", to)
	return nil
}

// SendDeadlineReminder sends a deadline reminder email for a program
func SendDeadlineReminder(email, programName string, deadline time.Time, daysBefore int) error {
	subject := fmt.Sprintf("Reminder: Application Deadline for %s - %d Days Remaining", programName, daysBefore)

	deadlineStr := deadline.Format("02 January 2006")

	body := fmt.Sprintf(`
	<html>
	  <body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
		<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
		  <h2 style="color: #1e3a8a;">Application Deadline Reminder</h2>
		  <p>Dear Applicant,</p>
		  <p>This is a reminder that the application deadline for <strong>%s</strong> is approaching.</p>
		  <div style="background: #f97316; color: white; padding: 15px; border-radius: 5px; margin: 20px 0;">
			<strong>Deadline: %s</strong><br>
			<small>Only %d days remaining!</small>
		  </div>
		  <p>Please ensure you have submitted your application and all required documents before this date.</p>
		  <p>If you have already submitted your application, please disregard this reminder.</p>
		  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
		  <p style="font-size: 0.9em; color: #666;">
			Best regards,<br>
			<strong>%s</strong>
		  </p>
		</div>
	  </body>
	</html>
	`, programName, deadlineStr, daysBefore, config.AppConfig.FromName)

	return SendEmail([]string{email}, subject, body)
}
