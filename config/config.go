package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port   string
	JWTKey string

	BaseURL string // public base URL used for chatbot deep links

	// SMTP settings for deadline reminder emails
	SMTPHost    string
	SMTPPort    string
	EmailSender string
	Password    string
	FromName    string

	// Admin credentials for the data-loading endpoints
	AdminEmail    string
	AdminPassword string

	ReminderDaysDefault int
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:   getEnv("PORT", "5000"),
		JWTKey: getEnv("JWT_SECRET_KEY", "defaultSecret"),

		BaseURL: getEnv("BASE_URL", "http://localhost:5000"),

		SMTPHost:    getEnv("SMTP_SERVER", "smtp.gmail.com"),
		SMTPPort:    getEnv("SMTP_PORT", "587"),
		EmailSender: getEnv("FROM_EMAIL", "noreply@skl.edu.my"),
		Password:    getEnv("SMTP_PASSWORD", ""),
		FromName:    getEnv("FROM_NAME", "SKL University Admission Office"),

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@skl.edu.my"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),

		ReminderDaysDefault: getEnvInt("REMINDER_DAYS_DEFAULT", 14),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.Password == "" {
		log.Println("Warning: SMTP_PASSWORD not set. Reminder emails will be logged, not sent.")
	}
	if AppConfig.AdminPassword == "" {
		log.Println("Warning: ADMIN_PASSWORD not set. Admin login is disabled.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
