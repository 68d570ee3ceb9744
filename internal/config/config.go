package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds application configuration
type Config struct {
	Port             string
	DBConn           string
	LogLevel         string
	JWTSecret        string
	TokenTTL         time.Duration
	SMTPHost         string
	SMTPPort         string
	SMTPUsername     string
	SMTPPassword     string
	SenderEmail      string
	ReminderSchedule string
	ReminderWindow   time.Duration
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		DBConn:           getEnv("DB_CONN", "host=localhost port=5432 user=test password=test dbname=tracker sslmode=disable"),
		LogLevel:         getEnv("LOG_LEVEL", "INFO"),
		JWTSecret:        getEnv("JWT_SECRET", "secret"),
		SMTPHost:         getEnv("SMTP_HOST", ""),
		SMTPPort:         getEnv("SMTP_PORT", "587"),
		SMTPUsername:     getEnv("SMTP_USERNAME", ""),
		SMTPPassword:     getEnv("SMTP_PASSWORD", ""),
		SenderEmail:      getEnv("SENDER_EMAIL", "noreply@tracker.local"),
		ReminderSchedule: getEnv("REMINDER_SCHEDULE", "0 8 * * *"),
	}

	tokenTTL, err := time.ParseDuration(getEnv("TOKEN_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}
	cfg.TokenTTL = tokenTTL

	reminderWindow, err := time.ParseDuration(getEnv("REMINDER_WINDOW", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid REMINDER_WINDOW: %w", err)
	}
	cfg.ReminderWindow = reminderWindow

	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
