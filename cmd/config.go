package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort          = "8080"
	defaultAnalyticsSchedule = "0 0 * * * *"
	defaultAnalyticsWindow   = 30 * 24 * time.Hour
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// AnalyticsSchedule is a six-field cron expression, seconds first.
	AnalyticsSchedule string
	// AnalyticsWindow is how far back the scheduled report looks. Zero covers every order.
	AnalyticsWindow time.Duration
}

// LoadConfig reads envFile into the environment, then builds the config from
// environment variables. A missing envFile is not an error; variables already set
// in the environment take precedence over the file.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	window := defaultAnalyticsWindow
	if raw := os.Getenv("ANALYTICS_WINDOW"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse ANALYTICS_WINDOW: %w", err)
		}
		window = parsed
	}

	return Config{
		HTTPPort:          envOrDefault("HTTP_PORT", defaultHTTPPort),
		DBHost:            os.Getenv("DB_HOST"),
		DBPort:            os.Getenv("DB_PORT"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBSslMode:         envOrDefault("DB_SSLMODE", "disable"),
		AnalyticsSchedule: envOrDefault("ANALYTICS_SCHEDULE", defaultAnalyticsSchedule),
		AnalyticsWindow:   window,
	}, nil
}

// DSN is the PostgreSQL connection string for gorm's postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
