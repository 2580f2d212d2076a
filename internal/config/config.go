package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Shift    ShiftConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret          string
	AdminExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// ShiftConfig holds the shift-window parameters. The operational day runs from
// StartHour to EndHour on the next calendar day; LoginCutoffHour governs when a
// late-night login still counts toward the previous shift.
type ShiftConfig struct {
	Timezone        string
	StartHour       int
	EndHour         int
	LoginCutoffHour int
	ExpiryHours     int
	OnTimeEarlyMin  int
	OnTimeLateMin   int
	StaleGrace      time.Duration
}

func Load() (*Config, error) {
	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "shiftbook"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:          getEnv("JWT_SECRET_KEY", ""),
		AdminExpiration: getEnv("JWT_ADMIN_EXPIRATION_TIME", "12h"),
	}

	// Shift configuration
	shift := ShiftConfig{Timezone: getEnv("SHIFT_TIMEZONE", "Asia/Karachi")}
	if shift.StartHour, err = strconv.Atoi(getEnv("SHIFT_START_HOUR", "17")); err != nil {
		return nil, fmt.Errorf("invalid SHIFT_START_HOUR: %w", err)
	}
	if shift.EndHour, err = strconv.Atoi(getEnv("SHIFT_END_HOUR", "8")); err != nil {
		return nil, fmt.Errorf("invalid SHIFT_END_HOUR: %w", err)
	}
	if shift.LoginCutoffHour, err = strconv.Atoi(getEnv("SHIFT_LOGIN_CUTOFF_HOUR", "9")); err != nil {
		return nil, fmt.Errorf("invalid SHIFT_LOGIN_CUTOFF_HOUR: %w", err)
	}
	if shift.ExpiryHours, err = strconv.Atoi(getEnv("SHIFT_EXPIRY_HOURS", "16")); err != nil {
		return nil, fmt.Errorf("invalid SHIFT_EXPIRY_HOURS: %w", err)
	}
	if shift.OnTimeEarlyMin, err = strconv.Atoi(getEnv("ON_TIME_EARLY_MINUTES", "-160")); err != nil {
		return nil, fmt.Errorf("invalid ON_TIME_EARLY_MINUTES: %w", err)
	}
	if shift.OnTimeLateMin, err = strconv.Atoi(getEnv("ON_TIME_LATE_MINUTES", "16")); err != nil {
		return nil, fmt.Errorf("invalid ON_TIME_LATE_MINUTES: %w", err)
	}
	if shift.StaleGrace, err = time.ParseDuration(getEnv("STALE_SESSION_GRACE", "1h")); err != nil {
		return nil, fmt.Errorf("invalid STALE_SESSION_GRACE: %w", err)
	}
	config.Shift = shift

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Shift.StartHour < 0 || c.Shift.StartHour > 23 {
		return fmt.Errorf("SHIFT_START_HOUR must be between 0 and 23")
	}
	if c.Shift.EndHour < 0 || c.Shift.EndHour > 23 {
		return fmt.Errorf("SHIFT_END_HOUR must be between 0 and 23")
	}
	if c.Shift.LoginCutoffHour < 0 || c.Shift.LoginCutoffHour > 23 {
		return fmt.Errorf("SHIFT_LOGIN_CUTOFF_HOUR must be between 0 and 23")
	}
	if c.Shift.OnTimeEarlyMin > c.Shift.OnTimeLateMin {
		return fmt.Errorf("ON_TIME_EARLY_MINUTES must not exceed ON_TIME_LATE_MINUTES")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
